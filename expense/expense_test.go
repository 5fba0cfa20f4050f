package expense

import (
	"testing"

	"wayfarer/models"

	"github.com/stretchr/testify/assert"
)

func costEntry(name, category, cost string) models.ItineraryEntry {
	return models.ItineraryEntry{Name: name, Day: "Day 1", Category: category, Cost: cost}
}

func TestAggregateCategorizedTotals(t *testing.T) {
	b := Aggregate([]models.ItineraryEntry{
		costEntry("Ryokan", models.CategoryLodging, "¥800"),
		costEntry("Ramen lunch", models.CategoryFood, "免费"),
		costEntry("Tea ceremony", models.CategoryAttraction, "around 5000 yen"),
	}, "50,000")

	assert.Equal(t, 800, b.Lodging)
	assert.Equal(t, 0, b.Food)
	assert.Equal(t, 5000, b.Activity)
	assert.Equal(t, 50000, b.Budget)
	assert.Equal(t, 50000-800-5000, b.Reserve)
	assert.Len(t, b.Items, 2)
}

func TestAggregateTransportKeywordOverridesCategory(t *testing.T) {
	b := Aggregate([]models.ItineraryEntry{
		costEntry("Airport pickup", models.CategoryAttraction, "1200"),
		costEntry("机场接送", models.CategoryFood, "300"),
	}, "10000")

	assert.Equal(t, 1500, b.Transport)
	assert.Equal(t, 0, b.Activity)
	assert.Equal(t, 0, b.Food)
}

func TestAggregateReserveFlooredAtZero(t *testing.T) {
	b := Aggregate([]models.ItineraryEntry{
		costEntry("Ryokan", models.CategoryLodging, "8000"),
	}, "5000")

	assert.Equal(t, 0, b.Reserve)
}

func TestAggregateUnparseableBudget(t *testing.T) {
	b := Aggregate([]models.ItineraryEntry{
		costEntry("Tea ceremony", models.CategoryAttraction, "500"),
	}, "depends on season")

	assert.Equal(t, 0, b.Budget)
	assert.Equal(t, 0, b.Reserve)
	assert.Equal(t, 500, b.Activity)
}

func TestAggregateZeroCostVocabulary(t *testing.T) {
	b := Aggregate([]models.ItineraryEntry{
		costEntry("Park", models.CategoryAttraction, "Free entry"),
		costEntry("Breakfast", models.CategoryFood, "included 500"),
		costEntry("Boat ride", models.CategoryAttraction, "待定"),
	}, "10000")

	assert.Equal(t, 0, b.Activity)
	assert.Equal(t, 0, b.Food)
	assert.Empty(t, b.Items)
	assert.Equal(t, 10000, b.Reserve)
}

func TestParseBudget(t *testing.T) {
	assert.Equal(t, 50000, ParseBudget("50,000 JPY"))
	assert.Equal(t, 8000, ParseBudget("约8，000元"))
	assert.Equal(t, 0, ParseBudget("flexible"))
	assert.Equal(t, 0, ParseBudget(""))
}

func TestParseCost(t *testing.T) {
	n, ok := parseCost("¥1,200")
	assert.True(t, ok)
	assert.Equal(t, 1200, n)

	n, ok = parseCost("1200")
	assert.True(t, ok)
	assert.Equal(t, 1200, n)

	_, ok = parseCost("")
	assert.False(t, ok)

	_, ok = parseCost("tbd")
	assert.False(t, ok)
}
