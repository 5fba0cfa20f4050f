package schedule

import (
	"testing"

	"wayfarer/models"

	"github.com/stretchr/testify/assert"
)

func entry(name, timeText string) models.ItineraryEntry {
	return models.ItineraryEntry{Name: name, Time: timeText}
}

func names(entries []models.ItineraryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestValidateSortsByStart(t *testing.T) {
	ordered, warnings := Validate([]models.ItineraryEntry{
		entry("Dinner", "19:00-21:00"),
		entry("Museum", "09:00-11:00"),
		entry("Lunch", "12:00-13:00"),
	})

	assert.Equal(t, []string{"Museum", "Lunch", "Dinner"}, names(ordered))
	assert.Empty(t, warnings)
}

func TestValidateUntimedAppendedInOriginalOrder(t *testing.T) {
	ordered, _ := Validate([]models.ItineraryEntry{
		entry("Souvenir shopping", "whenever"),
		entry("Museum", "09:00-11:00"),
		entry("Stroll", ""),
	})

	assert.Equal(t, []string{"Museum", "Souvenir shopping", "Stroll"}, names(ordered))
}

func TestValidateOverlapWarning(t *testing.T) {
	_, warnings := Validate([]models.ItineraryEntry{
		entry("Temple", "09:00-11:00"),
		entry("Market", "10:30-12:00"),
	})

	assert.Len(t, warnings, 1)
	assert.Equal(t, `"Temple" (09:00-11:00) overlaps "Market" (10:30-12:00)`, warnings[0])
}

func TestValidateTouchingIntervalsNoWarning(t *testing.T) {
	_, warnings := Validate([]models.ItineraryEntry{
		entry("Temple", "09:00-11:00"),
		entry("Market", "11:00-12:00"),
	})

	assert.Empty(t, warnings)
}

func TestValidateSharedStartIsStable(t *testing.T) {
	ordered, _ := Validate([]models.ItineraryEntry{
		entry("First listed", "10:00-11:00"),
		entry("Second listed", "10:00-10:30"),
	})

	assert.Equal(t, []string{"First listed", "Second listed"}, names(ordered))
}

func TestValidateIdempotent(t *testing.T) {
	input := []models.ItineraryEntry{
		entry("Dinner", "19:00-21:00"),
		entry("Stroll", ""),
		entry("Museum", "09:00-11:00"),
	}

	once, warnOnce := Validate(input)
	twice, warnTwice := Validate(once)

	assert.Equal(t, names(once), names(twice))
	assert.Equal(t, warnOnce, warnTwice)
}
