package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Kyoto", StripHTML("<b>Kyoto</b>"))
	assert.Equal(t, "alert(1)temples", StripHTML("<script>alert(1)</script>temples"))
	assert.Equal(t, "plain text", StripHTML("  plain text  "))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"culture", "food"}, SplitTags("Culture, food, ,CULTURE"))
	assert.Empty(t, SplitTags(""))
}

func TestParsePagination(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/reviews?page=3&limit=50", nil)
	skip, limit := ParsePagination(r, 20, 100)
	assert.Equal(t, int64(100), skip)
	assert.Equal(t, int64(50), limit)

	r = httptest.NewRequest("GET", "/api/reviews?limit=9999", nil)
	skip, limit = ParsePagination(r, 20, 100)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(100), limit)

	r = httptest.NewRequest("GET", "/api/reviews", nil)
	_, limit = ParsePagination(r, 20, 100)
	assert.Equal(t, int64(20), limit)
}

func TestParseFloat(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/weather?lat=35.01&lng=x", nil)

	v, ok := ParseFloat(r, "lat")
	assert.True(t, ok)
	assert.InDelta(t, 35.01, v, 1e-9)

	_, ok = ParseFloat(r, "lng")
	assert.False(t, ok)

	_, ok = ParseFloat(r, "missing")
	assert.False(t, ok)
}
