package timeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	iv, ok := Parse("09:00-11:30")
	assert.True(t, ok)
	assert.Equal(t, 9*60, iv.Start)
	assert.Equal(t, 11*60+30, iv.End)
}

func TestParseSingleTokenGetsDefaultDuration(t *testing.T) {
	iv, ok := Parse("arrive around 14:00")
	assert.True(t, ok)
	assert.Equal(t, 14*60, iv.Start)
	assert.Equal(t, 15*60, iv.End)
}

func TestParseFullWidthColon(t *testing.T) {
	iv, ok := Parse("09：30集合")
	assert.True(t, ok)
	assert.Equal(t, 9*60+30, iv.Start)
	assert.Equal(t, 10*60+30, iv.End)
}

func TestParseIgnoresSurroundingProse(t *testing.T) {
	iv, ok := Parse("breakfast at hotel, 08:15 to 09:45, then walk")
	assert.True(t, ok)
	assert.Equal(t, 8*60+15, iv.Start)
	assert.Equal(t, 9*60+45, iv.End)
}

func TestParseExtraTokensIgnored(t *testing.T) {
	iv, ok := Parse("10:00-12:00 (checkpoint 11:00)")
	assert.True(t, ok)
	assert.Equal(t, 10*60, iv.Start)
	assert.Equal(t, 12*60, iv.End)
}

func TestParseNoTokens(t *testing.T) {
	_, ok := Parse("sometime in the afternoon")
	assert.False(t, ok)

	_, ok = Parse("")
	assert.False(t, ok)
}

func TestParseOvernightKeptAsParsed(t *testing.T) {
	iv, ok := Parse("23:00-01:00")
	assert.True(t, ok)
	assert.Equal(t, 23*60, iv.Start)
	assert.Equal(t, 60, iv.End)
}
