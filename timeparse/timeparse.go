package timeparse

import (
	"regexp"
	"strconv"
	"strings"
)

// Interval is a parsed [start,end) pair in minutes from midnight.
type Interval struct {
	Start int
	End   int
}

const defaultDurationMinutes = 60

var clockToken = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// Parse scans free-form time text for HH:MM tokens and returns a
// normalized interval. A single token gets the default one-hour duration;
// with two or more tokens the first two become start and end, the rest are
// ignored. Surrounding prose is irrelevant.
//
// End before start (an activity crossing midnight) is accepted as parsed
// and may produce a false-positive overlap downstream; it is not wrapped
// or rejected here.
func Parse(text string) (Interval, bool) {
	// full-width colon shows up in CJK itineraries
	text = strings.ReplaceAll(text, "：", ":")

	tokens := clockToken.FindAllStringSubmatch(text, -1)
	if len(tokens) == 0 {
		return Interval{}, false
	}

	start := toMinutes(tokens[0])
	if len(tokens) == 1 {
		return Interval{Start: start, End: start + defaultDurationMinutes}, true
	}
	return Interval{Start: start, End: toMinutes(tokens[1])}, true
}

func toMinutes(m []string) int {
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return h*60 + min
}
