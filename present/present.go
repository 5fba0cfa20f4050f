package present

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"wayfarer/models"
)

// Pure, stateless derivations over the current entries and narrative.
// Nothing in this package mutates the store or keeps state between calls.

// DayGroup is one rendered day section.
type DayGroup struct {
	Day     string                  `json:"day"`
	Entries []models.ItineraryEntry `json:"entries"`
}

// GroupByDay buckets entries per day label, days ordered by first
// appearance, entries in store order.
func GroupByDay(entries []models.ItineraryEntry) []DayGroup {
	var groups []DayGroup
	index := make(map[string]int)

	for _, e := range entries {
		i, ok := index[e.Day]
		if !ok {
			i = len(groups)
			index[e.Day] = i
			groups = append(groups, DayGroup{Day: e.Day})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// matches narrative headings like "Day 2: Pine forests & lake walks",
// "### Day 3 — Old town", "Day 1 - 市区漫步"
var dayHeading = regexp.MustCompile(`(?m)^#{0,4}\s*\**\s*Day\s*(\d+)\s*\**\s*[:：\-–—]\s*(.+)$`)

const maxThemeLen = 80

// DayThemes pulls a short theme line per day out of the narrative's
// heading pattern. Days without a matching heading get no entry.
func DayThemes(narrative string) map[string]string {
	themes := make(map[string]string)
	for _, m := range dayHeading.FindAllStringSubmatch(narrative, -1) {
		day := "Day " + m[1]
		if _, seen := themes[day]; seen {
			continue
		}
		theme := strings.TrimSpace(strings.Trim(m[2], "*# "))
		if theme == "" {
			continue
		}
		if len([]rune(theme)) > maxThemeLen {
			theme = string([]rune(theme)[:maxThemeLen])
		}
		themes[day] = theme
	}
	return themes
}

// RatedSpot is one entry of the top-rated ranking.
type RatedSpot struct {
	Entry  models.ItineraryEntry `json:"entry"`
	Rating float64               `json:"rating"`
}

var ratingNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// TopRated ranks attraction entries by the numeric rating found in their
// rating text, descending, and keeps the top three. Entries without a
// parseable rating are skipped.
func TopRated(entries []models.ItineraryEntry) []RatedSpot {
	var spots []RatedSpot
	for _, e := range entries {
		if e.Category != models.CategoryAttraction {
			continue
		}
		raw := ratingNumber.FindString(e.Rating)
		if raw == "" {
			continue
		}
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		spots = append(spots, RatedSpot{Entry: e, Rating: rating})
	}

	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].Rating > spots[j].Rating
	})
	if len(spots) > 3 {
		spots = spots[:3]
	}
	return spots
}

// Segment is one run of narrative text, bold or not.
type Segment struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// SplitBold is the minimal inline **bold** splitter for narrative
// rendering. An unclosed marker is left as literal text.
func SplitBold(text string) []Segment {
	var segments []Segment
	for text != "" {
		open := strings.Index(text, "**")
		if open < 0 {
			segments = append(segments, Segment{Text: text})
			break
		}
		closing := strings.Index(text[open+2:], "**")
		if closing < 0 {
			segments = append(segments, Segment{Text: text})
			break
		}
		if open > 0 {
			segments = append(segments, Segment{Text: text[:open]})
		}
		segments = append(segments, Segment{Text: text[open+2 : open+2+closing], Bold: true})
		text = text[open+2+closing+2:]
	}
	return segments
}
