package schedule

import (
	"fmt"
	"sort"

	"wayfarer/models"
	"wayfarer/timeparse"
)

// Validate sorts one day's entries and reports overlaps.
//
// Entries with a parseable time are stable-sorted by interval start;
// entries without one keep their original relative order and are appended
// after all timed ones. The returned ordering is what the store persists,
// so running Validate on its own output changes nothing.
//
// Overlap between adjacent timed entries is the only check. A minimum gap
// between activities is deliberately not enforced; back-to-back scheduling
// is a valid style.
func Validate(entries []models.ItineraryEntry) ([]models.ItineraryEntry, []string) {
	type timed struct {
		entry    models.ItineraryEntry
		interval timeparse.Interval
	}

	var timedEntries []timed
	var untimed []models.ItineraryEntry

	for _, e := range entries {
		if iv, ok := timeparse.Parse(e.Time); ok {
			timedEntries = append(timedEntries, timed{entry: e, interval: iv})
		} else {
			untimed = append(untimed, e)
		}
	}

	// stable: entries may share a start time
	sort.SliceStable(timedEntries, func(i, j int) bool {
		return timedEntries[i].interval.Start < timedEntries[j].interval.Start
	})

	var warnings []string
	for i := 0; i+1 < len(timedEntries); i++ {
		cur, next := timedEntries[i], timedEntries[i+1]
		if cur.interval.End > next.interval.Start {
			warnings = append(warnings, fmt.Sprintf(
				"%q (%s) overlaps %q (%s)",
				cur.entry.Name, cur.entry.Time, next.entry.Name, next.entry.Time))
		}
	}

	ordered := make([]models.ItineraryEntry, 0, len(entries))
	for _, t := range timedEntries {
		ordered = append(ordered, t.entry)
	}
	ordered = append(ordered, untimed...)

	return ordered, warnings
}
