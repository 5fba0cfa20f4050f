package itinerary

import (
	"testing"

	"wayfarer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTrip(t *testing.T, s *Store, raw []models.ItineraryEntry) (string, uint64) {
	t.Helper()
	tripID, epoch := s.Seed("", "Kyoto", "Day 1: Old town", "50000", nil, raw)
	require.NotEmpty(t, tripID)
	return tripID, epoch
}

func dayEntry(day, name, timeText string) models.ItineraryEntry {
	return models.ItineraryEntry{Day: day, Name: name, Time: timeText}
}

func namesOf(entries []models.ItineraryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSeedSortsEachDay(t *testing.T) {
	s := NewStore()
	tripID, _ := seedTrip(t, s, []models.ItineraryEntry{
		dayEntry("Day 1", "Dinner", "14:00-15:00"),
		dayEntry("Day 1", "Shrine", "09:00-10:00"),
		dayEntry("Day 1", "Garden", "11:00-12:00"),
	})

	entries, warnings, err := s.Snapshot(tripID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Shrine", "Garden", "Dinner"}, namesOf(entries))
	assert.Empty(t, warnings)
}

func TestSeedFillsDefaults(t *testing.T) {
	s := NewStore()
	tripID, _ := seedTrip(t, s, []models.ItineraryEntry{
		{Name: "Somewhere"},
	})

	entries, _, err := s.Snapshot(tripID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].EntryID)
	assert.Equal(t, models.DefaultDay, entries[0].Day)
	assert.Equal(t, models.CategoryAttraction, entries[0].Category)
}

func TestRetimeCreatesWarningAndReorders(t *testing.T) {
	s := NewStore()
	tripID, _ := seedTrip(t, s, []models.ItineraryEntry{
		dayEntry("Day 1", "Shrine", "09:00-10:00"),
		dayEntry("Day 1", "Garden", "11:00-12:00"),
	})

	// 11:30 starts inside the garden slot and sorts after it
	require.NoError(t, s.Retime(tripID, 0, "11:30-12:30"))

	entries, warnings, err := s.Snapshot(tripID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Garden", "Shrine"}, namesOf(entries))
	require.Len(t, warnings["Day 1"], 1)
	assert.Contains(t, warnings["Day 1"][0], "Garden")
	assert.Contains(t, warnings["Day 1"][0], "Shrine")
}

func TestWarningClearedWhenConflictResolved(t *testing.T) {
	s := NewStore()
	tripID, _ := seedTrip(t, s, []models.ItineraryEntry{
		dayEntry("Day 1", "Shrine", "09:00-11:00"),
		dayEntry("Day 1", "Garden", "10:00-12:00"),
	})

	_, warnings, _ := s.Snapshot(tripID)
	require.Len(t, warnings["Day 1"], 1)

	require.NoError(t, s.Retime(tripID, 1, "12:00-13:00"))

	_, warnings, _ = s.Snapshot(tripID)
	assert.NotContains(t, warnings, "Day 1")
}

func TestMoveOnlyTouchesAffectedDays(t *testing.T) {
	s := NewStore()
	tripID, _ := seedTrip(t, s, []models.ItineraryEntry{
		dayEntry("Day 1", "Shrine", "09:00-10:00"),
		dayEntry("Day 2", "Castle", "10:00-12:00"),
		dayEntry("Day 3", "Onsen", "15:00-17:00"),
		dayEntry("Day 3", "Dinner", "19:00-21:00"),
	})

	before, _, _ := s.Snapshot(tripID)
	var day3Before []string
	for _, e := range before {
		if e.Day == "Day 3" {
			day3Before = append(day3Before, e.Name)
		}
	}

	// move Shrine from Day 1 after Castle on Day 2
	var castleID string
	for _, e := range before {
		if e.Name == "Castle" {
			castleID = e.EntryID
		}
	}
	require.NoError(t, s.Move(tripID, 0, castleID, "Day 2", true))

	after, _, _ := s.Snapshot(tripID)
	var day2, day3After []string
	for _, e := range after {
		switch e.Day {
		case "Day 2":
			day2 = append(day2, e.Name)
		case "Day 3":
			day3After = append(day3After, e.Name)
		}
	}

	assert.Equal(t, []string{"Shrine", "Castle"}, day2)
	assert.Equal(t, day3Before, day3After)
}

func TestMoveUnknownDestinationAppends(t *testing.T) {
	s := NewStore()
	tripID, _ := seedTrip(t, s, []models.ItineraryEntry{
		dayEntry("Day 1", "Shrine", ""),
		dayEntry("Day 2", "Castle", ""),
	})

	require.NoError(t, s.Move(tripID, 0, "no-such-entry", "Day 2", false))

	entries, _, _ := s.Snapshot(tripID)
	require.Len(t, entries, 2)
	assert.Equal(t, "Day 2", entries[0].Day)
	assert.Equal(t, "Day 2", entries[1].Day)
}

func TestInsertIfCurrentDropsStale(t *testing.T) {
	s := NewStore()
	tripID, epoch := seedTrip(t, s, []models.ItineraryEntry{
		dayEntry("Day 1", "Shrine", "09:00-10:00"),
	})

	// reseed: the old epoch is now stale
	_, newEpoch := s.Seed(tripID, "Kyoto", "", "50000", nil, []models.ItineraryEntry{
		dayEntry("Day 1", "Castle", "10:00-12:00"),
	})
	require.NotEqual(t, epoch, newEpoch)

	applied, err := s.InsertIfCurrent(tripID, epoch, "Day 1", dayEntry("Day 1", "Late arrival", ""))
	require.NoError(t, err)
	assert.False(t, applied)

	entries, _, _ := s.Snapshot(tripID)
	assert.Equal(t, []string{"Castle"}, namesOf(entries))

	applied, err = s.InsertIfCurrent(tripID, newEpoch, "Day 1", dayEntry("Day 1", "Late arrival", ""))
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestDeleteRevalidatesDay(t *testing.T) {
	s := NewStore()
	tripID, _ := seedTrip(t, s, []models.ItineraryEntry{
		dayEntry("Day 1", "Shrine", "09:00-11:00"),
		dayEntry("Day 1", "Garden", "10:00-12:00"),
	})

	_, warnings, _ := s.Snapshot(tripID)
	require.Len(t, warnings["Day 1"], 1)

	require.NoError(t, s.Delete(tripID, 0))

	entries, warnings, _ := s.Snapshot(tripID)
	assert.Equal(t, []string{"Garden"}, namesOf(entries))
	assert.NotContains(t, warnings, "Day 1")
}

func TestReplaceContentSkipsRevalidation(t *testing.T) {
	s := NewStore()
	tripID, _ := seedTrip(t, s, []models.ItineraryEntry{
		dayEntry("Day 1", "Shrine", "09:00-10:00"),
		dayEntry("Day 1", "Garden", "11:00-12:00"),
	})

	newName := "Rock garden"
	newCost := "600"
	require.NoError(t, s.ReplaceContent(tripID, 1, models.EntryPatch{Name: &newName, Cost: &newCost}))

	entries, _, _ := s.Snapshot(tripID)
	assert.Equal(t, []string{"Shrine", "Rock garden"}, namesOf(entries))
	assert.Equal(t, "600", entries[1].Cost)
}

func TestUnknownTrip(t *testing.T) {
	s := NewStore()
	_, _, err := s.Snapshot("nope")
	assert.ErrorIs(t, err, ErrTripNotFound)

	err = s.Retime("nope", 0, "09:00")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestEntryIndexOutOfRange(t *testing.T) {
	s := NewStore()
	tripID, _ := seedTrip(t, s, []models.ItineraryEntry{
		dayEntry("Day 1", "Shrine", ""),
	})

	assert.ErrorIs(t, s.Delete(tripID, 5), ErrEntryNotFound)
	assert.ErrorIs(t, s.Retime(tripID, -1, "09:00"), ErrEntryNotFound)
}

type recordingNotifier struct {
	events []map[string]any
}

func (r *recordingNotifier) TripChanged(_ string, event map[string]any) {
	r.events = append(r.events, event)
}

func TestMutationsNotify(t *testing.T) {
	s := NewStore()
	rec := &recordingNotifier{}
	s.SetNotifier(rec)

	tripID, _ := seedTrip(t, s, []models.ItineraryEntry{
		dayEntry("Day 1", "Shrine", "09:00-10:00"),
	})
	require.NoError(t, s.Insert(tripID, "Day 1", dayEntry("Day 1", "Garden", "")))
	require.NoError(t, s.Delete(tripID, 1))

	require.Len(t, rec.events, 3)
	assert.Equal(t, "seed", rec.events[0]["action"])
	assert.Equal(t, "insert", rec.events[1]["action"])
	assert.Equal(t, "delete", rec.events[2]["action"])
}
