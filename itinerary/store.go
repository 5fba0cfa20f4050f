package itinerary

import (
	"errors"
	"sync"

	"wayfarer/models"
	"wayfarer/schedule"
	"wayfarer/utils"
)

var (
	ErrTripNotFound  = errors.New("trip not found")
	ErrEntryNotFound = errors.New("entry index out of range")
)

// Notifier receives a change event after every committed mutation so
// derived views (expenses, map, presentation) can recompute. Listeners are
// read-only; they never hold their own copy of the entries.
type Notifier interface {
	TripChanged(tripID string, event map[string]any)
}

// Trip is the in-memory model of one planned trip. It lives for the
// session only; nothing here is persisted.
type Trip struct {
	TripID      string
	Destination string
	Narrative   string
	BudgetText  string
	Tags        []string

	// entries are kept day-grouped; within a day the order is whatever
	// the last validation pass produced
	entries []models.ItineraryEntry
	// day label -> conflict descriptions; a clean day has no key
	warnings map[string][]string

	// bumped on every Seed; stale async results compare against it
	epoch uint64

	mu sync.Mutex
}

// Store owns all live trips.
type Store struct {
	mu       sync.RWMutex
	trips    map[string]*Trip
	notifier Notifier
}

func NewStore() *Store {
	return &Store{trips: make(map[string]*Trip)}
}

// Trips is the process-wide store.
var Trips = NewStore()

func (s *Store) SetNotifier(n Notifier) {
	s.mu.Lock()
	s.notifier = n
	s.mu.Unlock()
}

func (s *Store) notify(tripID string, event map[string]any) {
	s.mu.RLock()
	n := s.notifier
	s.mu.RUnlock()
	if n != nil {
		n.TripChanged(tripID, event)
	}
}

func (s *Store) get(tripID string) (*Trip, error) {
	s.mu.RLock()
	t, ok := s.trips[tripID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrTripNotFound
	}
	return t, nil
}

// Seed replaces a trip's collection with a fresh planning result. Called
// once per planning response; creates the trip if needed. Returns the trip
// id and the new epoch.
func (s *Store) Seed(tripID string, destination, narrative, budgetText string, tags []string, raw []models.ItineraryEntry) (string, uint64) {
	if tripID == "" {
		tripID = utils.GetUUID()
	}

	s.mu.Lock()
	t, ok := s.trips[tripID]
	if !ok {
		t = &Trip{TripID: tripID}
		s.trips[tripID] = t
	}
	s.mu.Unlock()

	t.mu.Lock()
	t.Destination = destination
	t.Narrative = narrative
	t.BudgetText = budgetText
	t.Tags = tags
	t.entries = make([]models.ItineraryEntry, 0, len(raw))
	for _, e := range raw {
		normalizeEntry(&e)
		t.entries = append(t.entries, e)
	}
	t.warnings = make(map[string][]string)
	for _, day := range t.dayLabels() {
		t.revalidateDay(day)
	}
	t.epoch++
	epoch := t.epoch
	t.mu.Unlock()

	s.notify(tripID, utils.M{"action": "seed", "epoch": epoch})
	return tripID, epoch
}

// Epoch returns the trip's current generation counter.
func (s *Store) Epoch(tripID string) (uint64, error) {
	t, err := s.get(tripID)
	if err != nil {
		return 0, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.epoch, nil
}

// Insert appends an entry to the given day and re-validates only that day.
func (s *Store) Insert(tripID, day string, entry models.ItineraryEntry) error {
	t, err := s.get(tripID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	entry.Day = day
	normalizeEntry(&entry)
	t.entries = append(t.entries, entry)
	t.revalidateDay(entry.Day)
	t.mu.Unlock()

	s.notify(tripID, utils.M{"action": "insert", "day": entry.Day})
	return nil
}

// InsertIfCurrent applies an async insert only if the trip epoch still
// matches. A late result for a reseeded trip is dropped silently; the
// caller learns it was stale but the user never sees an error.
func (s *Store) InsertIfCurrent(tripID string, epoch uint64, day string, entry models.ItineraryEntry) (applied bool, err error) {
	t, err := s.get(tripID)
	if err != nil {
		return false, err
	}

	t.mu.Lock()
	if t.epoch != epoch {
		t.mu.Unlock()
		return false, nil
	}
	entry.Day = day
	normalizeEntry(&entry)
	t.entries = append(t.entries, entry)
	t.revalidateDay(entry.Day)
	t.mu.Unlock()

	s.notify(tripID, utils.M{"action": "insert", "day": entry.Day})
	return true, nil
}

// Delete removes the entry at index and re-validates only its day.
func (s *Store) Delete(tripID string, index int) error {
	t, err := s.get(tripID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	if index < 0 || index >= len(t.entries) {
		t.mu.Unlock()
		return ErrEntryNotFound
	}
	day := t.entries[index].Day
	t.entries = append(t.entries[:index], t.entries[index+1:]...)
	t.revalidateDay(day)
	t.mu.Unlock()

	s.notify(tripID, utils.M{"action": "delete", "day": day})
	return nil
}

// Move takes the entry at sourceIndex, reassigns it to destDay and places
// it adjacent to destEntryID (after it when insertAfter). Both affected
// days are re-validated; when source and destination day coincide the day
// is validated once. An unknown destEntryID appends to the collection end.
func (s *Store) Move(tripID string, sourceIndex int, destEntryID, destDay string, insertAfter bool) error {
	t, err := s.get(tripID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	if sourceIndex < 0 || sourceIndex >= len(t.entries) {
		t.mu.Unlock()
		return ErrEntryNotFound
	}

	moved := t.entries[sourceIndex]
	fromDay := moved.Day
	t.entries = append(t.entries[:sourceIndex], t.entries[sourceIndex+1:]...)

	if destDay == "" {
		destDay = models.DefaultDay
	}
	moved.Day = destDay

	pos := len(t.entries)
	for i, e := range t.entries {
		if destEntryID != "" && e.EntryID == destEntryID {
			pos = i
			if insertAfter {
				pos = i + 1
			}
			break
		}
	}
	t.entries = append(t.entries[:pos], append([]models.ItineraryEntry{moved}, t.entries[pos:]...)...)

	t.revalidateDay(fromDay)
	if destDay != fromDay {
		t.revalidateDay(destDay)
	}
	t.mu.Unlock()

	s.notify(tripID, utils.M{"action": "move", "from": fromDay, "to": destDay})
	return nil
}

// Retime replaces the entry's time text and re-validates its day, which
// may shift the entry's position within that day.
func (s *Store) Retime(tripID string, index int, newTime string) error {
	t, err := s.get(tripID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	if index < 0 || index >= len(t.entries) {
		t.mu.Unlock()
		return ErrEntryNotFound
	}
	t.entries[index].Time = newTime
	day := t.entries[index].Day
	t.revalidateDay(day)
	t.mu.Unlock()

	s.notify(tripID, utils.M{"action": "retime", "day": day})
	return nil
}

// ReplaceContent patches display fields in place. Nothing
// ordering-relevant changes, so no re-validation runs.
func (s *Store) ReplaceContent(tripID string, index int, patch models.EntryPatch) error {
	t, err := s.get(tripID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	if index < 0 || index >= len(t.entries) {
		t.mu.Unlock()
		return ErrEntryNotFound
	}
	e := &t.entries[index]
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Cost != nil {
		e.Cost = *patch.Cost
	}
	if patch.Rating != nil {
		e.Rating = *patch.Rating
	}
	if patch.UserNote != nil {
		e.UserNote = *patch.UserNote
	}
	t.mu.Unlock()

	s.notify(tripID, utils.M{"action": "patch"})
	return nil
}

// Snapshot returns a copy of the current entries and warnings, safe for
// derived views to read without holding the trip.
func (s *Store) Snapshot(tripID string) ([]models.ItineraryEntry, map[string][]string, error) {
	t, err := s.get(tripID)
	if err != nil {
		return nil, nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	entries := make([]models.ItineraryEntry, len(t.entries))
	copy(entries, t.entries)
	warnings := make(map[string][]string, len(t.warnings))
	for day, w := range t.warnings {
		warnings[day] = append([]string(nil), w...)
	}
	return entries, warnings, nil
}

// Meta returns the trip's seeded metadata.
func (s *Store) Meta(tripID string) (destination, narrative, budgetText string, tags []string, err error) {
	t, err := s.get(tripID)
	if err != nil {
		return "", "", "", nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.Destination, t.Narrative, t.BudgetText, append([]string(nil), t.Tags...), nil
}

// --- internals (t.mu held) ---

func normalizeEntry(e *models.ItineraryEntry) {
	if e.EntryID == "" {
		e.EntryID = utils.GetUUID()
	}
	if e.Day == "" {
		e.Day = models.DefaultDay
	}
	switch e.Category {
	case models.CategoryLodging, models.CategoryFood, models.CategoryAttraction:
	default:
		e.Category = models.CategoryAttraction
	}
}

func (t *Trip) dayLabels() []string {
	var days []string
	seen := make(map[string]bool)
	for _, e := range t.entries {
		if !seen[e.Day] {
			seen[e.Day] = true
			days = append(days, e.Day)
		}
	}
	return days
}

// revalidateDay re-sorts and re-warns exactly one day. The day's entries
// are rewritten into the slice positions they already occupy, so entries
// of every other day keep both membership and order untouched.
func (t *Trip) revalidateDay(day string) {
	var positions []int
	var dayEntries []models.ItineraryEntry
	for i, e := range t.entries {
		if e.Day == day {
			positions = append(positions, i)
			dayEntries = append(dayEntries, e)
		}
	}

	if len(positions) == 0 {
		delete(t.warnings, day)
		return
	}

	ordered, warnings := schedule.Validate(dayEntries)
	for i, pos := range positions {
		t.entries[pos] = ordered[i]
	}

	if len(warnings) == 0 {
		delete(t.warnings, day)
	} else {
		t.warnings[day] = warnings
	}
}
