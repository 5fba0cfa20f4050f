package models

// ItineraryEntry is one scheduled activity of a trip.
type ItineraryEntry struct {
	EntryID     string `json:"entryid"`
	Day         string `json:"day"`
	Time        string `json:"time,omitempty"` // raw free-text, authoritative for display
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// raw coordinate text as returned by the planner; "0","0" and
	// non-numeric text both mean "no location"
	Lat          string `json:"latitude,omitempty"`
	Lng          string `json:"longitude,omitempty"`
	Category     string `json:"category,omitempty"` // lodging / food / attraction
	Cost         string `json:"cost,omitempty"`     // free-text cost descriptor
	Rating       string `json:"rating,omitempty"`
	OpeningHours string `json:"opening_hours,omitempty"`
	Contact      string `json:"contact,omitempty"`
	UserNote     string `json:"user_note,omitempty"`
}

// EntryPatch overwrites display fields only; nil means "leave unchanged".
// Time and Day are deliberately not patchable here, those go through
// Retime/Move so re-validation happens.
type EntryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Cost        *string `json:"cost,omitempty"`
	Rating      *string `json:"rating,omitempty"`
	UserNote    *string `json:"user_note,omitempty"`
}

const (
	CategoryLodging    = "lodging"
	CategoryFood       = "food"
	CategoryAttraction = "attraction"

	DefaultDay = "Day 1"
)
