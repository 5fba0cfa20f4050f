// itinerary.go
package itinerary

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"wayfarer/models"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/trips/:tripid
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	entries, warnings, err := Trips.Snapshot(tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	destination, narrative, budget, tags, _ := Trips.Meta(tripID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"tripid":      tripID,
		"destination": destination,
		"narrative":   narrative,
		"budget":      budget,
		"tags":        tags,
		"entries":     entries,
		"warnings":    warnings,
	})
}

type insertPayload struct {
	Day   string                `json:"day"`
	Entry models.ItineraryEntry `json:"entry"`
	// optional: set by async callers (place-search add); a mismatch with
	// the live trip epoch means the trip was reseeded meanwhile and the
	// insert is dropped without an error
	Epoch *uint64 `json:"epoch,omitempty"`
}

// POST /api/trips/:tripid/entries
func InsertEntry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	var payload insertPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Entry.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Entry name is required")
		return
	}
	sanitizeEntry(&payload.Entry)

	var err error
	applied := true
	if payload.Epoch != nil {
		applied, err = Trips.InsertIfCurrent(tripID, *payload.Epoch, payload.Day, payload.Entry)
	} else {
		err = Trips.Insert(tripID, payload.Day, payload.Entry)
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !applied {
		log.Printf("stale insert dropped for trip %s", tripID)
	}

	respondWithTrip(w, tripID, utils.M{"applied": applied})
}

// DELETE /api/trips/:tripid/entries/:index
func DeleteEntry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")
	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid entry index")
		return
	}

	if err := Trips.Delete(tripID, index); err != nil {
		respondStoreError(w, err)
		return
	}
	respondWithTrip(w, tripID, nil)
}

type movePayload struct {
	DestEntryID string `json:"dest_entryid"`
	DestDay     string `json:"dest_day"`
	InsertAfter bool   `json:"insert_after"`
}

// POST /api/trips/:tripid/entries/:index/move
//
// The gesture layer computes (index, dest entry, insert_after) once per
// completed drag and calls this exactly once.
func MoveEntry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")
	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid entry index")
		return
	}

	var payload movePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := Trips.Move(tripID, index, payload.DestEntryID, payload.DestDay, payload.InsertAfter); err != nil {
		respondStoreError(w, err)
		return
	}
	respondWithTrip(w, tripID, nil)
}

type retimePayload struct {
	Time string `json:"time"`
}

// PUT /api/trips/:tripid/entries/:index/time
func RetimeEntry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")
	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid entry index")
		return
	}

	var payload retimePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := Trips.Retime(tripID, index, payload.Time); err != nil {
		respondStoreError(w, err)
		return
	}
	respondWithTrip(w, tripID, nil)
}

// PUT /api/trips/:tripid/entries/:index
func PatchEntry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")
	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid entry index")
		return
	}

	var patch models.EntryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if patch.Name != nil {
		clean := utils.StripHTML(*patch.Name)
		patch.Name = &clean
	}
	if patch.Description != nil {
		clean := utils.StripHTML(*patch.Description)
		patch.Description = &clean
	}

	if err := Trips.ReplaceContent(tripID, index, patch); err != nil {
		respondStoreError(w, err)
		return
	}
	respondWithTrip(w, tripID, nil)
}

func sanitizeEntry(e *models.ItineraryEntry) {
	e.Name = utils.StripHTML(e.Name)
	e.Description = utils.StripHTML(e.Description)
	e.UserNote = utils.StripHTML(e.UserNote)
}

func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrEntryNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Entry not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating trip")
	}
}

func respondWithTrip(w http.ResponseWriter, tripID string, extra utils.M) {
	entries, warnings, err := Trips.Snapshot(tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	resp := utils.M{"tripid": tripID, "entries": entries, "warnings": warnings}
	for k, v := range extra {
		resp[k] = v
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
