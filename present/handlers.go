package present

import (
	"net/http"

	"wayfarer/itinerary"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/trips/:tripid/themes
func GetDayThemes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	_, narrative, _, _, err := itinerary.Trips.Meta(tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"themes": DayThemes(narrative)})
}

// GET /api/trips/:tripid/top-spots
func GetTopSpots(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	entries, _, err := itinerary.Trips.Snapshot(tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	spots := TopRated(entries)
	if spots == nil {
		spots = []RatedSpot{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"spots": spots})
}

// GET /api/trips/:tripid/days
func GetDayGroups(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	entries, warnings, err := itinerary.Trips.Snapshot(tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"days":     GroupByDay(entries),
		"warnings": warnings,
	})
}
