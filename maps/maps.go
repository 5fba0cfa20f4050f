package maps

import (
	"net/http"

	"wayfarer/itinerary"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/trips/:tripid/map/markers
//
// With minLat/minLng/maxLat/maxLng query params the marker set is culled
// to that viewport; without them all placeable markers are returned.
func GetMarkers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	entries, _, err := itinerary.Trips.Snapshot(tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	markers := Project(entries)

	minLat, ok1 := utils.ParseFloat(r, "minLat")
	minLng, ok2 := utils.ParseFloat(r, "minLng")
	maxLat, ok3 := utils.ParseFloat(r, "maxLat")
	maxLng, ok4 := utils.ParseFloat(r, "maxLng")
	if ok1 && ok2 && ok3 && ok4 {
		markers = Visible(markers, Bounds{
			MinLat: minLat, MinLng: minLng, MaxLat: maxLat, MaxLng: maxLng,
		})
	}

	if markers == nil {
		markers = []Marker{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"markers": markers})
}

// GET /api/trips/:tripid/map/viewport
func GetViewport(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	entries, _, err := itinerary.Trips.Snapshot(tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	view, ok := FitViewport(Project(entries))
	if !ok {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"viewport": nil})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"viewport": view})
}

// GET /api/trips/:tripid/map/flyto?lat=..&lng=..
func GetFlyTo(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cmd, ok := FlyTo(r.URL.Query().Get("lat"), r.URL.Query().Get("lng"))
	if !ok {
		// invalid target is a no-op, not an error
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"flyto": nil})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"flyto": cmd})
}
