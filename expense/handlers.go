package expense

import (
	"net/http"

	"wayfarer/itinerary"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/trips/:tripid/expenses
func GetBreakdown(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	entries, _, err := itinerary.Trips.Snapshot(tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	_, _, budgetText, _, _ := itinerary.Trips.Meta(tripID)

	utils.RespondWithJSON(w, http.StatusOK, Aggregate(entries, budgetText))
}
