package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"wayfarer/itinerary"
	"wayfarer/models"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// Backend is the live planning client; main wires it after env load.
var Backend Client

const (
	maxDestinationLen = 100
	maxTravelersLen   = 300
	maxBudgetLen      = 60
	maxPersonalityLen = 100
	maxStartDateLen   = 40
	maxTripDays       = 30
)

// ValidateRequest rejects bad input before any external call, with a
// field-specific message the user can act on.
func ValidateRequest(req *models.PlanRequest) error {
	req.Destination = utils.StripHTML(req.Destination)
	req.Travelers = utils.StripHTML(req.Travelers)
	req.Budget = utils.StripHTML(req.Budget)
	req.Personality = utils.StripHTML(req.Personality)
	req.StartDate = utils.StripHTML(req.StartDate)

	switch {
	case req.Destination == "":
		return fmt.Errorf("destination is required")
	case len(req.Destination) > maxDestinationLen:
		return fmt.Errorf("destination must be at most %d characters", maxDestinationLen)
	case req.Days < 1 || req.Days > maxTripDays:
		return fmt.Errorf("days must be between 1 and %d", maxTripDays)
	case len(req.Travelers) > maxTravelersLen:
		return fmt.Errorf("travelers description must be at most %d characters", maxTravelersLen)
	case len(req.Budget) > maxBudgetLen:
		return fmt.Errorf("budget must be at most %d characters", maxBudgetLen)
	case len(req.Personality) > maxPersonalityLen:
		return fmt.Errorf("personality must be at most %d characters", maxPersonalityLen)
	case len(req.StartDate) > maxStartDateLen:
		return fmt.Errorf("start date must be at most %d characters", maxStartDateLen)
	}
	return nil
}

// POST /api/plan
func PlanTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if err := ValidateRequest(&req); err != nil {
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if Backend == nil {
		utils.RespondWithErrorCode(w, http.StatusServiceUnavailable, "upstream_unavailable", "Planning backend is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 90*time.Second)
	defer cancel()

	raw, err := Backend.GeneratePlan(ctx, BuildPrompt(req))
	if err != nil {
		status, code, msg := FailureResponse(err)
		log.Printf("plan generation failed (%s): %v", code, err)
		utils.RespondWithErrorCode(w, status, code, msg)
		return
	}

	result := ParsePlanResponse(raw)

	budgetText := req.Budget
	var tags []string
	var entries []models.ItineraryEntry
	if result.Meta != nil {
		if result.Meta.TotalBudgetEstimate != "" {
			budgetText = result.Meta.TotalBudgetEstimate
		}
		// generated tags arrive with arbitrary casing and duplicates
		tags = utils.SplitTags(strings.Join(result.Meta.Tags, ","))
		entries = result.Meta.RouteEntries
	}

	tripID, epoch := itinerary.Trips.Seed("", req.Destination, result.Narrative, budgetText, tags, entries)
	normalized, warnings, _ := itinerary.Trips.Snapshot(tripID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data": utils.M{
			"tripid":    tripID,
			"epoch":     epoch,
			"narrative": result.Narrative,
			"budget":    budgetText,
			"tags":      tags,
			"entries":   normalized,
			"warnings":  warnings,
		},
	})
}
