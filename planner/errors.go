package planner

import (
	"errors"
	"net/http"
)

// One sentinel per upstream failure class; each maps to a distinct
// user-facing message and wire code.
var (
	ErrUpstreamAuth        = errors.New("planner: upstream rejected credentials")
	ErrUpstreamQuota       = errors.New("planner: upstream quota exhausted")
	ErrUpstreamUnavailable = errors.New("planner: upstream unavailable")
	ErrSafetyBlocked       = errors.New("planner: generation blocked by safety filter")
	ErrEmptyGeneration     = errors.New("planner: empty generation")
	ErrNetwork             = errors.New("planner: network failure")
)

type failure struct {
	status  int
	code    string
	message string
}

var failures = map[error]failure{
	ErrUpstreamAuth:        {http.StatusBadGateway, "upstream_auth", "The planning service rejected our credentials. Please try again later."},
	ErrUpstreamQuota:       {http.StatusTooManyRequests, "upstream_quota", "The planning service is over its usage limit right now. Please retry in a minute."},
	ErrUpstreamUnavailable: {http.StatusBadGateway, "upstream_unavailable", "The planning service is temporarily unavailable. Please retry."},
	ErrSafetyBlocked:       {http.StatusUnprocessableEntity, "safety_blocked", "The request was declined by the planning service's content filter. Try rephrasing your trip details."},
	ErrEmptyGeneration:     {http.StatusBadGateway, "empty_generation", "The planning service returned an empty itinerary. Please retry."},
	ErrNetwork:             {http.StatusBadGateway, "network", "Could not reach the planning service. Check your connection and retry."},
}

// FailureResponse maps a planner error onto (status, code, message) for
// the {error, code} envelope. Unknown errors get the generic bucket.
func FailureResponse(err error) (int, string, string) {
	for sentinel, f := range failures {
		if errors.Is(err, sentinel) {
			return f.status, f.code, f.message
		}
	}
	return http.StatusInternalServerError, "unknown", "Something went wrong while planning your trip. Please retry."
}
