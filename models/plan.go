package models

// PlanRequest is the client payload for POST /api/plan.
type PlanRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date,omitempty"`
	Travelers   string `json:"travelers,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Days        int    `json:"days"`
	Personality string `json:"personality,omitempty"`
}

// PlanMeta is the optional structured payload embedded in a planning response.
type PlanMeta struct {
	TotalBudgetEstimate string           `json:"totalBudgetEstimate,omitempty"`
	Tags                []string         `json:"tags,omitempty"`
	RouteEntries        []ItineraryEntry `json:"routeEntries,omitempty"`
}

// PlanResult is what the planner client hands back after extraction.
type PlanResult struct {
	Narrative string    `json:"narrative"`
	Meta      *PlanMeta `json:"metadata,omitempty"`
}
