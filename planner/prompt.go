package planner

import (
	"fmt"
	"strings"

	"wayfarer/models"
)

// BuildPrompt assembles the planning prompt. The upstream service does
// its own reasoning; we only hand it the trip parameters and the payload
// contract.
func BuildPrompt(req models.PlanRequest) string {
	var b strings.Builder

	b.WriteString("Create a day-by-day travel itinerary from these inputs:\n\n")
	b.WriteString(fmt.Sprintf("Destination: %s\n", req.Destination))
	if req.StartDate != "" {
		b.WriteString(fmt.Sprintf("Start date: %s\n", req.StartDate))
	}
	b.WriteString(fmt.Sprintf("Duration: %d days\n", req.Days))
	if req.Travelers != "" {
		b.WriteString(fmt.Sprintf("Travelers: %s\n", req.Travelers))
	}
	if req.Budget != "" {
		b.WriteString(fmt.Sprintf("Total budget: %s\n", req.Budget))
	}
	if req.Personality != "" {
		b.WriteString(fmt.Sprintf("Travel style: %s\n", req.Personality))
	}

	b.WriteString("\nConstraints:\n")
	b.WriteString("- Use realistic HH:MM time ranges per activity\n")
	b.WriteString("- Cluster activities geographically within a day\n")
	b.WriteString("- Include lodging and food suggestions matching the budget\n")
	b.WriteString("- Headline each day as \"Day N: <short theme>\"\n")

	b.WriteString("\nAfter the narrative, append a fenced ```json block:\n")
	b.WriteString(`{"metadata":{"totalBudgetEstimate":"...","tags":["..."],"routeEntries":[{"day":"Day 1","time":"09:00-11:00","name":"...","description":"...","latitude":"...","longitude":"...","category":"lodging|food|attraction","cost":"...","rating":"..."}]}}`)
	b.WriteString("\n")

	return b.String()
}
