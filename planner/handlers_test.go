package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wayfarer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	raw string
	err error
}

func (s stubClient) GeneratePlan(_ context.Context, _ string) (string, error) {
	return s.raw, s.err
}

func validRequest() models.PlanRequest {
	return models.PlanRequest{
		Destination: "Kyoto",
		StartDate:   "2026-10-01",
		Travelers:   "two adults",
		Budget:      "50000",
		Days:        5,
		Personality: "slow mornings, temples",
	}
}

func TestValidateRequestAccepts(t *testing.T) {
	req := validRequest()
	assert.NoError(t, ValidateRequest(&req))
}

func TestValidateRequestMissingDestination(t *testing.T) {
	req := validRequest()
	req.Destination = ""
	err := ValidateRequest(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination")
}

func TestValidateRequestDaysRange(t *testing.T) {
	req := validRequest()
	req.Days = 0
	assert.Error(t, ValidateRequest(&req))

	req = validRequest()
	req.Days = 31
	assert.Error(t, ValidateRequest(&req))

	req = validRequest()
	req.Days = 30
	assert.NoError(t, ValidateRequest(&req))
}

func TestValidateRequestLengthLimits(t *testing.T) {
	req := validRequest()
	req.Destination = strings.Repeat("x", maxDestinationLen+1)
	assert.Error(t, ValidateRequest(&req))

	req = validRequest()
	req.Budget = strings.Repeat("9", maxBudgetLen+1)
	assert.Error(t, ValidateRequest(&req))
}

func TestValidateRequestStripsMarkup(t *testing.T) {
	req := validRequest()
	req.Destination = "<b>Kyoto</b>"
	req.Personality = "<script>alert(1)</script>temples"

	require.NoError(t, ValidateRequest(&req))
	assert.Equal(t, "Kyoto", req.Destination)
	assert.NotContains(t, req.Personality, "<script>")
}

func TestBuildPromptCarriesInputs(t *testing.T) {
	prompt := BuildPrompt(validRequest())
	assert.Contains(t, prompt, "Destination: Kyoto")
	assert.Contains(t, prompt, "Duration: 5 days")
	assert.Contains(t, prompt, "routeEntries")
	assert.Contains(t, prompt, "Day N:")
}

func TestBuildPromptOmitsEmptyFields(t *testing.T) {
	prompt := BuildPrompt(models.PlanRequest{Destination: "Kyoto", Days: 2})
	assert.NotContains(t, prompt, "Travel style:")
	assert.NotContains(t, prompt, "Total budget:")
}

func TestPlanTripNormalizesGeneratedTags(t *testing.T) {
	old := Backend
	Backend = stubClient{raw: `{"narrativeText":"Day 1: Old town","metadata":{"tags":["Culture"," culture","Food "]}}`}
	defer func() { Backend = old }()

	r := httptest.NewRequest("POST", "/api/plan", strings.NewReader(`{"destination":"Kyoto","days":3}`))
	w := httptest.NewRecorder()
	PlanTrip(w, r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			TripID string   `json:"tripid"`
			Tags   []string `json:"tags"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.TripID)
	assert.Equal(t, []string{"culture", "food"}, resp.Data.Tags)
}

func TestPlanTripUpstreamFailureEnvelope(t *testing.T) {
	old := Backend
	Backend = stubClient{err: ErrUpstreamQuota}
	defer func() { Backend = old }()

	r := httptest.NewRequest("POST", "/api/plan", strings.NewReader(`{"destination":"Kyoto","days":3}`))
	w := httptest.NewRecorder()
	PlanTrip(w, r, nil)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "upstream_quota", resp["code"])
	assert.NotEmpty(t, resp["error"])
}
