package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"wayfarer/models"
	"wayfarer/rdx"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// Geocoder resolves a free-text place query to coordinate candidates.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]models.PlaceCandidate, error)
}

// Searcher is the live geocoder; main wires it after env load.
var Searcher Geocoder

const (
	maxQueryLen = 120
	cacheTTL    = 24 * time.Hour
)

type HTTPGeocoder struct {
	BaseURL string
	HTTP    *http.Client
}

func NewHTTPGeocoderFromEnv() *HTTPGeocoder {
	return &HTTPGeocoder{
		BaseURL: os.Getenv("GEOCODER_URL"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *HTTPGeocoder) Search(ctx context.Context, query string) ([]models.PlaceCandidate, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=5", g.BaseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder status %d", resp.StatusCode)
	}

	var raw []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	candidates := make([]models.PlaceCandidate, 0, len(raw))
	for _, hit := range raw {
		var lat, lng float64
		if _, err := fmt.Sscanf(hit.Lat, "%f", &lat); err != nil {
			continue
		}
		if _, err := fmt.Sscanf(hit.Lon, "%f", &lng); err != nil {
			continue
		}
		candidates = append(candidates, models.PlaceCandidate{
			Name: hit.DisplayName,
			Lat:  lat,
			Lng:  lng,
		})
	}
	return candidates, nil
}

// GET /api/places/search?query=
func SearchPlaces(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing query")
		return
	}
	if len(query) > maxQueryLen {
		query = query[:maxQueryLen]
	}

	cacheKey := "places:search:" + strings.ToLower(query)
	if cached := rdx.CacheGet(cacheKey); cached != "" {
		var candidates []models.PlaceCandidate
		if err := json.Unmarshal([]byte(cached), &candidates); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"candidates": candidates, "cached": true})
			return
		}
	}

	if Searcher == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Place search is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	candidates, err := Searcher.Search(ctx, query)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Place search failed")
		return
	}
	if candidates == nil {
		candidates = []models.PlaceCandidate{}
	}

	if payload, err := json.Marshal(candidates); err == nil {
		rdx.CacheSet(cacheKey, string(payload), cacheTTL)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"candidates": candidates})
}
