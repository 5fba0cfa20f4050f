package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"wayfarer/models"
	"wayfarer/rdx"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// Forecaster returns a multi-day forecast for a coordinate.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lng float64) ([]models.DailyForecast, error)
}

// Source is the live forecaster; main wires it after env load.
var Source Forecaster

const cacheTTL = 30 * time.Minute

type HTTPForecaster struct {
	BaseURL string
	HTTP    *http.Client
}

func NewHTTPForecasterFromEnv() *HTTPForecaster {
	return &HTTPForecaster{
		BaseURL: os.Getenv("WEATHER_URL"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *HTTPForecaster) Forecast(ctx context.Context, lat, lng float64) ([]models.DailyForecast, error) {
	endpoint := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.4f&longitude=%.4f&daily=weathercode,temperature_2m_min,temperature_2m_max&timezone=auto",
		f.BaseURL, lat, lng,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather status %d", resp.StatusCode)
	}

	var raw struct {
		Daily struct {
			Time        []string  `json:"time"`
			WeatherCode []int     `json:"weathercode"`
			TempMin     []float64 `json:"temperature_2m_min"`
			TempMax     []float64 `json:"temperature_2m_max"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	days := make([]models.DailyForecast, 0, len(raw.Daily.Time))
	for i, date := range raw.Daily.Time {
		d := models.DailyForecast{Date: date}
		if i < len(raw.Daily.WeatherCode) {
			d.Code = raw.Daily.WeatherCode[i]
		}
		if i < len(raw.Daily.TempMin) {
			d.MinTemp = raw.Daily.TempMin[i]
		}
		if i < len(raw.Daily.TempMax) {
			d.MaxTemp = raw.Daily.TempMax[i]
		}
		days = append(days, d)
	}
	return days, nil
}

// GET /api/weather?lat=&lng=
func GetForecast(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lat, okLat := utils.ParseFloat(r, "lat")
	lng, okLng := utils.ParseFloat(r, "lng")
	if !okLat || !okLng {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid lat/lng")
		return
	}

	cacheKey := fmt.Sprintf("weather:%.3f:%.3f", lat, lng)
	if cached := rdx.CacheGet(cacheKey); cached != "" {
		var days []models.DailyForecast
		if err := json.Unmarshal([]byte(cached), &days); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"daily": days, "cached": true})
			return
		}
	}

	if Source == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Weather is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	days, err := Source.Forecast(ctx, lat, lng)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Weather lookup failed")
		return
	}

	if payload, err := json.Marshal(days); err == nil {
		rdx.CacheSet(cacheKey, string(payload), cacheTTL)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"daily": days})
}
