package maps

import (
	"math"
	"strconv"

	"wayfarer/models"
)

// Coordinate is a parsed, known-valid location.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker is one placeable itinerary entry.
type Marker struct {
	EntryID  string     `json:"entryid"`
	Name     string     `json:"name"`
	Day      string     `json:"day"`
	Category string     `json:"category"`
	Coord    Coordinate `json:"coord"`
}

// Bounds is a lat/lng axis-aligned viewport.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

// Viewport is what the map surface is asked to show.
type Viewport struct {
	Center Coordinate `json:"center"`
	Zoom   float64    `json:"zoom"`
	Bounds Bounds     `json:"bounds"`
}

// FlyToCommand asks the map surface to animate to a point.
type FlyToCommand struct {
	Center     Coordinate `json:"center"`
	Zoom       float64    `json:"zoom"`
	DurationMs int        `json:"durationMs"`
}

const (
	// degrees added around the fitted bounds so edge markers aren't
	// flush against the frame
	fitPaddingDeg = 0.02
	// degrees of slack on visibility culling so markers don't pop
	// exactly at the viewport edge
	cullMarginDeg = 0.01
	// cap so a tight cluster of destinations isn't over-zoomed
	maxZoom = 15.0

	flyToZoom       = 15.0
	flyToDurationMs = 800
)

// ParseCoordinate turns raw coordinate text into a location. Non-numeric
// text fails, and exactly (0,0) is the "no location" sentinel, never a
// real itinerary point.
func ParseCoordinate(latText, lngText string) (Coordinate, bool) {
	lat, err1 := strconv.ParseFloat(latText, 64)
	lng, err2 := strconv.ParseFloat(lngText, 64)
	if err1 != nil || err2 != nil {
		return Coordinate{}, false
	}
	if lat == 0 && lng == 0 {
		return Coordinate{}, false
	}
	return Coordinate{Lat: lat, Lng: lng}, true
}

// Project keeps only entries that can actually be placed on the map.
func Project(entries []models.ItineraryEntry) []Marker {
	var markers []Marker
	for _, e := range entries {
		coord, ok := ParseCoordinate(e.Lat, e.Lng)
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			EntryID:  e.EntryID,
			Name:     e.Name,
			Day:      e.Day,
			Category: e.Category,
			Coord:    coord,
		})
	}
	return markers
}

// FitViewport computes the padded bounding viewport over all markers,
// with zoom capped so clustered trips stay readable. Returns false when
// nothing is placeable.
func FitViewport(markers []Marker) (Viewport, bool) {
	if len(markers) == 0 {
		return Viewport{}, false
	}

	b := Bounds{
		MinLat: markers[0].Coord.Lat, MaxLat: markers[0].Coord.Lat,
		MinLng: markers[0].Coord.Lng, MaxLng: markers[0].Coord.Lng,
	}
	for _, m := range markers[1:] {
		b.MinLat = math.Min(b.MinLat, m.Coord.Lat)
		b.MaxLat = math.Max(b.MaxLat, m.Coord.Lat)
		b.MinLng = math.Min(b.MinLng, m.Coord.Lng)
		b.MaxLng = math.Max(b.MaxLng, m.Coord.Lng)
	}
	// zoom comes from the raw marker span; padding is presentation only.
	// A zero span (single marker or a tight cluster) hits the cap.
	span := math.Max(b.MaxLat-b.MinLat, b.MaxLng-b.MinLng)
	zoom := maxZoom
	if span > 0 {
		if z := math.Log2(360 / span); z < maxZoom {
			zoom = z
		}
	}

	b.MinLat -= fitPaddingDeg
	b.MaxLat += fitPaddingDeg
	b.MinLng -= fitPaddingDeg
	b.MaxLng += fitPaddingDeg

	return Viewport{
		Center: Coordinate{
			Lat: (b.MinLat + b.MaxLat) / 2,
			Lng: (b.MinLng + b.MaxLng) / 2,
		},
		Zoom:   zoom,
		Bounds: b,
	}, true
}

// Visible culls markers to the viewport expanded by a fixed margin.
// A linear scan is fine at single-trip scale (tens of points); no spatial
// index needed.
func Visible(markers []Marker, view Bounds) []Marker {
	expanded := Bounds{
		MinLat: view.MinLat - cullMarginDeg,
		MaxLat: view.MaxLat + cullMarginDeg,
		MinLng: view.MinLng - cullMarginDeg,
		MaxLng: view.MaxLng + cullMarginDeg,
	}

	var visible []Marker
	for _, m := range markers {
		if m.Coord.Lat >= expanded.MinLat && m.Coord.Lat <= expanded.MaxLat &&
			m.Coord.Lng >= expanded.MinLng && m.Coord.Lng <= expanded.MaxLng {
			visible = append(visible, m)
		}
	}
	return visible
}

// FlyTo builds the center-and-zoom request for a marker click. Invalid
// coordinates are a no-op, reported by the second return.
func FlyTo(latText, lngText string) (FlyToCommand, bool) {
	coord, ok := ParseCoordinate(latText, lngText)
	if !ok {
		return FlyToCommand{}, false
	}
	return FlyToCommand{Center: coord, Zoom: flyToZoom, DurationMs: flyToDurationMs}, true
}
