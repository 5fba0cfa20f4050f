package routes

import (
	"net/http"

	"wayfarer/expense"
	"wayfarer/export"
	"wayfarer/itinerary"
	"wayfarer/maps"
	"wayfarer/notify"
	"wayfarer/places"
	"wayfarer/planner"
	"wayfarer/present"
	"wayfarer/ratelim"
	"wayfarer/reviews"
	"wayfarer/weather"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/reviewpic/*filepath", http.Dir("static/reviewpic"))
}

func AddPlanRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/plan", rl.Limit(planner.PlanTrip))
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.GET("/api/trips/:tripid", itinerary.GetTrip)
	router.POST("/api/trips/:tripid/entries", itinerary.InsertEntry)
	router.DELETE("/api/trips/:tripid/entries/:index", itinerary.DeleteEntry)
	router.PUT("/api/trips/:tripid/entries/:index", itinerary.PatchEntry)
	router.PUT("/api/trips/:tripid/entries/:index/time", itinerary.RetimeEntry)
	router.POST("/api/trips/:tripid/entries/:index/move", itinerary.MoveEntry)
}

func AddMapRoutes(router *httprouter.Router) {
	router.GET("/api/trips/:tripid/map/markers", maps.GetMarkers)
	router.GET("/api/trips/:tripid/map/viewport", maps.GetViewport)
	router.GET("/api/trips/:tripid/map/flyto", maps.GetFlyTo)
}

func AddDerivedViewRoutes(router *httprouter.Router) {
	router.GET("/api/trips/:tripid/expenses", expense.GetBreakdown)
	router.GET("/api/trips/:tripid/themes", present.GetDayThemes)
	router.GET("/api/trips/:tripid/top-spots", present.GetTopSpots)
	router.GET("/api/trips/:tripid/days", present.GetDayGroups)
}

func AddExportRoutes(router *httprouter.Router) {
	router.GET("/api/trips/:tripid/export/pdf", export.ExportPDF)
	router.GET("/api/trips/:tripid/share/qr", export.ShareQR)
}

func AddPlacesRoutes(router *httprouter.Router) {
	router.GET("/api/places/search", places.SearchPlaces)
}

func AddWeatherRoutes(router *httprouter.Router) {
	router.GET("/api/weather", weather.GetForecast)
}

func AddReviewsRoutes(router *httprouter.Router) {
	router.GET("/api/reviews", reviews.GetReviews)
	router.POST("/api/reviews", reviews.AddReview)
	router.POST("/api/reviews/:reviewid/like", reviews.LikeReview)
	router.POST("/api/reviews/:reviewid/image", reviews.UploadReviewImage)
}

func AddNotifyRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.GET("/ws/trips/:tripid", notify.WebSocketHandler(hub))
}
