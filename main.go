package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfarer/db"
	"wayfarer/itinerary"
	"wayfarer/middleware"
	"wayfarer/notify"
	"wayfarer/places"
	"wayfarer/planner"
	"wayfarer/ratelim"
	"wayfarer/rdx"
	"wayfarer/routes"
	"wayfarer/weather"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(planLimiter *ratelim.RateLimiter, hub *notify.Hub) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddPlanRoutes(router, planLimiter)
	routes.AddItineraryRoutes(router)
	routes.AddMapRoutes(router)
	routes.AddDerivedViewRoutes(router)
	routes.AddExportRoutes(router)
	routes.AddPlacesRoutes(router)
	routes.AddWeatherRoutes(router)
	routes.AddReviewsRoutes(router)
	routes.AddNotifyRoutes(router, hub)
	routes.AddStaticRoutes(router)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// external backends
	planner.Backend = planner.NewHTTPClientFromEnv()
	places.Searcher = places.NewHTTPGeocoderFromEnv()
	weather.Source = weather.NewHTTPForecasterFromEnv()
	rdx.InitRedis()
	if err := db.InitMongo(); err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}

	// plan generation is expensive upstream; keep it far tighter than the
	// ceiling every request shares
	planLimiter := ratelim.NewRateLimiter(0.1, 2)
	globalLimiter := ratelim.NewRateLimiter(10, 30)

	// change notification hub
	hub := notify.NewHub()
	go hub.Run()
	itinerary.Trips.SetNotifier(hub)

	router := setupRouter(planLimiter, hub)

	// apply middleware: CORS -> security headers -> global rate ceiling ->
	// client IP -> logging -> router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := middleware.Logging(middleware.ClientIP(globalLimiter.LimitHTTP(middleware.SecurityHeaders(corsHandler))))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down notification hub...")
		hub.Stop()
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
