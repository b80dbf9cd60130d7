// File: windward/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"windward/config"
	"windward/database"
	availabilityRepo "windward/database/repository/availability"
	bookingRepo "windward/database/repository/booking"
	instructorRepo "windward/database/repository/instructor"
	lessonRepo "windward/database/repository/lesson"
	"windward/handlers"
	"windward/models"
	"windward/routes"
	"windward/services/ratelimit"
	"windward/services/scheduling"
	"windward/services/weather"
	"windward/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitRateCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())

	// repositories.
	lessons := lessonRepo.NewMongoLessonRepo()
	availability := availabilityRepo.NewMongoAvailabilityRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	instructors := instructorRepo.NewMongoInstructorRepo()

	// weather pipeline: throttled fetcher behind the redis snapshot cache.
	location := fmt.Sprintf("%.4f,%.4f", config.AppConfig.SchoolLat, config.AppConfig.SchoolLon)
	fetcher := weather.NewHTTPFetcher(
		config.AppConfig.WeatherAPIURL,
		config.AppConfig.WeatherAPIKey,
		config.AppConfig.SchoolLat,
		config.AppConfig.SchoolLon,
		logger,
	)
	snapshotStore := weather.NewRedisSnapshotStore(utils.GetCacheClient())
	weatherService := weather.NewService(fetcher, snapshotStore, logger)

	// scheduling engine.
	resolver := &scheduling.AvailabilityResolver{
		Repo:   availability,
		Logger: logger,
	}
	schedulingService := &scheduling.DefaultSchedulingService{
		LessonRepo:     lessons,
		BookingRepo:    bookings,
		InstructorRepo: instructors,
		Resolver:       resolver,
		Weather:        weatherService,
		Location:       location,
		WindLimits: models.WindLimits{
			Min: config.AppConfig.WindMinKnots,
			Max: config.AppConfig.WindMaxKnots,
		},
		Logger: logger,
	}

	// fixed-window limiter for the public slot query.
	counterStore := ratelimit.NewRedisCounterStore(utils.GetRateCacheClient())
	limiter := ratelimit.NewFixedWindowLimiter(
		counterStore,
		config.AppConfig.RateLimit,
		time.Duration(config.AppConfig.RateWindowSecs)*time.Second,
		logger,
	)

	bundle := &routes.HandlerBundle{
		Scheduling:   handlers.NewSchedulingHandler(schedulingService, logger),
		Availability: handlers.NewAvailabilityHandler(availability, logger),
		RateLimiter:  limiter,
	}
	routes.RegisterRoutes(router, bundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetRateCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
