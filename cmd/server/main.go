package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/grandstay/hotel-backend/internal/config"
	"github.com/grandstay/hotel-backend/internal/database"
	"github.com/grandstay/hotel-backend/internal/handlers"
	"github.com/grandstay/hotel-backend/internal/metrics"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

// availableRoutes is returned by the NoRoute handler so API consumers can
// discover the surface.
var availableRoutes = []string{
	"GET /api/guests",
	"POST /api/guests",
	"GET /api/guests/:id",
	"PUT /api/guests/:id",
	"DELETE /api/guests/:id",
	"GET /api/rooms",
	"GET /api/rooms/available",
	"GET /api/rooms/by-hotel/:hotel_id",
	"PUT /api/rooms/:id/status",
	"GET /api/hotels",
	"GET /api/reservations",
	"POST /api/reservations",
	"GET /api/reservations/:id",
	"PUT /api/reservations/:id/status",
	"GET /api/payments",
	"POST /api/payments",
	"PUT /api/payments/:id/status",
	"GET /api/payments/reservation/:id",
	"GET /api/reports/revenue",
	"GET /api/reports/daily-revenue",
	"GET /api/reports/occupancy",
	"GET /api/reports/guest-stats",
	"GET /api/reports/room-utilization",
	"GET /api/reports/export",
	"GET /api/queries/guests-reservations",
	"GET /api/queries/reservations-guests",
	"GET /api/queries/staff-services",
	"GET /api/queries/guest-loyalty-analysis",
	"GET /api/queries/revenue-by-room-type",
}

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Grandstay Hotel Management Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Register Prometheus metrics
	metrics.Register()

	// Initialize repositories
	guestRepo := database.NewGuestRepository(db)
	roomRepo := database.NewRoomRepository(db)
	reservationRepo := database.NewReservationRepository(db)
	paymentRepo := database.NewPaymentRepository(db)
	reportRepo := database.NewReportRepository(db)
	analyticsRepo := database.NewAnalyticsRepository(db)

	// Initialize handlers
	guestHandler := handlers.NewGuestHandler(guestRepo)
	roomHandler := handlers.NewRoomHandler(roomRepo)
	reservationHandler := handlers.NewReservationHandler(reservationRepo)
	paymentHandler := handlers.NewPaymentHandler(paymentRepo)
	reportHandler := handlers.NewReportHandler(reportRepo, reservationRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsRepo)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check and metrics endpoints
	router.GET("/health", healthCheckHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Set environment in context so 500 responses can include detail in
	// development mode
	router.Use(func(c *gin.Context) {
		c.Set("environment", cfg.Server.Environment)
		c.Next()
	})

	// API routes
	api := router.Group("/api")
	{
		guests := api.Group("/guests")
		{
			guests.GET("", guestHandler.ListGuests)
			guests.POST("", guestHandler.CreateGuest)
			guests.GET("/:id", guestHandler.GetGuest)
			guests.PUT("/:id", guestHandler.UpdateGuest)
			guests.DELETE("/:id", guestHandler.DeleteGuest)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", roomHandler.ListRooms)
			rooms.GET("/available", roomHandler.AvailableRooms)
			rooms.GET("/by-hotel/:hotel_id", roomHandler.RoomsByHotel)
			rooms.PUT("/:id/status", roomHandler.UpdateRoomStatus)
		}

		api.GET("/hotels", roomHandler.ListHotels)

		reservations := api.Group("/reservations")
		{
			reservations.GET("", reservationHandler.ListReservations)
			reservations.POST("", reservationHandler.CreateReservation)
			reservations.GET("/:id", reservationHandler.GetReservation)
			reservations.PUT("/:id/status", reservationHandler.UpdateReservationStatus)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", paymentHandler.ListPayments)
			payments.POST("", paymentHandler.CreatePayment)
			payments.PUT("/:id/status", paymentHandler.UpdatePaymentStatus)
			payments.GET("/reservation/:id", paymentHandler.PaymentsByReservation)
		}

		reportsGroup := api.Group("/reports")
		{
			reportsGroup.GET("/revenue", reportHandler.Revenue)
			reportsGroup.GET("/daily-revenue", reportHandler.DailyRevenue)
			reportsGroup.GET("/occupancy", reportHandler.Occupancy)
			reportsGroup.GET("/guest-stats", reportHandler.GuestStats)
			reportsGroup.GET("/room-utilization", reportHandler.RoomUtilization)
			reportsGroup.GET("/export", reportHandler.Export)
		}

		queries := api.Group("/queries")
		{
			queries.GET("/guests-reservations", analyticsHandler.GuestsWithReservations)
			queries.GET("/reservations-guests", analyticsHandler.ReservationsWithGuests)
			queries.GET("/staff-services", analyticsHandler.StaffServices)
			queries.GET("/guest-loyalty-analysis", analyticsHandler.GuestLoyaltyAnalysis)
			queries.GET("/revenue-by-room-type", analyticsHandler.RevenueByRoomType)
		}
	}

	// Unhandled routes return 404 with the known surface
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":            "Route not found",
			"message":          fmt.Sprintf("The requested route %s does not exist.", c.Request.URL.Path),
			"available_routes": availableRoutes,
		})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		requestID := uuid.New().String()
		c.Set("request_id", requestID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := logrus.Fields{
			"request_id": requestID,
			"status":     status,
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		metrics.IncHTTP(c.Request.Method, c.FullPath(), strconv.Itoa(status))

		entry := logger.WithFields(fields)

		if len(c.Errors) > 0 {
			for i, err := range c.Errors {
				entry = entry.WithField(fmt.Sprintf("error_%d", i), err.Error())
			}
			entry.Error("Request failed with errors")
		} else if status >= 500 {
			entry.Error("Request completed with server error")
		} else if status >= 400 {
			entry.Warn("Request completed with client error")
		} else {
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
