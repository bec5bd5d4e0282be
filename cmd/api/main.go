package main

import (
	"context"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinic-api/internal/config"
	"github.com/clinicdesk/clinic-api/internal/handlers"
	"github.com/clinicdesk/clinic-api/internal/middleware"
	"github.com/clinicdesk/clinic-api/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDatabase)
	if err := ensureIndexes(ctx, db); err != nil {
		logger.Fatal("Failed to create indexes", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	// --- Repositories and Handlers ---
	h := handlers.NewHandler(
		repository.NewPatientRepository(db, logger),
		repository.NewBookingRepository(db, logger),
		repository.NewSurgeryRepository(db, logger),
		repository.NewUserRepository(db, logger, cfg.HashingCost),
		cfg,
		logger,
	)

	r := buildRouter(h, cfg)

	logger.Info("Starting server", zap.String("port", cfg.APIPort))
	if err := r.Run(":" + cfg.APIPort); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ensureIndexes keeps operator emails unique so duplicate registrations
// fail at the storage layer.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func buildRouter(h *handlers.Handler, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		body := gin.H{"message": "Internal server error"}
		if !cfg.IsProduction() {
			body["message"] = recovered
			body["stack"] = string(debug.Stack())
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}))

	// --- Middleware ---
	whitelist := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:3001",
		"http://localhost:5173",
		"http://127.0.0.1:3001",
	}
	if cfg.FrontendURL != "" {
		whitelist = append(whitelist, cfg.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     whitelist,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "lang"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Language())

	// --- Routes ---
	api := r.Group("/api/v1")
	{
		patients := api.Group("/patients")
		{
			patients.POST("", h.CreatePatient)
			patients.GET("", h.GetAllPatients)
			patients.GET("/:id", h.GetPatient)
			patients.PATCH("/:id", h.UpdatePatient)
			patients.DELETE("/:id", h.DeletePatient)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.GetAllBookings)
			bookings.POST("/date", h.GetBookingsByDate)
			bookings.GET("/:id", h.GetBooking)
			bookings.PATCH("/:id", h.UpdateBooking)
			bookings.DELETE("/:id", h.DeleteBooking)
		}

		surgery := api.Group("/surgery")
		{
			surgery.POST("", h.CreateSurgery)
			surgery.GET("", h.GetAllSurgeries)
			surgery.GET("/patient/:patientId", h.GetSurgeriesByPatient)
			surgery.GET("/:id", h.GetSurgery)
			surgery.PATCH("/:id", h.UpdateSurgery)
			surgery.DELETE("/:id", h.DeleteSurgery)
		}

		user := api.Group("/user")
		{
			user.POST("/login", h.Login)
			user.POST("/register", h.Register)
			user.POST("/logout", h.Logout)
			user.PATCH("/:id", middleware.Auth(cfg.JWTSecret), h.UpdateUser)
		}
	}

	r.GET("/docs/:token", middleware.ProtectDocs(cfg.JWTSecret), h.Docs)
	r.GET("/export/bookings/:token", middleware.ProtectDocs(cfg.JWTSecret), h.ExportBookings)
	r.GET("/export/patients/:token", middleware.ProtectDocs(cfg.JWTSecret), h.ExportPatients)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "not found - " + c.Request.URL.Path,
		})
	})

	return r
}
