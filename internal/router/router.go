package router

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/zorepad/influencer-hub/backend/internal/handlers"
	"github.com/zorepad/influencer-hub/backend/internal/middleware"
	"github.com/zorepad/influencer-hub/backend/internal/models"
	"github.com/zorepad/influencer-hub/backend/internal/repositories"
	"github.com/zorepad/influencer-hub/backend/pkg/cache"
	"github.com/zorepad/influencer-hub/backend/pkg/config"
	"github.com/zorepad/influencer-hub/backend/pkg/firebase"
	"go.uber.org/zap"
)

// SetupMiddleware configures global middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
}

// SetupRoutes wires repositories and handlers and registers all routes.
// catalogCache may be nil when redis is not configured.
func SetupRoutes(e *echo.Echo, db *config.DB, firebaseApp *firebase.App, catalogCache *cache.Cache, logger *zap.Logger, cfg *config.Config) {
	// Auto-migrate the relational schema
	err := db.Postgres.AutoMigrate(
		&models.User{},
		&models.SavedInfluencer{},
		&models.Campaign{},
		&models.CampaignInvite{},
		&models.CollaborationRequest{},
		&models.InfluencerReview{},
		&models.Notification{},
		&models.UserPreference{},
	)
	if err != nil {
		log.Fatalf("Failed to auto-migrate database schema: %v", err)
	}

	mongoDBName := os.Getenv("MONGO_DB_NAME")
	if mongoDBName == "" {
		mongoDBName = "influencer_hub"
	}
	mongoDatabase := db.Mongo.Database(mongoDBName)

	// Repositories
	userRepo := repositories.NewPostgresUserRepository(db.Postgres)
	influencerRepo := repositories.NewMongoInfluencerRepository(mongoDatabase, catalogCache, logger)
	savedRepo := repositories.NewPostgresSavedInfluencerRepository(db.Postgres)
	campaignRepo := repositories.NewPostgresCampaignRepository(db.Postgres)
	inviteRepo := repositories.NewPostgresCampaignInviteRepository(db.Postgres)
	collabRepo := repositories.NewPostgresCollaborationRequestRepository(db.Postgres)
	reviewRepo := repositories.NewPostgresReviewRepository(db.Postgres)
	notificationRepo := repositories.NewPostgresNotificationRepository(db.Postgres)
	preferenceRepo := repositories.NewPostgresUserPreferenceRepository(db.Postgres)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, notificationRepo, firebaseApp.AuthClient, cfg.JWTSecret, cfg.EmailRedirectBase(), cfg.AppBaseURL)
	userHandler := handlers.NewUserHandler(userRepo)
	influencerHandler := handlers.NewInfluencerHandler(influencerRepo)
	savedHandler := handlers.NewSavedInfluencerHandler(savedRepo, influencerRepo)
	campaignHandler := handlers.NewCampaignHandler(campaignRepo)
	inviteHandler := handlers.NewCampaignInviteHandler(inviteRepo, campaignRepo, influencerRepo, notificationRepo)
	collabHandler := handlers.NewCollaborationRequestHandler(collabRepo, influencerRepo, campaignRepo)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, influencerRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceRepo)

	e.GET("/health", handlers.HealthCheck)

	// Separate group so auth routes skip the JWT middleware
	authGroup := e.Group("/api/v1/auth")
	authHandler.RegisterAuthRoutes(authGroup)

	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler.RegisterUserRoutes(api)
	influencerHandler.RegisterInfluencerRoutes(api)
	savedHandler.RegisterSavedInfluencerRoutes(api)
	campaignHandler.RegisterCampaignRoutes(api)
	inviteHandler.RegisterCampaignInviteRoutes(api)
	collabHandler.RegisterCollaborationRequestRoutes(api)
	reviewHandler.RegisterReviewRoutes(api)
	notificationHandler.RegisterNotificationRoutes(api)
	preferenceHandler.RegisterPreferenceRoutes(api)
}
