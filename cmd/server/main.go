package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"team-mentorship.backend/internal/config"
	"team-mentorship.backend/internal/infrastructure/jobs"
	"team-mentorship.backend/internal/infrastructure/repositories"
	"team-mentorship.backend/internal/interfaces/http/handlers"
	"team-mentorship.backend/internal/interfaces/http/middleware"
	"team-mentorship.backend/internal/interfaces/ws"
	"team-mentorship.backend/internal/usecases"
	"team-mentorship.backend/pkg/jwt"
	"team-mentorship.backend/pkg/logger"
	"team-mentorship.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	studentProfileRepo := repositories.NewStudentProfileRepository(db)
	mentorProfileRepo := repositories.NewMentorProfileRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	openingRepo := repositories.NewTeamOpeningRepository(db)
	openingApplicationRepo := repositories.NewOpeningApplicationRepository(db)
	invitationRepo := repositories.NewInvitationRepository(db)
	mentorApplicationRepo := repositories.NewMentorApplicationRepository(db)
	competitionRepo := repositories.NewCompetitionRepository(db)
	competitionApplicationRepo := repositories.NewCompetitionApplicationRepository(db)
	chatRepo := repositories.NewChatMessageRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Presence store backs both "who is online" and unread counters
	presenceStore := redis.NewPresenceStore()

	// Websocket hub doubles as the notifier for every usecase
	hub := ws.NewHub(presenceStore)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	profileUsecase := usecases.NewProfileUsecase(userRepo, studentProfileRepo, mentorProfileRepo)
	teamUsecase := usecases.NewTeamUsecase(teamRepo, userRepo, uow, hub)
	openingUsecase := usecases.NewOpeningUsecase(openingRepo, openingApplicationRepo, teamRepo, userRepo, uow, hub)
	invitationUsecase := usecases.NewInvitationUsecase(invitationRepo, teamRepo, userRepo, uow, hub)
	mentorApplicationUsecase := usecases.NewMentorApplicationUsecase(mentorApplicationRepo, teamRepo, mentorProfileRepo, uow, hub)
	competitionUsecase := usecases.NewCompetitionUsecase(competitionRepo)
	competitionApplicationUsecase := usecases.NewCompetitionApplicationUsecase(competitionApplicationRepo, competitionRepo, teamRepo, uow)
	chatUsecase := usecases.NewChatUsecase(chatRepo, teamRepo, userRepo, hub, presenceStore)
	dashboardUsecase := usecases.NewDashboardUsecase(userRepo, teamRepo, competitionRepo, competitionApplicationRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	teamHandler := handlers.NewTeamHandler(teamUsecase)
	openingHandler := handlers.NewOpeningHandler(openingUsecase)
	invitationHandler := handlers.NewInvitationHandler(invitationUsecase)
	mentorApplicationHandler := handlers.NewMentorApplicationHandler(mentorApplicationUsecase)
	competitionHandler := handlers.NewCompetitionHandler(competitionUsecase, competitionApplicationUsecase)
	chatHandler := handlers.NewChatHandler(chatUsecase, hub)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs and the hub
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx)

	statusJob := jobs.NewCompetitionStatusRefreshJob(competitionUsecase)
	go statusJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:              authHandler,
		profileHandler:           profileHandler,
		teamHandler:              teamHandler,
		openingHandler:           openingHandler,
		invitationHandler:        invitationHandler,
		mentorApplicationHandler: mentorApplicationHandler,
		competitionHandler:       competitionHandler,
		chatHandler:              chatHandler,
		dashboardHandler:         dashboardHandler,
		authMiddleware:           authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		statusJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Team Mentorship Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
