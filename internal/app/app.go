package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// Run boots the whole application: config, database, DI wiring, HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)

	if err := seedFirstAdmin(cfg, userRepo); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	notifier := buildNotifier(cfg)
	refreshTTL := time.Duration(cfg.JWT.RefreshTTL) * time.Hour
	svc := services.NewServiceContainer(userRepo, profileRepo, jobRepo, appRepo, notifier, refreshTTL)

	router := buildRouter(cfg, svc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server listening", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres", "":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.JobSeekerProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.SavedJob{},
		&models.Application{},
	)
}

func buildNotifier(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		return &email.NoopProvider{}
	}
	provider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("SMTP misconfigured, email disabled", "error", err)
		return &email.NoopProvider{}
	}
	return provider
}

func buildRouter(cfg *config.Config, svc *services.ServiceContainer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		gin.Recovery(),
	)

	h := handlers.NewAppHandlers(svc, validator.New())
	routes.RegisterRoutes(router, h)
	return router
}
