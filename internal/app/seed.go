package app

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// seedFirstAdmin creates the configured admin account if it does not exist.
// Admin accounts cannot be registered through the API, so this is the only
// way one comes into being.
func seedFirstAdmin(cfg *config.Config, userRepo repositories.UserRepository) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("no admin account configured, skipping seed")
		return nil
	}

	_, err := userRepo.FindByEmail(cfg.Admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}
	admin := &models.User{
		Email:        cfg.Admin.Email,
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsVerified:   true,
		IsActive:     true,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}
	logger.Info("seeded admin account", "email", cfg.Admin.Email)
	return nil
}
