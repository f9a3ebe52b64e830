package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(req *dto.RefreshTokenRequest) (*dto.AuthResponse, error)
	Logout(req *dto.LogoutRequest) error
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	refreshTTL  time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository, refreshTTL time.Duration) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		refreshTTL:  refreshTTL,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if role != models.RoleJobSeeker && role != models.RoleEmployer {
		return nil, apperrors.ErrInvalidUserRole
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		PhoneNumber:  req.PhoneNumber,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Every account starts with an empty profile matching its role.
	switch role {
	case models.RoleJobSeeker:
		if err := s.profileRepo.CreateJobSeekerProfile(&models.JobSeekerProfile{UserID: user.ID}); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case models.RoleEmployer:
		// The username doubles as the company name until the employer fills
		// their profile in.
		profile := &models.EmployerProfile{UserID: user.ID, CompanyName: user.Username}
		if err := s.profileRepo.CreateEmployerProfile(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.issueTokens(user, "Registration successful")
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokens(user, "Login successful")
}

// Refresh rotates the refresh token: the presented token is consumed and a
// fresh pair is issued.
func (s *AuthServiceImpl) Refresh(req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(stored.Token)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.userRepo.DeleteRefreshToken(stored.Token); err != nil {
		logger.Warn("failed to revoke rotated refresh token", "error", err)
	}
	return s.issueTokens(user, "")
}

func (s *AuthServiceImpl) Logout(req *dto.LogoutRequest) error {
	err := s.userRepo.DeleteRefreshToken(req.RefreshToken)
	if err != nil && !errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return apperrors.InternalError(err)
	}
	// Logging out with an unknown token is a no-op, not an error.
	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User, message string) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.userRepo.CreateRefreshToken(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         dto.NewUserResponse(user),
		Message:      message,
	}, nil
}
