package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func init() {
	auth.Init("test-secret", 60)
}

func TestRegister(t *testing.T) {
	f := newFixture()

	resp, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "dev@mail.test",
		Username: "dev",
		Password: "sup3rsecret",
		Role:     "job_seeker",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "job_seeker", resp.User.Role)

	// Registration creates the matching empty profile.
	_, err = f.profiles.FindJobSeekerByUserID(resp.User.ID)
	assert.NoError(t, err)

	// The issued token carries the user's identity.
	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "job_seeker", claims.Role)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	f := newFixture()

	_, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "root@site.test",
		Username: "root",
		Password: "sup3rsecret",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestRegisterDuplicates(t *testing.T) {
	f := newFixture()
	f.seedUser("dev@mail.test", "dev", models.RoleJobSeeker)

	_, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "dev@mail.test",
		Username: "other",
		Password: "sup3rsecret",
		Role:     "job_seeker",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = f.auth.Register(&dto.RegisterRequest{
		Email:    "other@mail.test",
		Username: "dev",
		Password: "sup3rsecret",
		Role:     "job_seeker",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	f := newFixture()
	registered, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "dev@mail.test",
		Username: "dev",
		Password: "sup3rsecret",
		Role:     "job_seeker",
	})
	require.NoError(t, err)

	resp, err := f.auth.Login(&dto.LoginRequest{Email: "dev@mail.test", Password: "sup3rsecret"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)

	_, err = f.auth.Login(&dto.LoginRequest{Email: "dev@mail.test", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.auth.Login(&dto.LoginRequest{Email: "ghost@mail.test", Password: "sup3rsecret"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	f := newFixture()
	resp, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "dev@mail.test",
		Username: "dev",
		Password: "sup3rsecret",
		Role:     "job_seeker",
	})
	require.NoError(t, err)

	user, err := f.users.FindByID(resp.User.ID)
	require.NoError(t, err)
	user.IsActive = false
	require.NoError(t, f.users.Update(user))

	_, err = f.auth.Login(&dto.LoginRequest{Email: "dev@mail.test", Password: "sup3rsecret"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshRotatesToken(t *testing.T) {
	f := newFixture()
	registered, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "dev@mail.test",
		Username: "dev",
		Password: "sup3rsecret",
		Role:     "job_seeker",
	})
	require.NoError(t, err)

	refreshed, err := f.auth.Refresh(&dto.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The old token is consumed.
	_, err = f.auth.Refresh(&dto.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	f := newFixture()
	registered, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "dev@mail.test",
		Username: "dev",
		Password: "sup3rsecret",
		Role:     "job_seeker",
	})
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(&dto.LogoutRequest{RefreshToken: registered.RefreshToken}))

	_, err = f.auth.Refresh(&dto.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// Logging out twice is harmless.
	assert.NoError(t, f.auth.Logout(&dto.LogoutRequest{RefreshToken: registered.RefreshToken}))
}
