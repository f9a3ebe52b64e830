package services

import (
	"time"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/repositories"
)

// ServiceContainer wires every service over the shared repositories.
type ServiceContainer struct {
	Auth        AuthService
	Profile     ProfileService
	Job         JobService
	Application ApplicationService
	Admin       AdminService
}

func NewServiceContainer(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	notifier email.Provider,
	refreshTTL time.Duration,
) *ServiceContainer {
	return &ServiceContainer{
		Auth:        NewAuthService(userRepo, profileRepo, refreshTTL),
		Profile:     NewProfileService(userRepo, profileRepo),
		Job:         NewJobService(jobRepo, userRepo, appRepo),
		Application: NewApplicationService(appRepo, jobRepo, userRepo, notifier),
		Admin:       NewAdminService(userRepo, jobRepo, appRepo),
	}
}
