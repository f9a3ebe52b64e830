package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Admin       *AdminHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:        NewAuthHandler(base, svc.Auth),
		Profile:     NewProfileHandler(base, svc.Profile),
		Job:         NewJobHandler(base, svc.Job),
		Application: NewApplicationHandler(base, svc.Application),
		Admin:       NewAdminHandler(base, svc.Admin),
	}
}
