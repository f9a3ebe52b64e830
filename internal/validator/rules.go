package validator

import (
	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the enum rules used by DTO tags.
func registerCustomRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"is-user-role": func(fl validator.FieldLevel) bool {
			switch models.UserRole(fl.Field().String()) {
			case models.RoleJobSeeker, models.RoleEmployer:
				return true
			}
			// Admins are seeded, never registered.
			return false
		},
		"is-job-type": func(fl validator.FieldLevel) bool {
			return models.JobType(fl.Field().String()).Valid()
		},
		"is-job-status": func(fl validator.FieldLevel) bool {
			return models.JobStatus(fl.Field().String()).Valid()
		},
		"is-application-status": func(fl validator.FieldLevel) bool {
			return models.ApplicationStatus(fl.Field().String()).Valid()
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
