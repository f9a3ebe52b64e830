package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type SubmitApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid4"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
}

// UpdateApplicationStatusRequest changes the review status of an application.
// The status value itself is checked in the service so an unknown value comes
// back as an invalid-status error rather than a generic validation failure.
type UpdateApplicationStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type ApplicationResponse struct {
	ID                 string                    `json:"id"`
	Job                *JobResponse              `json:"job"`
	Applicant          *UserResponse             `json:"applicant"`
	ApplicantProfile   *JobSeekerProfileResponse `json:"applicant_profile,omitempty"`
	CoverLetter        string                    `json:"cover_letter,omitempty"`
	Status             string                    `json:"status"`
	StatusDisplayClass string                    `json:"status_display_class"`
	Notes              string                    `json:"notes,omitempty"`
	AppliedDate        time.Time                 `json:"applied_date"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

func NewApplicationResponse(app *models.Application) *ApplicationResponse {
	if app == nil {
		return nil
	}
	resp := &ApplicationResponse{
		ID:                 app.ID,
		Job:                NewJobResponse(app.Job, 0, false),
		Applicant:          NewUserResponse(app.Applicant),
		CoverLetter:        app.CoverLetter,
		Status:             string(app.Status),
		StatusDisplayClass: app.Status.DisplayClass(),
		Notes:              app.Notes,
		AppliedDate:        app.CreatedAt,
		UpdatedAt:          app.UpdatedAt,
	}
	if app.Applicant != nil {
		resp.ApplicantProfile = NewJobSeekerProfileResponse(app.Applicant.JobSeekerProfile)
	}
	return resp
}

type ApplicationListResponse struct {
	Applications []*ApplicationResponse `json:"applications"`
	Total        int64                  `json:"total"`
}
