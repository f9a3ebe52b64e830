package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type CreateJobRequest struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Description    string     `json:"description" validate:"required"`
	Category       string     `json:"category" validate:"required,max=100"`
	Location       string     `json:"location" validate:"required,max=100"`
	JobType        string     `json:"job_type" validate:"required,is-job-type"`
	SalaryMin      *float64   `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax      *float64   `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	SalaryCurrency string     `json:"salary_currency" validate:"omitempty,len=3"`
	Requirements   string     `json:"requirements,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	IsInternship   bool       `json:"is_internship"`
	Remote         bool       `json:"remote"`
	Status         string     `json:"status" validate:"omitempty,oneof=draft active"`
}

type UpdateJobRequest struct {
	Title          *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description    *string    `json:"description,omitempty"`
	Category       *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	Location       *string    `json:"location,omitempty" validate:"omitempty,max=100"`
	JobType        *string    `json:"job_type,omitempty" validate:"omitempty,is-job-type"`
	SalaryMin      *float64   `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax      *float64   `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	SalaryCurrency *string    `json:"salary_currency,omitempty" validate:"omitempty,len=3"`
	Requirements   *string    `json:"requirements,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	IsInternship   *bool      `json:"is_internship,omitempty"`
	Remote         *bool      `json:"remote,omitempty"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,is-job-status"`
}

// JobFilterRequest carries list/search query parameters.
type JobFilterRequest struct {
	Search       string   `form:"search"`
	Category     string   `form:"category"`
	Location     string   `form:"location"`
	JobType      string   `form:"job_type" validate:"omitempty,is-job-type"`
	IsInternship *bool    `form:"is_internship"`
	Remote       *bool    `form:"remote"`
	SalaryMin    *float64 `form:"salary_min" validate:"omitempty,min=0"`
	SalaryMax    *float64 `form:"salary_max" validate:"omitempty,min=0"`
	Page         int      `form:"page" validate:"omitempty,min=1"`
	PageSize     int      `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type JobResponse struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Category         string        `json:"category"`
	Location         string        `json:"location"`
	JobType          string        `json:"job_type"`
	SalaryMin        *float64      `json:"salary_min,omitempty"`
	SalaryMax        *float64      `json:"salary_max,omitempty"`
	SalaryCurrency   string        `json:"salary_currency"`
	SalaryRange      string        `json:"salary_range"`
	Requirements     string        `json:"requirements,omitempty"`
	PostedBy         *UserResponse `json:"posted_by,omitempty"`
	Status           string        `json:"status"`
	Deadline         *time.Time    `json:"deadline,omitempty"`
	IsInternship     bool          `json:"is_internship"`
	Remote           bool          `json:"remote"`
	ApplicationCount int64         `json:"application_count"`
	IsSaved          bool          `json:"is_saved"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func NewJobResponse(job *models.Job, applicationCount int64, isSaved bool) *JobResponse {
	if job == nil {
		return nil
	}
	return &JobResponse{
		ID:               job.ID,
		Title:            job.Title,
		Description:      job.Description,
		Category:         job.Category,
		Location:         job.Location,
		JobType:          string(job.JobType),
		SalaryMin:        job.SalaryMin,
		SalaryMax:        job.SalaryMax,
		SalaryCurrency:   job.SalaryCurrency,
		SalaryRange:      job.SalaryRange(),
		Requirements:     job.Requirements,
		PostedBy:         NewUserResponse(job.PostedBy),
		Status:           string(job.Status),
		Deadline:         job.Deadline,
		IsInternship:     job.IsInternship,
		Remote:           job.Remote,
		ApplicationCount: applicationCount,
		IsSaved:          isSaved,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
}

type JobListResponse struct {
	Jobs     []*JobResponse `json:"jobs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type SavedJobResponse struct {
	ID      string       `json:"id"`
	Job     *JobResponse `json:"job"`
	SavedAt time.Time    `json:"saved_at"`
}
