package models

import (
	"fmt"
	"time"
)

type Job struct {
	BaseModel
	Title          string    `gorm:"size:200;not null" json:"title"`
	Description    string    `gorm:"not null" json:"description"`
	Category       string    `gorm:"size:100;index" json:"category"`
	Location       string    `gorm:"size:100;index" json:"location"`
	JobType        JobType   `gorm:"type:varchar(20);index;default:'full_time'" json:"job_type"`
	SalaryMin      *float64  `json:"salary_min,omitempty"`
	SalaryMax      *float64  `json:"salary_max,omitempty"`
	SalaryCurrency string    `gorm:"size:10;default:'USD'" json:"salary_currency"`
	Requirements   string    `json:"requirements"`
	PostedByID     string    `gorm:"type:uuid;not null;index" json:"posted_by_id"`
	PostedBy       *User     `gorm:"foreignKey:PostedByID" json:"-"`
	Status         JobStatus `gorm:"type:varchar(20);index;default:'draft'" json:"status"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	IsInternship   bool      `gorm:"default:false" json:"is_internship"`
	Remote         bool      `gorm:"default:false" json:"remote"`
}

// SalaryRange renders the human salary label shown on job cards.
func (j *Job) SalaryRange() string {
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return fmt.Sprintf("%s %.0f - %.0f", j.SalaryCurrency, *j.SalaryMin, *j.SalaryMax)
	case j.SalaryMin != nil:
		return fmt.Sprintf("%s %.0f+", j.SalaryCurrency, *j.SalaryMin)
	case j.SalaryMax != nil:
		return fmt.Sprintf("Up to %s %.0f", j.SalaryCurrency, *j.SalaryMax)
	}
	return "Not specified"
}

// SavedJob is a bookmark, unique per (user, job), independent of applications.
type SavedJob struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"user_id"`
	JobID  string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"job_id"`
	Job    *Job   `gorm:"foreignKey:JobID" json:"-"`
}
