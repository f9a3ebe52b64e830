package models

// Application is one job seeker's request to be considered for a Job.
// The composite unique index is the authority on "one application per
// (job, applicant)": two concurrent submits both passing the service-level
// existence check still cannot insert twice.
type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	Job         *Job              `gorm:"foreignKey:JobID" json:"-"`
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	Applicant   *User             `gorm:"foreignKey:ApplicantID" json:"-"`
	CoverLetter string            `json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);index;default:'pending'" json:"status"`
	Notes       string            `json:"notes"` // internal notes for the employer
}
