package dto

import (
	"encoding/json"
	"time"

	"jobboard_backend/internal/models"
)

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	IsActive    bool      `json:"is_active"`
	DateJoined  time.Time `json:"date_joined"`
}

func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		Role:        string(u.Role),
		PhoneNumber: u.PhoneNumber,
		IsVerified:  u.IsVerified,
		IsActive:    u.IsActive,
		DateJoined:  u.CreatedAt,
	}
}

type JobSeekerProfileResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ResumeURL    string    `json:"resume_url,omitempty"`
	Skills       []string  `json:"skills"`
	Education    string    `json:"education,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	LinkedinURL  string    `json:"linkedin_url,omitempty"`
	GithubURL    string    `json:"github_url,omitempty"`
	PortfolioURL string    `json:"portfolio_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewJobSeekerProfileResponse(p *models.JobSeekerProfile) *JobSeekerProfileResponse {
	if p == nil {
		return nil
	}
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	if skills == nil {
		skills = []string{}
	}
	return &JobSeekerProfileResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		ResumeURL:    p.ResumeURL,
		Skills:       skills,
		Education:    p.Education,
		Experience:   p.Experience,
		Bio:          p.Bio,
		Location:     p.Location,
		LinkedinURL:  p.LinkedinURL,
		GithubURL:    p.GithubURL,
		PortfolioURL: p.PortfolioURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type EmployerProfileResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	CompanyDescription string    `json:"company_description,omitempty"`
	CompanyWebsite     string    `json:"company_website,omitempty"`
	CompanySize        string    `json:"company_size,omitempty"`
	Industry           string    `json:"industry,omitempty"`
	Location           string    `json:"location,omitempty"`
	FoundedYear        *int      `json:"founded_year,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewEmployerProfileResponse(p *models.EmployerProfile) *EmployerProfileResponse {
	if p == nil {
		return nil
	}
	return &EmployerProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		CompanyName:        p.CompanyName,
		CompanyDescription: p.CompanyDescription,
		CompanyWebsite:     p.CompanyWebsite,
		CompanySize:        p.CompanySize,
		Industry:           p.Industry,
		Location:           p.Location,
		FoundedYear:        p.FoundedYear,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

type UpdateJobSeekerProfileRequest struct {
	ResumeURL    *string  `json:"resume_url,omitempty" validate:"omitempty,url"`
	Skills       []string `json:"skills,omitempty"`
	Education    *string  `json:"education,omitempty"`
	Experience   *string  `json:"experience,omitempty"`
	Bio          *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=100"`
	LinkedinURL  *string  `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	GithubURL    *string  `json:"github_url,omitempty" validate:"omitempty,url"`
	PortfolioURL *string  `json:"portfolio_url,omitempty" validate:"omitempty,url"`
}

type UpdateEmployerProfileRequest struct {
	CompanyName        *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	CompanyDescription *string `json:"company_description,omitempty"`
	CompanyWebsite     *string `json:"company_website,omitempty" validate:"omitempty,url"`
	CompanySize        *string `json:"company_size,omitempty" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 500+"`
	Industry           *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	Location           *string `json:"location,omitempty" validate:"omitempty,max=100"`
	FoundedYear        *int    `json:"founded_year,omitempty" validate:"omitempty,min=1800"`
}

// MeResponse is the authenticated account plus whichever profile its role carries.
type MeResponse struct {
	User             *UserResponse             `json:"user"`
	JobSeekerProfile *JobSeekerProfileResponse `json:"job_seeker_profile,omitempty"`
	EmployerProfile  *EmployerProfileResponse  `json:"employer_profile,omitempty"`
}

// AdminUpdateUserRequest is a partial update applied by admins.
type AdminUpdateUserRequest struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=150"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=15"`
	IsVerified  *bool   `json:"is_verified,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
