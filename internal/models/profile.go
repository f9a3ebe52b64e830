package models

import "gorm.io/datatypes"

type JobSeekerProfile struct {
	BaseModel
	UserID       string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ResumeURL    string         `json:"resume_url,omitempty"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills"` // ["go", "sql", ...]
	Education    string         `json:"education,omitempty"`
	Experience   string         `json:"experience,omitempty"`
	Bio          string         `gorm:"size:500" json:"bio,omitempty"`
	Location     string         `json:"location,omitempty"`
	LinkedinURL  string         `json:"linkedin_url,omitempty"`
	GithubURL    string         `json:"github_url,omitempty"`
	PortfolioURL string         `json:"portfolio_url,omitempty"`
}

type EmployerProfile struct {
	BaseModel
	UserID             string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName        string `gorm:"size:200" json:"company_name"`
	CompanyDescription string `json:"company_description,omitempty"`
	CompanyWebsite     string `json:"company_website,omitempty"`
	CompanySize        string `gorm:"size:50" json:"company_size,omitempty"` // "1-10" .. "500+"
	Industry           string `json:"industry,omitempty"`
	Location           string `json:"location,omitempty"`
	FoundedYear        *int   `json:"founded_year,omitempty"`
}
