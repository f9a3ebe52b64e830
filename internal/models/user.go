package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	PhoneNumber  string   `json:"phone_number,omitempty"`
	IsVerified   bool     `gorm:"default:false" json:"is_verified"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`

	// Relations. Exactly one profile exists, matching Role.
	JobSeekerProfile *JobSeekerProfile `gorm:"foreignKey:UserID" json:"-"`
	EmployerProfile  *EmployerProfile  `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens    []RefreshToken    `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) IsJobSeeker() bool { return u.Role == RoleJobSeeker }
func (u *User) IsEmployer() bool  { return u.Role == RoleEmployer }
func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
