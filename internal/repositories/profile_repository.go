package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	CreateJobSeekerProfile(profile *models.JobSeekerProfile) error
	CreateEmployerProfile(profile *models.EmployerProfile) error
	FindJobSeekerByUserID(userID string) (*models.JobSeekerProfile, error)
	FindEmployerByUserID(userID string) (*models.EmployerProfile, error)
	UpdateJobSeekerProfile(profile *models.JobSeekerProfile) error
	UpdateEmployerProfile(profile *models.EmployerProfile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateJobSeekerProfile(profile *models.JobSeekerProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateEmployerProfile(profile *models.EmployerProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindJobSeekerByUserID(userID string) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindEmployerByUserID(userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateJobSeekerProfile(profile *models.JobSeekerProfile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateEmployerProfile(profile *models.EmployerProfile) error {
	return r.db.Save(profile).Error
}
