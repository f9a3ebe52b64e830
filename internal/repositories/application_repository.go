package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and applicant")
)

type ApplicationRepository interface {
	// Create inserts the application. The (job_id, applicant_id) unique index
	// is the last line of defense against concurrent duplicate submits;
	// a duplicate-key failure is reported as ErrDuplicateApplication.
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	Update(app *models.Application) error
	ExistsForJobAndApplicant(jobID, applicantID string) (bool, error)

	// Role-scoped listings, newest application first.
	FindByApplicant(applicantID string) ([]models.Application, error)
	FindByJobOwner(ownerID string) ([]models.Application, error)
	FindByJob(jobID string) ([]models.Application, error)
	FindAll() ([]models.Application, error)

	// Admin stats
	CountAll() (int64, error)
	CountByStatus(status models.ApplicationStatus) (int64, error)
	CountByJob(jobID string) (int64, error)
	CountCreatedSince(since time.Time) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// withRelations preloads everything the API representation embeds.
func (r *ApplicationRepositoryImpl) withRelations() *gorm.DB {
	return r.db.
		Preload("Job").
		Preload("Job.PostedBy").
		Preload("Applicant").
		Preload("Applicant.JobSeekerProfile")
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	err := r.db.Create(app).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.withRelations().First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Update(app *models.Application) error {
	// Preloaded relations must not be written back.
	return r.db.Omit("Job", "Applicant").Save(app).Error
}

func (r *ApplicationRepositoryImpl) ExistsForJobAndApplicant(jobID, applicantID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByApplicant(applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.withRelations().
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByJobOwner(ownerID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.withRelations().
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.posted_by_id = ?", ownerID).
		Order("applications.created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByJob(jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.withRelations().
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindAll() ([]models.Application, error) {
	var apps []models.Application
	err := r.withRelations().
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// Admin stats

func (r *ApplicationRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByStatus(status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByJob(jobID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountCreatedSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
