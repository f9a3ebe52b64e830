package repositories

import (
	"errors"
	"strings"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrSavedJobNotFound = errors.New("saved job not found")
)

// JobFilter narrows job listings. Zero values mean "no constraint".
type JobFilter struct {
	Status       models.JobStatus
	Search       string // matches title, description, category
	Category     string
	Location     string
	JobType      models.JobType
	IsInternship *bool
	Remote       *bool
	SalaryMin    *float64 // jobs whose salary_max >= SalaryMin
	SalaryMax    *float64 // jobs whose salary_min <= SalaryMax
	Limit        int
	Offset       int
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	FindWithFilter(filter JobFilter) ([]models.Job, error)
	CountWithFilter(filter JobFilter) (int64, error)

	// Admin operations
	FindAll(limit, offset int) ([]models.Job, error)
	CountAll() (int64, error)
	CountByStatus(status models.JobStatus) (int64, error)
	CountInternships() (int64, error)
	CountCreatedSince(since time.Time) (int64, error)
	TopCategories(limit int) ([]CategoryCount, error)

	// Saved job (bookmark) operations
	SaveJob(saved *models.SavedJob) error
	IsJobSaved(userID, jobID string) (bool, error)
	UnsaveJob(userID, jobID string) error
	FindSavedByUser(userID string) ([]models.SavedJob, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("PostedBy").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	// Preloaded relations must not be written back.
	return r.db.Omit("PostedBy").Save(job).Error
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindWithFilter(filter JobFilter) ([]models.Job, error) {
	query := r.applyFilter(r.db.Model(&models.Job{}).Preload("PostedBy"), filter)

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var jobs []models.Job
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountWithFilter(filter JobFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.Model(&models.Job{}), filter).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) applyFilter(query *gorm.DB, filter JobFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", like, like, like)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.IsInternship != nil {
		query = query.Where("is_internship = ?", *filter.IsInternship)
	}
	if filter.Remote != nil {
		query = query.Where("remote = ?", *filter.Remote)
	}
	if filter.SalaryMin != nil {
		query = query.Where("salary_max >= ?", *filter.SalaryMin)
	}
	if filter.SalaryMax != nil {
		query = query.Where("salary_min <= ?", *filter.SalaryMax)
	}
	return query
}

// Admin operations

func (r *JobRepositoryImpl) FindAll(limit, offset int) ([]models.Job, error) {
	var jobs []models.Job
	query := r.db.Preload("PostedBy").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountByStatus(status models.JobStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountInternships() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("is_internship = ?", true).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountCreatedSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) TopCategories(limit int) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.Model(&models.Job{}).
		Select("category, COUNT(id) AS count").
		Group("category").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// Saved job operations

func (r *JobRepositoryImpl) SaveJob(saved *models.SavedJob) error {
	return r.db.Create(saved).Error
}

func (r *JobRepositoryImpl) IsJobSaved(userID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *JobRepositoryImpl) UnsaveJob(userID, jobID string) error {
	result := r.db.Delete(&models.SavedJob{}, "user_id = ? AND job_id = ?", userID, jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindSavedByUser(userID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.Preload("Job").Preload("Job.PostedBy").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}
