package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

const defaultPageSize = 20

type JobService interface {
	Create(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	// List returns active jobs matching the filter. viewerID may be empty for
	// anonymous requests; it only affects the is_saved flag.
	List(filter *dto.JobFilterRequest, viewerID string) (*dto.JobListResponse, error)
	Get(jobID, viewerID, viewerRole string) (*dto.JobResponse, error)
	Update(jobID, actorID, actorRole string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(jobID, actorID, actorRole string) error

	Save(userID, jobID string) error
	Unsave(userID, jobID string) error
	ListSaved(userID string) ([]*dto.SavedJobResponse, error)
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	appRepo  repositories.ApplicationRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository, appRepo repositories.ApplicationRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, userRepo: userRepo, appRepo: appRepo}
}

func (s *JobServiceImpl) Create(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	user, err := s.userRepo.FindByID(employerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsEmployer() {
		return nil, apperrors.NewForbiddenError("Only employers can post jobs")
	}

	status := models.JobStatusActive
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}
	currency := req.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	job := &models.Job{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Location:       req.Location,
		JobType:        models.JobType(req.JobType),
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		SalaryCurrency: currency,
		Requirements:   req.Requirements,
		PostedByID:     employerID,
		Status:         status,
		Deadline:       req.Deadline,
		IsInternship:   req.IsInternship,
		Remote:         req.Remote,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	job.PostedBy = user
	return dto.NewJobResponse(job, 0, false), nil
}

func (s *JobServiceImpl) List(filter *dto.JobFilterRequest, viewerID string) (*dto.JobListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	repoFilter := repositories.JobFilter{
		Status:       models.JobStatusActive,
		Search:       filter.Search,
		Category:     filter.Category,
		Location:     filter.Location,
		JobType:      models.JobType(filter.JobType),
		IsInternship: filter.IsInternship,
		Remote:       filter.Remote,
		SalaryMin:    filter.SalaryMin,
		SalaryMax:    filter.SalaryMax,
		Limit:        pageSize,
		Offset:       (page - 1) * pageSize,
	}
	jobs, err := s.jobRepo.FindWithFilter(repoFilter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp, err := s.toResponse(&jobs[i], viewerID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	total, err := s.jobRepo.CountWithFilter(repoFilter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.JobListResponse{Jobs: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Get returns any active job. Drafts and closed jobs are only visible to their
// owner or an admin; everyone else gets a not-found, never a forbidden, so the
// job's existence is not leaked.
func (s *JobServiceImpl) Get(jobID, viewerID, viewerRole string) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusActive &&
		job.PostedByID != viewerID && viewerRole != string(models.RoleAdmin) {
		return nil, apperrors.ErrJobNotFound
	}
	return s.toResponse(job, viewerID)
}

func (s *JobServiceImpl) Update(jobID, actorID, actorRole string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedByID != actorID && actorRole != string(models.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = models.JobType(*req.JobType)
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.SalaryCurrency != nil {
		job.SalaryCurrency = *req.SalaryCurrency
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}
	if req.IsInternship != nil {
		job.IsInternship = *req.IsInternship
	}
	if req.Remote != nil {
		job.Remote = *req.Remote
	}
	if req.Status != nil {
		status := models.JobStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.ErrInvalidJobStatus
		}
		job.Status = status
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toResponse(job, actorID)
}

func (s *JobServiceImpl) Delete(jobID, actorID, actorRole string) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}
	if job.PostedByID != actorID && actorRole != string(models.RoleAdmin) {
		return apperrors.ErrForbidden
	}
	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Save bookmarks a job for later. Saving twice is a no-op.
func (s *JobServiceImpl) Save(userID, jobID string) error {
	if _, err := s.findJob(jobID); err != nil {
		return err
	}
	saved, err := s.jobRepo.IsJobSaved(userID, jobID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if saved {
		return nil
	}
	if err := s.jobRepo.SaveJob(&models.SavedJob{UserID: userID, JobID: jobID}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) Unsave(userID, jobID string) error {
	err := s.jobRepo.UnsaveJob(userID, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrSavedJobNotFound) {
			return apperrors.ErrJobNotSaved
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) ListSaved(userID string) ([]*dto.SavedJobResponse, error) {
	saved, err := s.jobRepo.FindSavedByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.SavedJobResponse, 0, len(saved))
	for i := range saved {
		count, err := s.appRepo.CountByJob(saved[i].JobID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		responses = append(responses, &dto.SavedJobResponse{
			ID:      saved[i].ID,
			Job:     dto.NewJobResponse(saved[i].Job, count, true),
			SavedAt: saved[i].CreatedAt,
		})
	}
	return responses, nil
}

func (s *JobServiceImpl) findJob(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) toResponse(job *models.Job, viewerID string) (*dto.JobResponse, error) {
	count, err := s.appRepo.CountByJob(job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	isSaved := false
	if viewerID != "" {
		isSaved, err = s.jobRepo.IsJobSaved(viewerID, job.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return dto.NewJobResponse(job, count, isSaved), nil
}
