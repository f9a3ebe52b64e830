package services

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

const (
	statsRecentWindow  = 7 * 24 * time.Hour
	statsTopCategories = 5
)

type AdminService interface {
	Stats() (*dto.AdminStatsResponse, error)

	ListUsers(page, pageSize int) (*dto.UserListResponse, error)
	GetUser(id string) (*dto.UserResponse, error)
	UpdateUser(id string, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(id string) error

	ListJobs(page, pageSize int) (*dto.JobListResponse, error)
	ModerateJob(id string, req *dto.ModerateJobRequest) (*dto.JobResponse, error)
}

type AdminServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	appRepo  repositories.ApplicationRepository
}

func NewAdminService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository, appRepo repositories.ApplicationRepository) AdminService {
	return &AdminServiceImpl{userRepo: userRepo, jobRepo: jobRepo, appRepo: appRepo}
}

func (s *AdminServiceImpl) Stats() (*dto.AdminStatsResponse, error) {
	since := time.Now().Add(-statsRecentWindow)
	stats := &dto.AdminStatsResponse{}

	var err error
	if stats.Users.Total, err = s.userRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Users.JobSeekers, err = s.userRepo.CountByRole(models.RoleJobSeeker); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Users.Employers, err = s.userRepo.CountByRole(models.RoleEmployer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Users.Admins, err = s.userRepo.CountByRole(models.RoleAdmin); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Users.NewLast7d, err = s.userRepo.CountCreatedSince(since); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if stats.Jobs.Total, err = s.jobRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Jobs.Active, err = s.jobRepo.CountByStatus(models.JobStatusActive); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Jobs.Draft, err = s.jobRepo.CountByStatus(models.JobStatusDraft); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Jobs.Closed, err = s.jobRepo.CountByStatus(models.JobStatusClosed); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Jobs.Internships, err = s.jobRepo.CountInternships(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Jobs.NewLast7d, err = s.jobRepo.CountCreatedSince(since); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if stats.Applications.Total, err = s.appRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.Applications.ByStatus = make(map[string]int64, len(models.ApplicationStatuses))
	for _, status := range models.ApplicationStatuses {
		count, err := s.appRepo.CountByStatus(status)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		stats.Applications.ByStatus[string(status)] = count
	}
	if stats.Applications.NewLast7d, err = s.appRepo.CountCreatedSince(since); err != nil {
		return nil, apperrors.InternalError(err)
	}

	top, err := s.jobRepo.TopCategories(statsTopCategories)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.TopCategories = make([]dto.CategoryStat, 0, len(top))
	for _, c := range top {
		stats.TopCategories = append(stats.TopCategories, dto.CategoryStat{Category: c.Category, Count: c.Count})
	}
	return stats, nil
}

func (s *AdminServiceImpl) ListUsers(page, pageSize int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	users, err := s.userRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return &dto.UserListResponse{Users: responses, Total: total}, nil
}

func (s *AdminServiceImpl) GetUser(id string) (*dto.UserResponse, error) {
	user, err := s.findUser(id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *AdminServiceImpl) UpdateUser(id string, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.findUser(id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.userRepo.FindByUsername(*req.Username); err == nil {
			return nil, apperrors.ErrUsernameTaken
		} else if !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		user.Username = *req.Username
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *AdminServiceImpl) DeleteUser(id string) error {
	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ListJobs returns jobs in every status, unlike the public listing.
func (s *AdminServiceImpl) ListJobs(page, pageSize int) (*dto.JobListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	jobs, err := s.jobRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.jobRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		count, err := s.appRepo.CountByJob(jobs[i].ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		responses = append(responses, dto.NewJobResponse(&jobs[i], count, false))
	}
	return &dto.JobListResponse{Jobs: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// ModerateJob approves a job into the active status or rejects it closed.
func (s *AdminServiceImpl) ModerateJob(id string, req *dto.ModerateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	switch req.Action {
	case "approve":
		job.Status = models.JobStatusActive
	case "reject":
		job.Status = models.JobStatusClosed
	default:
		return nil, apperrors.NewBadRequestError("Unknown moderation action")
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	count, err := s.appRepo.CountByJob(job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job, count, false), nil
}

func (s *AdminServiceImpl) findUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
