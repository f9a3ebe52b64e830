package services

import (
	"errors"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationService interface {
	// Submit files an application for the authenticated job seeker. Checks run
	// in a fixed order: role, job existence, job accepting, duplicate. The DB
	// unique index backstops the duplicate check under concurrent submits.
	Submit(applicantID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)

	// List is role-scoped: job seekers see their own applications, employers
	// see applications to their jobs, admins see everything.
	List(actorID, actorRole string) (*dto.ApplicationListResponse, error)

	Get(id, actorID, actorRole string) (*dto.ApplicationResponse, error)
	UpdateStatus(id, actorID, actorRole string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
	ListForJob(jobID, actorID, actorRole string) (*dto.ApplicationListResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	notifier email.Provider
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notifier email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (s *ApplicationServiceImpl) Submit(applicantID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	applicant, err := s.userRepo.FindByID(applicantID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !applicant.IsJobSeeker() {
		return nil, apperrors.ErrForbiddenRole
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobNotAcceptingApplications
	}

	exists, err := s.appRepo.ExistsForJobAndApplicant(job.ID, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	app := &models.Application{
		JobID:       job.ID,
		ApplicantID: applicantID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(app); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	// Best-effort confirmation; a mail failure never fails the submit.
	if err := s.notifier.SendApplicationSubmitted(applicant.Email, job.Title); err != nil {
		logger.Warn("application submitted email failed", "application_id", app.ID, "error", err)
	}

	created, err := s.appRepo.FindByID(app.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toResponse(created)
}

func (s *ApplicationServiceImpl) List(actorID, actorRole string) (*dto.ApplicationListResponse, error) {
	var (
		apps []models.Application
		err  error
	)
	switch models.UserRole(actorRole) {
	case models.RoleJobSeeker:
		apps, err = s.appRepo.FindByApplicant(actorID)
	case models.RoleEmployer:
		apps, err = s.appRepo.FindByJobOwner(actorID)
	case models.RoleAdmin:
		apps, err = s.appRepo.FindAll()
	default:
		apps = nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toListResponse(apps)
}

// Get hides applications the actor may not see behind a not-found, so probing
// for other users' applications reveals nothing.
func (s *ApplicationServiceImpl) Get(id, actorID, actorRole string) (*dto.ApplicationResponse, error) {
	app, err := s.findApplication(id)
	if err != nil {
		return nil, err
	}
	if !s.canView(app, actorID, actorRole) {
		return nil, apperrors.ErrApplicationNotFound
	}
	return s.toResponse(app)
}

func (s *ApplicationServiceImpl) UpdateStatus(id, actorID, actorRole string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	app, err := s.findApplication(id)
	if err != nil {
		return nil, err
	}

	isOwner := app.Job != nil && app.Job.PostedByID == actorID
	if !isOwner && actorRole != string(models.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}

	newStatus := models.ApplicationStatus(req.Status)
	if !newStatus.Valid() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	// Any valid status may be set from any current status; there is no
	// transition table. Setting the same status again is a no-op that
	// still succeeds.
	oldStatus := app.Status
	app.Status = newStatus
	if req.Notes != nil {
		app.Notes = *req.Notes
	}
	if err := s.appRepo.Update(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if oldStatus != newStatus && app.Applicant != nil {
		if err := s.notifier.SendApplicationStatusChanged(
			app.Applicant.Email, jobTitle(app), string(oldStatus), string(newStatus),
		); err != nil {
			logger.Warn("status change email failed", "application_id", app.ID, "error", err)
		}
	}
	return s.toResponse(app)
}

func (s *ApplicationServiceImpl) ListForJob(jobID, actorID, actorRole string) (*dto.ApplicationListResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.PostedByID != actorID && actorRole != string(models.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}

	apps, err := s.appRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toListResponse(apps)
}

func (s *ApplicationServiceImpl) findApplication(id string) (*models.Application, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) canView(app *models.Application, actorID, actorRole string) bool {
	switch models.UserRole(actorRole) {
	case models.RoleAdmin:
		return true
	case models.RoleJobSeeker:
		return app.ApplicantID == actorID
	case models.RoleEmployer:
		return app.Job != nil && app.Job.PostedByID == actorID
	default:
		return false
	}
}

func (s *ApplicationServiceImpl) toResponse(app *models.Application) (*dto.ApplicationResponse, error) {
	resp := dto.NewApplicationResponse(app)
	if app.Job != nil && resp.Job != nil {
		count, err := s.appRepo.CountByJob(app.JobID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.Job.ApplicationCount = count
	}
	return resp, nil
}

func (s *ApplicationServiceImpl) toListResponse(apps []models.Application) (*dto.ApplicationListResponse, error) {
	responses := make([]*dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp, err := s.toResponse(&apps[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return &dto.ApplicationListResponse{Applications: responses, Total: int64(len(responses))}, nil
}

func jobTitle(app *models.Application) string {
	if app.Job != nil {
		return app.Job.Title
	}
	return ""
}
