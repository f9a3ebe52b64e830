package services

import (
	"encoding/json"
	"errors"

	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ProfileService interface {
	GetMe(userID string) (*dto.MeResponse, error)
	GetJobSeekerProfile(userID string) (*dto.JobSeekerProfileResponse, error)
	GetEmployerProfile(userID string) (*dto.EmployerProfileResponse, error)
	UpdateJobSeekerProfile(userID string, req *dto.UpdateJobSeekerProfileRequest) (*dto.JobSeekerProfileResponse, error)
	UpdateEmployerProfile(userID string, req *dto.UpdateEmployerProfileRequest) (*dto.EmployerProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo, profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetMe(userID string) (*dto.MeResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.MeResponse{
		User:             dto.NewUserResponse(user),
		JobSeekerProfile: dto.NewJobSeekerProfileResponse(user.JobSeekerProfile),
		EmployerProfile:  dto.NewEmployerProfileResponse(user.EmployerProfile),
	}, nil
}

func (s *ProfileServiceImpl) GetJobSeekerProfile(userID string) (*dto.JobSeekerProfileResponse, error) {
	profile, err := s.profileRepo.FindJobSeekerByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobSeekerProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) GetEmployerProfile(userID string) (*dto.EmployerProfileResponse, error) {
	profile, err := s.profileRepo.FindEmployerByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewEmployerProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateJobSeekerProfile(userID string, req *dto.UpdateJobSeekerProfileRequest) (*dto.JobSeekerProfileResponse, error) {
	profile, err := s.profileRepo.FindJobSeekerByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.ResumeURL != nil {
		profile.ResumeURL = *req.ResumeURL
	}
	if req.Skills != nil {
		raw, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.Skills = raw
	}
	if req.Education != nil {
		profile.Education = *req.Education
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.LinkedinURL != nil {
		profile.LinkedinURL = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		profile.GithubURL = *req.GithubURL
	}
	if req.PortfolioURL != nil {
		profile.PortfolioURL = *req.PortfolioURL
	}

	if err := s.profileRepo.UpdateJobSeekerProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobSeekerProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateEmployerProfile(userID string, req *dto.UpdateEmployerProfileRequest) (*dto.EmployerProfileResponse, error) {
	profile, err := s.profileRepo.FindEmployerByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.CompanyDescription != nil {
		profile.CompanyDescription = *req.CompanyDescription
	}
	if req.CompanyWebsite != nil {
		profile.CompanyWebsite = *req.CompanyWebsite
	}
	if req.CompanySize != nil {
		profile.CompanySize = *req.CompanySize
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.FoundedYear != nil {
		profile.FoundedYear = req.FoundedYear
	}

	if err := s.profileRepo.UpdateEmployerProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewEmployerProfileResponse(profile), nil
}
