package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ProfileHandler struct {
	BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/user", middleware.AuthMiddleware(), h.Me)

	profiles := rg.Group("/profiles", middleware.AuthMiddleware())
	{
		profiles.GET("/jobseeker", middleware.RoleMiddleware(models.RoleJobSeeker), h.GetJobSeekerProfile)
		profiles.PUT("/jobseeker", middleware.RoleMiddleware(models.RoleJobSeeker), h.UpdateJobSeekerProfile)
		profiles.GET("/employer", middleware.RoleMiddleware(models.RoleEmployer), h.GetEmployerProfile)
		profiles.PUT("/employer", middleware.RoleMiddleware(models.RoleEmployer), h.UpdateEmployerProfile)
	}
}

func (h *ProfileHandler) GetJobSeekerProfile(c *gin.Context) {
	userID, _, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetJobSeekerProfile(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetEmployerProfile(c *gin.Context) {
	userID, _, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetEmployerProfile(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, _, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetMe(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateJobSeekerProfile(c *gin.Context) {
	userID, _, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateJobSeekerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateJobSeekerProfile(userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateEmployerProfile(c *gin.Context) {
	userID, _, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateEmployerProfile(userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
