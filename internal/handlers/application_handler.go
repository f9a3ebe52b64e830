package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications", middleware.AuthMiddleware())
	{
		// Role enforcement happens in the service so a non-seeker gets the
		// dedicated forbidden-role error rather than a generic one.
		apps.POST("/create", h.Submit)
		apps.GET("", h.List)
		apps.GET("/job/:jobId", h.ListForJob)
		apps.GET("/:id", h.Get)
		apps.PUT("/:id/update-status", h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, _, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Submit(userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	userID, role, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.List(userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	userID, role, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.Get(c.Param("id"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, role, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.UpdateStatus(c.Param("id"), userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID, role, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListForJob(c.Param("jobId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
