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

type JobHandler struct {
	BaseHandler
	jobService services.JobService
}

func NewJobHandler(base BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		// Public listings, personalized when a token is presented.
		jobs.GET("", middleware.OptionalAuthMiddleware(), h.List)
		jobs.GET("/search", middleware.OptionalAuthMiddleware(), h.List)
		jobs.GET("/:id", middleware.OptionalAuthMiddleware(), h.Get)

		jobs.POST("", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleEmployer), h.Create)
		jobs.PUT("/:id", middleware.AuthMiddleware(), h.Update)
		jobs.DELETE("/:id", middleware.AuthMiddleware(), h.Delete)

		jobs.GET("/saved", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleJobSeeker), h.ListSaved)
		jobs.POST("/:id/save", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleJobSeeker), h.Save)
		jobs.DELETE("/:id/save", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleJobSeeker), h.Unsave)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, _, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.Create(userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *JobHandler) List(c *gin.Context) {
	var filter dto.JobFilterRequest
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	resp, err := h.jobService.List(&filter, middleware.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Get(c *gin.Context) {
	viewerID := middleware.GetUserID(c)
	viewerRole := c.GetString("role")

	resp, err := h.jobService.Get(c.Param("id"), viewerID, viewerRole)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, role, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.Update(c.Param("id"), userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, role, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Param("id"), userID, role); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) Save(c *gin.Context) {
	userID, _, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.jobService.Save(userID, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job saved"})
}

func (h *JobHandler) Unsave(c *gin.Context) {
	userID, _, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.jobService.Unsave(userID, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job removed from saved"})
}

func (h *JobHandler) ListSaved(c *gin.Context) {
	userID, _, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	resp, err := h.jobService.ListSaved(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_jobs": resp})
}
