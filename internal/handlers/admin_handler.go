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

type AdminHandler struct {
	BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, adminService: adminService}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleAdmin))
	{
		admin.GET("/stats", h.Stats)

		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/jobs", h.ListJobs)
		admin.PUT("/jobs/:id/moderate", h.ModerateJob)
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	resp, err := h.adminService.Stats()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)

	resp, err := h.adminService.ListUsers(page, pageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	resp, err := h.adminService.GetUser(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adminService.UpdateUser(c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminService.DeleteUser(c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)

	resp, err := h.adminService.ListJobs(page, pageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ModerateJob(c *gin.Context) {
	var req dto.ModerateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adminService.ModerateJob(c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
