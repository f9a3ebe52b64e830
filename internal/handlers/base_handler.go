package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"
)

// BaseHandler holds the pieces every resource handler shares.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON decodes the body into req and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, req)
}

// BindAndValidateQuery decodes query parameters into req and validates them.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return h.validate(c, req)
}

func (h *BaseHandler) validate(c *gin.Context, req interface{}) bool {
	if err := h.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// CurrentUser returns the authenticated user's id and role, failing the
// request when the auth middleware did not run.
func (h *BaseHandler) CurrentUser(c *gin.Context) (userID, role string, ok bool) {
	userID = middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return "", "", false
	}
	if v, exists := c.Get("role"); exists {
		if r, isString := v.(string); isString {
			role = r
		}
	}
	return userID, role, true
}

// ParsePagination reads page/page_size query params with sane bounds.
func (h *BaseHandler) ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
