package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondStatus(c, http.StatusOK, data, message)
}

func RespondStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels onto HTTP statuses. Anything
// unrecognised is logged and reported as a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidWeek),
		errors.Is(err, ErrInvalidDay),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidPlan),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrMissingField):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrImageTooLarge):
		RespondError(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, ErrPlanLimitReached):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUnitNotFound),
		errors.Is(err, ErrAnnouncementNotFound),
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrDraftNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUsernameAlreadyExists):
		RespondError(c, http.StatusConflict, "Username already exists")
	case errors.Is(err, ErrDatabaseError), errors.Is(err, ErrStorageError):
		zap.L().Error("backend error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
