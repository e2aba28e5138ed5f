package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyMessage):
		RespondError(c, http.StatusBadRequest, "Message must not be empty")
	case errors.Is(err, ErrNotAuthenticated):
		RespondError(c, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, ErrBackendUnavailable):
		RespondError(c, http.StatusBadGateway, "Backend unavailable")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
