package handler

import (
	"errors"
	"net/http"

	"github.com/GhaziTrueAlpha/Surveys/internal/logger"
	"github.com/GhaziTrueAlpha/Surveys/internal/logic"
	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应，统一{message}结构
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// HandleError 把业务错误映射为HTTP状态码
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, logic.ErrUnauthorized),
		errors.Is(err, logic.ErrInvalidCredentials),
		errors.Is(err, logic.ErrPendingApproval):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, logic.ErrForbidden),
		errors.Is(err, logic.ErrNotEligible),
		errors.Is(err, logic.ErrVendorsOnly),
		errors.Is(err, logic.ErrSurveyInactive):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, logic.ErrUserNotFound),
		errors.Is(err, logic.ErrSurveyNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, logic.ErrEmailInUse),
		errors.Is(err, logic.ErrInvalidCategory),
		errors.Is(err, logic.ErrAlreadyCompleted):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Internal error: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
