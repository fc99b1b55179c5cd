package logic

import (
	"errors"
)

// 业务错误，handler层映射为HTTP状态码。
// 文案即API返回的message，与前端约定保持一致。
var (
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrForbidden          = errors.New("Forbidden")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrPendingApproval    = errors.New("Account pending approval")
	ErrEmailInUse         = errors.New("Email already in use")
	ErrUserNotFound       = errors.New("User not found")
	ErrSurveyNotFound     = errors.New("Survey not found")
	ErrInvalidCategory    = errors.New("Invalid survey category")
	ErrNotEligible        = errors.New("You are not eligible for this survey")
	ErrSurveyInactive     = errors.New("This survey is no longer active")
	ErrAlreadyCompleted   = errors.New("You have already completed this survey")
	ErrVendorsOnly        = errors.New("Only vendors can take surveys")
)
