package handler

import (
	"github.com/GhaziTrueAlpha/Surveys/internal/logic"
	"github.com/GhaziTrueAlpha/Surveys/internal/model"
)

// 请求模型

// SignupRequest 注册请求
type SignupRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Role          string `json:"role" binding:"required,oneof=vendor client"`
	CompanyName   string `json:"company_name" binding:"required"`
	AccountEmail  string `json:"account_email" binding:"required,email"`
	GST           string `json:"gst" binding:"required"`
	City          string `json:"city" binding:"required"`
	Website       string `json:"website"`
	ContactNumber string `json:"contact_number"`
	HSNSAC        string `json:"hsn_sac"`
	Country       string `json:"country"`
	Region        string `json:"region"`
}

// SigninRequest 登录请求
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest 管理员更新账号请求
type UpdateUserRequest struct {
	Flag     *string `json:"flag" binding:"omitempty,oneof=yes no"`
	Category *string `json:"category"`
	UniqueID *string `json:"unique_id"`
}

// CreateSurveyRequest 创建问卷请求
type CreateSurveyRequest struct {
	Title               string `json:"title" binding:"required"`
	Description         string `json:"description"`
	Category            string `json:"category" binding:"required"`
	RewardAmount        string `json:"reward_amount"`
	EstimatedTime       string `json:"estimated_time"`
	LOI                 string `json:"loi"`
	SampleSize          string `json:"sample_size"`
	IncidenceRate       string `json:"incidence_rate"`
	Market              string `json:"market"`
	TargetAudience      string `json:"target_audience"`
	ProjectType         string `json:"project_type"`
	CostPerInterview    string `json:"cost_per_interview"`
	Currency            string `json:"currency"`
	SurveyLink          string `json:"survey_link" binding:"required,url"`
	SecurityRedirect    string `json:"security_redirect" binding:"omitempty,url"`
	QuotaRedirect       string `json:"quota_redirect" binding:"omitempty,url"`
	CompletionRedirect  string `json:"completion_redirect" binding:"omitempty,url"`
	TerminationRedirect string `json:"termination_redirect" binding:"omitempty,url"`
	ClientID            string `json:"client_id" binding:"omitempty,uuid"`
}

// ToModel 转换为问卷模型
func (r *CreateSurveyRequest) ToModel() *model.Survey {
	return &model.Survey{
		Title:               r.Title,
		Description:         r.Description,
		Category:            r.Category,
		RewardAmount:        r.RewardAmount,
		EstimatedTime:       r.EstimatedTime,
		LOI:                 r.LOI,
		SampleSize:          r.SampleSize,
		IncidenceRate:       r.IncidenceRate,
		Market:              r.Market,
		TargetAudience:      r.TargetAudience,
		ProjectType:         r.ProjectType,
		CostPerInterview:    r.CostPerInterview,
		Currency:            r.Currency,
		SurveyLink:          r.SurveyLink,
		SecurityRedirect:    r.SecurityRedirect,
		QuotaRedirect:       r.QuotaRedirect,
		CompletionRedirect:  r.CompletionRedirect,
		TerminationRedirect: r.TerminationRedirect,
		ClientID:            r.ClientID,
	}
}

// UpdateSurveyRequest 更新问卷请求，仅更新出现的字段
type UpdateSurveyRequest struct {
	Title               *string `json:"title"`
	Description         *string `json:"description"`
	Category            *string `json:"category"`
	RewardAmount        *string `json:"reward_amount"`
	EstimatedTime       *string `json:"estimated_time"`
	LOI                 *string `json:"loi"`
	SampleSize          *string `json:"sample_size"`
	IncidenceRate       *string `json:"incidence_rate"`
	Market              *string `json:"market"`
	TargetAudience      *string `json:"target_audience"`
	ProjectType         *string `json:"project_type"`
	CostPerInterview    *string `json:"cost_per_interview"`
	Currency            *string `json:"currency"`
	SurveyLink          *string `json:"survey_link" binding:"omitempty,url"`
	SecurityRedirect    *string `json:"security_redirect" binding:"omitempty,url"`
	QuotaRedirect       *string `json:"quota_redirect" binding:"omitempty,url"`
	CompletionRedirect  *string `json:"completion_redirect" binding:"omitempty,url"`
	TerminationRedirect *string `json:"termination_redirect" binding:"omitempty,url"`
	IsActive            *bool   `json:"is_active"`
}

// ToUpdate 转换为问卷更新对象
func (r *UpdateSurveyRequest) ToUpdate() logic.SurveyUpdate {
	return logic.SurveyUpdate{
		Title:               r.Title,
		Description:         r.Description,
		Category:            r.Category,
		RewardAmount:        r.RewardAmount,
		EstimatedTime:       r.EstimatedTime,
		LOI:                 r.LOI,
		SampleSize:          r.SampleSize,
		IncidenceRate:       r.IncidenceRate,
		Market:              r.Market,
		TargetAudience:      r.TargetAudience,
		ProjectType:         r.ProjectType,
		CostPerInterview:    r.CostPerInterview,
		Currency:            r.Currency,
		SurveyLink:          r.SurveyLink,
		SecurityRedirect:    r.SecurityRedirect,
		QuotaRedirect:       r.QuotaRedirect,
		CompletionRedirect:  r.CompletionRedirect,
		TerminationRedirect: r.TerminationRedirect,
		IsActive:            r.IsActive,
	}
}

// CreateResponseRequest 提交问卷完成记录请求
type CreateResponseRequest struct {
	SurveyID     string `json:"survey_id" binding:"required"`
	RewardEarned string `json:"reward_earned"`
}

// UserProjection 登录态返回的用户投影
type UserProjection struct {
	ID       string     `json:"id"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Flag     string     `json:"flag,omitempty"`
}
