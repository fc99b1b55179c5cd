package model

import (
	"time"
)

// Survey 问卷模型
type Survey struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	// 基本信息
	UniqueID    string `json:"unique_id" gorm:"uniqueIndex"` // 客户编码+字母序号
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"not null"`

	// 报酬信息
	RewardAmount  string `json:"reward_amount"`
	EstimatedTime string `json:"estimated_time"`

	// 调研元数据
	LOI              string `json:"loi" gorm:"column:loi"`
	SampleSize       string `json:"sample_size"`
	IncidenceRate    string `json:"incidence_rate"`
	Market           string `json:"market"`
	TargetAudience   string `json:"target_audience"`
	ProjectType      string `json:"project_type"`
	CostPerInterview string `json:"cost_per_interview"`
	Currency         string `json:"currency"`

	// 链接信息
	SurveyLink          string `json:"survey_link" gorm:"not null"`
	MainMarketLink      string `json:"main_market_link"` // 服务端生成的验证链接
	SecurityRedirect    string `json:"security_redirect"`
	QuotaRedirect       string `json:"quota_redirect"`
	CompletionRedirect  string `json:"completion_redirect"`
	TerminationRedirect string `json:"termination_redirect"`

	// 归属信息
	ClientID  string `json:"client_id" gorm:"type:uuid;index"`
	CreatedBy string `json:"created_by" gorm:"type:uuid;index"`

	// 状态
	IsActive bool `json:"is_active" gorm:"default:true"`

	// 关联
	Responses []SurveyResponse `json:"responses,omitempty" gorm:"foreignKey:SurveyID"`
}

// TableName 自定义表名
func (Survey) TableName() string {
	return "surveys"
}
