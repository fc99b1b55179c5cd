package model

import (
	"time"
)

// SurveyResponse 供应商完成问卷的记录
type SurveyResponse struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	SurveyID    string    `json:"survey_id" gorm:"type:uuid;uniqueIndex:idx_survey_vendor;not null"`
	VendorID    string    `json:"vendor_id" gorm:"type:uuid;uniqueIndex:idx_survey_vendor;not null"`
	CompletedAt time.Time `json:"completed_at"`

	// 报酬信息
	RewardEarned string `json:"reward_earned"`
}

// TableName 自定义表名
func (SurveyResponse) TableName() string {
	return "survey_responses"
}
