package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/GhaziTrueAlpha/Surveys/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResponseLogic 问卷完成记录业务逻辑
type ResponseLogic struct {
	db *gorm.DB
}

// NewResponseLogic 创建问卷完成记录业务逻辑
func NewResponseLogic(db *gorm.DB) *ResponseLogic {
	return &ResponseLogic{db: db}
}

// CreateResponse 供应商完成问卷后记录。
// 校验顺序：问卷存在 → 类目匹配 → 尚未完成过。
func (r *ResponseLogic) CreateResponse(vendor *model.User, surveyID, rewardEarned string) (*model.SurveyResponse, error) {
	var survey model.Survey
	err := r.db.First(&survey, "id = ?", surveyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to query survey: %w", err)
	}

	if survey.Category != vendor.Category {
		return nil, ErrNotEligible
	}

	var count int64
	err = r.db.Model(&model.SurveyResponse{}).
		Where("survey_id = ? AND vendor_id = ?", surveyID, vendor.ID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check existing response: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyCompleted
	}

	if rewardEarned == "" {
		rewardEarned = survey.RewardAmount
	}

	response := model.SurveyResponse{
		ID:           uuid.NewString(),
		SurveyID:     surveyID,
		VendorID:     vendor.ID,
		CompletedAt:  time.Now(),
		RewardEarned: rewardEarned,
	}
	if err := r.db.Create(&response).Error; err != nil {
		// 表上有(survey_id, vendor_id)唯一索引兜底并发重复提交
		return nil, ErrAlreadyCompleted
	}

	return &response, nil
}

// GetResponsesByVendor 供应商查看自己的完成记录
func (r *ResponseLogic) GetResponsesByVendor(vendorID string) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	err := r.db.Where("vendor_id = ?", vendorID).
		Order("completed_at DESC").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor responses: %w", err)
	}
	return responses, nil
}

// GetResponsesBySurvey 查看某问卷的完成记录，仅管理员或问卷创建者可见。
// 问卷不存在的判定先于权限判定。
func (r *ResponseLogic) GetResponsesBySurvey(surveyID string, actor *model.User) ([]model.SurveyResponse, error) {
	var survey model.Survey
	err := r.db.First(&survey, "id = ?", surveyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to query survey: %w", err)
	}

	if actor.Role != model.RoleAdmin && survey.CreatedBy != actor.ID {
		return nil, ErrForbidden
	}

	var responses []model.SurveyResponse
	err = r.db.Where("survey_id = ?", surveyID).
		Order("completed_at DESC").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query survey responses: %w", err)
	}
	return responses, nil
}
