package logic

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/GhaziTrueAlpha/Surveys/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyLogic 问卷业务逻辑
type SurveyLogic struct {
	db     *gorm.DB
	origin string // market link的外部地址前缀
}

// NewSurveyLogic 创建问卷业务逻辑
func NewSurveyLogic(db *gorm.DB, origin string) *SurveyLogic {
	return &SurveyLogic{db: db, origin: strings.TrimRight(origin, "/")}
}

// CreateSurvey 创建问卷。
// 问卷编号在同一事务内通过客户行上的计数器原子自增生成，
// 避免并发创建分配到相同字母序号。
func (s *SurveyLogic) CreateSurvey(creator *model.User, survey *model.Survey) error {
	if !model.ValidCategory(survey.Category) {
		return ErrInvalidCategory
	}

	// 管理员可代客户创建，client_id缺省归属创建者本人
	if survey.ClientID == "" {
		survey.ClientID = creator.ID
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var client model.User
		if err := tx.First(&client, "id = ?", survey.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to query client: %w", err)
		}

		if err := tx.Model(&model.User{}).Where("id = ?", client.ID).
			UpdateColumn("survey_seq", gorm.Expr("survey_seq + 1")).Error; err != nil {
			return fmt.Errorf("failed to advance survey counter: %w", err)
		}
		if err := tx.First(&client, "id = ?", client.ID).Error; err != nil {
			return fmt.Errorf("failed to reload survey counter: %w", err)
		}

		// 自增后的值减一即本问卷的序号
		seq := client.SurveySeq - 1
		survey.UniqueID = client.ClientCode() + letterSuffix(seq)
		survey.MainMarketLink = s.origin + "/survey/verify/" + survey.UniqueID

		survey.ID = uuid.NewString()
		survey.CreatedAt = time.Now()
		survey.CreatedBy = creator.ID
		survey.IsActive = true

		if err := tx.Create(survey).Error; err != nil {
			return fmt.Errorf("failed to create survey: %w", err)
		}
		return nil
	})
}

// letterSuffix 把问卷序号映射为字母序号: A..Z, AA, AB, ...
func letterSuffix(n int) string {
	if n < 26 {
		return string(rune('A' + n))
	}
	first := rune('A' + n/26 - 1)
	second := rune('A' + n%26)
	return string(first) + string(second)
}

// GetSurvey 按ID获取问卷
func (s *SurveyLogic) GetSurvey(id string) (*model.Survey, error) {
	var survey model.Survey
	err := s.db.First(&survey, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to query survey: %w", err)
	}
	return &survey, nil
}

// GetSurveyByUniqueID 按问卷编号获取问卷，验证跳转流程使用
func (s *SurveyLogic) GetSurveyByUniqueID(uniqueID string) (*model.Survey, error) {
	var survey model.Survey
	err := s.db.First(&survey, "unique_id = ?", uniqueID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to query survey: %w", err)
	}
	return &survey, nil
}

// GetSurveysFor 按角色范围获取问卷列表：
// 管理员可见全部，客户只见自己创建的，供应商只见与自身类目匹配的。
func (s *SurveyLogic) GetSurveysFor(user *model.User, category string) ([]model.Survey, error) {
	query := s.db.Model(&model.Survey{})

	switch user.Role {
	case model.RoleAdmin:
		if category != "" {
			query = query.Where("category = ?", category)
		}
	case model.RoleClient:
		query = query.Where("created_by = ?", user.ID)
		if category != "" {
			query = query.Where("category = ?", category)
		}
	case model.RoleVendor:
		// 供应商按自身类目过滤，未分配类目则列表为空
		if user.Category == "" {
			return []model.Survey{}, nil
		}
		query = query.Where("category = ?", user.Category)
	default:
		return nil, ErrForbidden
	}

	var surveys []model.Survey
	if err := query.Order("created_at DESC").Find(&surveys).Error; err != nil {
		return nil, fmt.Errorf("failed to query surveys: %w", err)
	}
	return surveys, nil
}

// SurveyUpdate 可更新的问卷字段
type SurveyUpdate struct {
	Title               *string
	Description         *string
	Category            *string
	RewardAmount        *string
	EstimatedTime       *string
	LOI                 *string
	SampleSize          *string
	IncidenceRate       *string
	Market              *string
	TargetAudience      *string
	ProjectType         *string
	CostPerInterview    *string
	Currency            *string
	SurveyLink          *string
	SecurityRedirect    *string
	QuotaRedirect       *string
	CompletionRedirect  *string
	TerminationRedirect *string
	IsActive            *bool
}

// UpdateSurvey 更新问卷，仅管理员或原创建者可操作。
// 问卷不存在的判定先于权限判定。
func (s *SurveyLogic) UpdateSurvey(id string, actor *model.User, update SurveyUpdate) (*model.Survey, error) {
	survey, err := s.GetSurvey(id)
	if err != nil {
		return nil, err
	}
	if actor.Role != model.RoleAdmin && survey.CreatedBy != actor.ID {
		return nil, ErrForbidden
	}

	updates := make(map[string]interface{})
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Category != nil {
		if !model.ValidCategory(*update.Category) {
			return nil, ErrInvalidCategory
		}
		updates["category"] = *update.Category
	}
	if update.RewardAmount != nil {
		updates["reward_amount"] = *update.RewardAmount
	}
	if update.EstimatedTime != nil {
		updates["estimated_time"] = *update.EstimatedTime
	}
	if update.LOI != nil {
		updates["loi"] = *update.LOI
	}
	if update.SampleSize != nil {
		updates["sample_size"] = *update.SampleSize
	}
	if update.IncidenceRate != nil {
		updates["incidence_rate"] = *update.IncidenceRate
	}
	if update.Market != nil {
		updates["market"] = *update.Market
	}
	if update.TargetAudience != nil {
		updates["target_audience"] = *update.TargetAudience
	}
	if update.ProjectType != nil {
		updates["project_type"] = *update.ProjectType
	}
	if update.CostPerInterview != nil {
		updates["cost_per_interview"] = *update.CostPerInterview
	}
	if update.Currency != nil {
		updates["currency"] = *update.Currency
	}
	if update.SurveyLink != nil {
		updates["survey_link"] = *update.SurveyLink
	}
	if update.SecurityRedirect != nil {
		updates["security_redirect"] = *update.SecurityRedirect
	}
	if update.QuotaRedirect != nil {
		updates["quota_redirect"] = *update.QuotaRedirect
	}
	if update.CompletionRedirect != nil {
		updates["completion_redirect"] = *update.CompletionRedirect
	}
	if update.TerminationRedirect != nil {
		updates["termination_redirect"] = *update.TerminationRedirect
	}
	if update.IsActive != nil {
		updates["is_active"] = *update.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(survey).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update survey: %w", err)
		}
	}

	return s.GetSurvey(id)
}

// DeleteSurvey 删除问卷，仅管理员或原创建者可操作
func (s *SurveyLogic) DeleteSurvey(id string, actor *model.User) error {
	survey, err := s.GetSurvey(id)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin && survey.CreatedBy != actor.ID {
		return ErrForbidden
	}

	if err := s.db.Delete(survey).Error; err != nil {
		return fmt.Errorf("failed to delete survey: %w", err)
	}
	return nil
}

// 市场列表排序方式
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortPayoutHigh = "payout-high"
	SortPayoutLow  = "payout-low"
)

// Marketplace 计算供应商当前可接的问卷：
// 类目匹配、问卷激活、且该供应商尚未完成过。
// 搜索在排序前按标题/描述做大小写不敏感子串匹配。
func (s *SurveyLogic) Marketplace(vendor *model.User, search, sortOption string) ([]model.Survey, error) {
	if vendor.Category == "" {
		return []model.Survey{}, nil
	}

	query := s.db.Model(&model.Survey{}).
		Where("category = ?", vendor.Category).
		Where("is_active = ?", true).
		Where("id NOT IN (?)",
			s.db.Model(&model.SurveyResponse{}).Select("survey_id").Where("vendor_id = ?", vendor.ID))

	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var surveys []model.Survey
	if err := query.Find(&surveys).Error; err != nil {
		return nil, fmt.Errorf("failed to query marketplace surveys: %w", err)
	}

	sortSurveys(surveys, sortOption)
	return surveys, nil
}

// sortSurveys 按指定方式排序，reward按十进制解析，缺失按0处理
func sortSurveys(surveys []model.Survey, option string) {
	switch option {
	case SortOldest:
		sort.SliceStable(surveys, func(i, j int) bool {
			return surveys[i].CreatedAt.Before(surveys[j].CreatedAt)
		})
	case SortPayoutHigh:
		sort.SliceStable(surveys, func(i, j int) bool {
			return parseReward(surveys[i].RewardAmount) > parseReward(surveys[j].RewardAmount)
		})
	case SortPayoutLow:
		sort.SliceStable(surveys, func(i, j int) bool {
			return parseReward(surveys[i].RewardAmount) < parseReward(surveys[j].RewardAmount)
		})
	default: // newest
		sort.SliceStable(surveys, func(i, j int) bool {
			return surveys[i].CreatedAt.After(surveys[j].CreatedAt)
		})
	}
}

func parseReward(amount string) float64 {
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0
	}
	return v
}

// VerifyOutcome 验证跳转流程的非错误结果
type VerifyOutcome int

const (
	VerifyRedirect        VerifyOutcome = iota // 跳转到问卷外链
	VerifySigninRequired                       // 未登录，跳转登录页
	VerifySecurityViolation                    // 类目不匹配，跳转平台安全页
)

// Verify 供应商访问market link时的验证流程。
// 类目不匹配时跳转平台级安全页，不使用问卷自带的security_redirect。
func (s *SurveyLogic) Verify(uniqueID string, user *model.User) (VerifyOutcome, *model.Survey, error) {
	survey, err := s.GetSurveyByUniqueID(uniqueID)
	if err != nil {
		return 0, nil, err
	}

	if user == nil {
		return VerifySigninRequired, survey, nil
	}
	if user.Role != model.RoleVendor {
		return 0, survey, ErrVendorsOnly
	}
	if user.Category != survey.Category {
		return VerifySecurityViolation, survey, nil
	}
	if !survey.IsActive {
		return 0, survey, ErrSurveyInactive
	}

	return VerifyRedirect, survey, nil
}
