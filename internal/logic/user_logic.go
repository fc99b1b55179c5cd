package logic

import (
	"errors"
	"fmt"

	"github.com/GhaziTrueAlpha/Surveys/internal/model"
	"gorm.io/gorm"
)

// UserLogic 账号管理业务逻辑
type UserLogic struct {
	db *gorm.DB
}

// NewUserLogic 创建账号管理业务逻辑
func NewUserLogic(db *gorm.DB) *UserLogic {
	return &UserLogic{db: db}
}

// GetUser 获取单个账号
func (u *UserLogic) GetUser(id string) (*model.User, error) {
	var user model.User
	err := u.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// GetUsers 按角色和审批状态筛选账号列表
func (u *UserLogic) GetUsers(role, flag string) ([]model.User, error) {
	query := u.db.Model(&model.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if flag != "" {
		query = query.Where("flag = ?", flag)
	}

	var users []model.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return users, nil
}

// UserUpdate 管理员可修改的账号字段
type UserUpdate struct {
	Flag     *string
	Category *string
	UniqueID *string
}

// UpdateUser 管理员更新账号（审批、分配类目和客户编码）。
// 角色创建后不可变更。
func (u *UserLogic) UpdateUser(id string, update UserUpdate) (*model.User, error) {
	user, err := u.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Flag != nil {
		updates["flag"] = *update.Flag
	}
	if update.Category != nil {
		if *update.Category != "" && !model.ValidCategory(*update.Category) {
			return nil, ErrInvalidCategory
		}
		updates["category"] = *update.Category
	}
	if update.UniqueID != nil {
		updates["unique_id"] = *update.UniqueID
	}

	if len(updates) > 0 {
		if err := u.db.Model(user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return u.GetUser(id)
}
