package logic

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GhaziTrueAlpha/Surveys/internal/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthLogic 认证业务逻辑。
// 凭证校验与会话解析分为两步：VerifyCredentials 负责凭证到身份，
// ResolveSession 负责不透明token到身份。
type AuthLogic struct {
	db         *gorm.DB
	sessionTTL time.Duration
}

// NewAuthLogic 创建认证业务逻辑
func NewAuthLogic(db *gorm.DB, sessionTTL time.Duration) *AuthLogic {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthLogic{db: db, sessionTTL: sessionTTL}
}

// SignupInput 注册数据
type SignupInput struct {
	Name          string
	Email         string
	Password      string
	Role          model.Role
	CompanyName   string
	AccountEmail  string
	GST           string
	City          string
	Website       string
	ContactNumber string
	HSNSAC        string
	Country       string
	Region        string
}

// Signup 注册账号，新账号flag为no，等待管理员审批
func (a *AuthLogic) Signup(input SignupInput) (*model.User, error) {
	// 管理员只能种子创建
	if input.Role != model.RoleVendor && input.Role != model.RoleClient {
		return nil, ErrForbidden
	}

	email := strings.TrimSpace(input.Email)

	var count int64
	if err := a.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now(),
		Email:         email,
		Password:      string(hash),
		Role:          input.Role,
		Flag:          model.FlagPending,
		Name:          input.Name,
		CompanyName:   input.CompanyName,
		AccountEmail:  input.AccountEmail,
		GST:           input.GST,
		City:          input.City,
		Website:       input.Website,
		ContactNumber: input.ContactNumber,
		HSNSAC:        input.HSNSAC,
		Country:       input.Country,
		Region:        input.Region,
	}
	if err := a.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// VerifyCredentials 校验凭证并检查审批状态。
// 未审批账号即使凭证正确也拒绝登录，管理员账号种子即为yes所以天然豁免。
func (a *AuthLogic) VerifyCredentials(email, password string) (*model.User, error) {
	var user model.User
	err := a.db.Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Approved() {
		return nil, ErrPendingApproval
	}

	return &user, nil
}

// CreateSession 为用户创建会话，返回不透明token
func (a *AuthLogic) CreateSession(userID string) (string, error) {
	now := time.Now()
	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
	}
	if err := a.db.Create(&session).Error; err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return session.Token, nil
}

// ResolveSession 根据token解析当前用户，过期会话顺手删除
func (a *AuthLogic) ResolveSession(token string) (*model.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	var session model.Session
	err := a.db.Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if session.Expired(time.Now()) {
		a.db.Delete(&session)
		return nil, ErrUnauthorized
	}

	var user model.User
	err = a.db.First(&user, "id = ?", session.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to query session user: %w", err)
	}

	return &user, nil
}

// DeleteSession 注销会话
func (a *AuthLogic) DeleteSession(token string) error {
	if token == "" {
		return nil
	}
	if err := a.db.Where("token = ?", token).Delete(&model.Session{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// SessionTTL 会话有效期
func (a *AuthLogic) SessionTTL() time.Duration {
	return a.sessionTTL
}
