package model

import (
	"time"
)

// Role 用户角色
type Role string

const (
	RoleAdmin  Role = "admin"  // 管理员
	RoleVendor Role = "vendor" // 答题供应商
	RoleClient Role = "client" // 调研客户
)

// Valid 检查是否为已知角色
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleClient:
		return true
	}
	return false
}

// 账号审批状态
const (
	FlagApproved = "yes"
	FlagPending  = "no"
)

// DefaultClientCode 客户未分配编码时的默认编码
const DefaultClientCode = "1112"

// User 平台账号模型
type User struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	// 身份信息
	UniqueID string `json:"unique_id" gorm:"index"` // 客户短编码，审批时分配
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     Role   `json:"role" gorm:"not null"`
	Flag     string `json:"flag" gorm:"default:'no'"`
	Category string `json:"category"` // 供应商审批时指定，限定可见问卷

	// 企业信息
	Name          string `json:"name" gorm:"not null"`
	Website       string `json:"website"`
	CompanyName   string `json:"company_name" gorm:"not null"`
	AccountEmail  string `json:"account_email" gorm:"not null"`
	ContactNumber string `json:"contact_number"`
	HSNSAC        string `json:"hsn_sac" gorm:"column:hsn_sac"`
	GST           string `json:"gst" gorm:"not null"`
	Country       string `json:"country"`
	Region        string `json:"region"`
	City          string `json:"city" gorm:"not null"`

	// 问卷编号计数器，事务内自增
	SurveySeq int `json:"-" gorm:"default:0"`
}

// TableName 自定义表名
func (User) TableName() string {
	return "users"
}

// Approved 账号是否已通过审批
func (u *User) Approved() bool {
	return u.Flag == FlagApproved
}

// ClientCode 生成问卷编号时使用的客户编码
func (u *User) ClientCode() string {
	if u.UniqueID == "" {
		return DefaultClientCode
	}
	return u.UniqueID
}
