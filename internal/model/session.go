package model

import (
	"time"
)

// Session 服务端会话，cookie只携带不透明token
type Session struct {
	Token     string    `json:"token" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index;not null"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
}

// TableName 自定义表名
func (Session) TableName() string {
	return "sessions"
}

// Expired 会话是否已过期
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
