package scheduler

import (
	"time"

	"github.com/GhaziTrueAlpha/Surveys/internal/config"
	"github.com/GhaziTrueAlpha/Surveys/internal/logger"
	"github.com/GhaziTrueAlpha/Surveys/internal/model"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// SessionCleanupJob 过期会话清理任务
type SessionCleanupJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewSessionCleanupJob 创建过期会话清理任务
func NewSessionCleanupJob(db *gorm.DB, cfg *config.Config) *SessionCleanupJob {
	return &SessionCleanupJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *SessionCleanupJob) GetName() string {
	return "session_cleanup"
}

// GetSchedule 获取调度配置
func (j *SessionCleanupJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Session.CleanupInterval) * time.Minute)
}

// Execute 执行任务，删除已过期的会话
func (j *SessionCleanupJob) Execute() {
	result := j.db.Where("expires_at < ?", time.Now()).Delete(&model.Session{})
	if result.Error != nil {
		logger.Error("Failed to clean up expired sessions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		logger.Info("Cleaned up %d expired sessions", result.RowsAffected)
	}
}
