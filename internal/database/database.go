package database

import (
	"fmt"
	"time"

	"github.com/GhaziTrueAlpha/Surveys/internal/config"
	"github.com/GhaziTrueAlpha/Surveys/internal/logger"
	"github.com/GhaziTrueAlpha/Surveys/internal/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate 自动迁移全部表结构
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.SurveyResponse{},
		&model.Session{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedAdmin 种子写入初始管理员账号，管理员flag直接为yes
func SeedAdmin(db *gorm.DB, cfg config.AdminConfig) error {
	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", cfg.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := model.User{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now(),
		Email:        cfg.Email,
		Password:     string(hash),
		Role:         model.RoleAdmin,
		Flag:         model.FlagApproved,
		Name:         cfg.Name,
		CompanyName:  "Survey Marketplace",
		AccountEmail: cfg.Email,
		GST:          "-",
		City:         "-",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	logger.Info("Seeded admin account %s", cfg.Email)
	return nil
}
