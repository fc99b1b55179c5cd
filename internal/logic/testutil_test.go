package logic

import (
	"fmt"
	"testing"
	"time"

	"github.com/GhaziTrueAlpha/Surveys/internal/model"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.SurveyResponse{},
		&model.Session{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, role model.Role, mutate func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now(),
		Email:        uuid.NewString() + "@example.com",
		Password:     "x",
		Role:         role,
		Flag:         model.FlagApproved,
		Name:         "Test User",
		CompanyName:  "Test Co",
		AccountEmail: "billing@example.com",
		GST:          "GST123",
		City:         "Mumbai",
	}
	if mutate != nil {
		mutate(user)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedSurvey(t *testing.T, db *gorm.DB, s *SurveyLogic, creator *model.User, mutate func(*model.Survey)) *model.Survey {
	t.Helper()

	survey := &model.Survey{
		Title:      "Consumer habits",
		Category:   "Mobile",
		SurveyLink: "https://surveys.example.com/s/1",
	}
	if mutate != nil {
		mutate(survey)
	}
	if err := s.CreateSurvey(creator, survey); err != nil {
		t.Fatalf("failed to seed survey: %v", err)
	}
	return survey
}
