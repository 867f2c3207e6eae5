package services

import (
	"testing"

	"github.com/fittrackpro/backend/internal/config"
	"github.com/fittrackpro/backend/internal/dto"
	"github.com/fittrackpro/backend/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A :memory: database lives on a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Exercise{},
		&models.Workout{},
		&models.WorkoutExercise{},
	))
	return db
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.JWTSecret = "test-secret"
	return cfg
}

func createExercise(t *testing.T, db *gorm.DB, name string, category models.Category, groups ...string) models.Exercise {
	t.Helper()
	exercise := models.Exercise{
		ID:           uuid.New(),
		Name:         name,
		Description:  name + " description",
		Category:     category,
		MuscleGroups: pq.StringArray(groups),
	}
	require.NoError(t, db.Create(&exercise).Error)
	return exercise
}

func createUser(t *testing.T, db *gorm.DB, cfg *config.Config, email string) models.User {
	t.Helper()
	svc := NewAuthService(db, cfg)
	require.NoError(t, svc.Register(&dto.RegisterRequest{
		Email:    email,
		Name:     "Test User",
		Password: "password123",
	}))

	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return user
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
