package services

import (
	"errors"
	"fmt"

	"github.com/fittrackpro/backend/internal/dto"
	"github.com/fittrackpro/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrWorkoutNotFound covers both a missing workout and a workout
	// owned by someone else; callers cannot tell the two apart.
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrEmptyUpdate     = errors.New("empty update")
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

func (s *WorkoutService) Create(userID uuid.UUID, req *dto.CreateWorkoutRequest) (*models.Workout, error) {
	workout := models.Workout{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Notes:       req.Notes,
		ScheduledAt: req.ScheduledAt,
	}

	if err := s.db.Create(&workout).Error; err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	return &workout, nil
}

func (s *WorkoutService) List(userID uuid.UUID) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.Where("user_id = ?", userID).
		Preload("Exercises.Exercise").
		Order("created_at DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return workouts, nil
}

func (s *WorkoutService) Get(workoutID, userID uuid.UUID) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.Where("id = ? AND user_id = ?", workoutID, userID).
		Preload("Exercises.Exercise").
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to load workout: %w", err)
	}
	return &workout, nil
}

func (s *WorkoutService) Update(workoutID, userID uuid.UUID, req *dto.UpdateWorkoutRequest) (*models.Workout, error) {
	if req.Empty() {
		return nil, ErrEmptyUpdate
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.ScheduledAt != nil {
		updates["scheduled_at"] = *req.ScheduledAt
	}

	result := s.db.Model(&models.Workout{}).
		Where("id = ? AND user_id = ?", workoutID, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update workout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrWorkoutNotFound
	}

	return s.Get(workoutID, userID)
}

// Delete removes the workout and its workout exercises in one
// transaction.
func (s *WorkoutService) Delete(workoutID, userID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var workout models.Workout
		if err := tx.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWorkoutNotFound
			}
			return fmt.Errorf("failed to load workout: %w", err)
		}

		if err := tx.Where("workout_id = ?", workoutID).Delete(&models.WorkoutExercise{}).Error; err != nil {
			return fmt.Errorf("failed to delete workout exercises: %w", err)
		}
		if err := tx.Delete(&workout).Error; err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		return nil
	})
}
