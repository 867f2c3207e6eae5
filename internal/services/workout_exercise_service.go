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
	ErrExerciseIDRequired      = errors.New("exerciseId is required")
	ErrDuplicateExercise       = errors.New("exercise already in workout")
	ErrWorkoutExerciseNotFound = errors.New("workout exercise not found")
)

// ValidationError carries the accumulated metric validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

type WorkoutExerciseService struct {
	db *gorm.DB
}

func NewWorkoutExerciseService(db *gorm.DB) *WorkoutExerciseService {
	return &WorkoutExerciseService{db: db}
}

// ownedWorkout resolves the parent workout, folding absence and foreign
// ownership into the same signal.
func (s *WorkoutExerciseService) ownedWorkout(tx *gorm.DB, workoutID, userID uuid.UUID) error {
	var workout models.Workout
	if err := tx.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("failed to load workout: %w", err)
	}
	return nil
}

func (s *WorkoutExerciseService) Create(userID, workoutID uuid.UUID, req *dto.CreateWorkoutExerciseRequest) (*models.WorkoutExercise, error) {
	if req.ExerciseID == nil {
		return nil, ErrExerciseIDRequired
	}

	if err := s.ownedWorkout(s.db, workoutID, userID); err != nil {
		return nil, err
	}

	var exercise models.Exercise
	if err := s.db.First(&exercise, "id = ?", *req.ExerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("failed to load exercise: %w", err)
	}

	var existing models.WorkoutExercise
	err := s.db.Where("workout_id = ? AND exercise_id = ?", workoutID, *req.ExerciseID).First(&existing).Error
	switch {
	case err == nil:
		return nil, ErrDuplicateExercise
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to check for duplicate exercise: %w", err)
	}

	if errs := models.ValidateMetrics(exercise.Category, req.Metrics()); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	we := models.WorkoutExercise{
		ID:         uuid.New(),
		WorkoutID:  workoutID,
		ExerciseID: exercise.ID,
		Comment:    req.Comment,
	}
	models.ApplyMetrics(exercise.Category, req.Metrics(), &we)

	if err := s.db.Create(&we).Error; err != nil {
		// The unique index on (workout_id, exercise_id) closes the
		// race between the existence check and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateExercise
		}
		return nil, fmt.Errorf("failed to create workout exercise: %w", err)
	}

	we.Exercise = exercise
	return &we, nil
}

func (s *WorkoutExerciseService) List(userID, workoutID uuid.UUID) ([]models.WorkoutExercise, error) {
	if err := s.ownedWorkout(s.db, workoutID, userID); err != nil {
		return nil, err
	}

	var exercises []models.WorkoutExercise
	err := s.db.Where("workout_id = ?", workoutID).
		Preload("Exercise").
		Order("created_at ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workout exercises: %w", err)
	}
	return exercises, nil
}

func (s *WorkoutExerciseService) Update(userID, workoutID, id uuid.UUID, req *dto.UpdateWorkoutExerciseRequest) (*models.WorkoutExercise, error) {
	if err := s.ownedWorkout(s.db, workoutID, userID); err != nil {
		return nil, err
	}

	var we models.WorkoutExercise
	if err := s.db.Preload("Exercise").First(&we, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutExerciseNotFound
		}
		return nil, fmt.Errorf("failed to load workout exercise: %w", err)
	}
	if we.WorkoutID != workoutID {
		return nil, ErrWorkoutExerciseNotFound
	}

	if errs := models.ValidateMetrics(we.Exercise.Category, req.Metrics()); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	models.ApplyMetrics(we.Exercise.Category, req.Metrics(), &we)
	if req.Comment != nil {
		we.Comment = req.Comment
	}

	if err := s.db.Save(&we).Error; err != nil {
		return nil, fmt.Errorf("failed to update workout exercise: %w", err)
	}
	return &we, nil
}

func (s *WorkoutExerciseService) Delete(userID, workoutID, id uuid.UUID) error {
	if err := s.ownedWorkout(s.db, workoutID, userID); err != nil {
		return err
	}

	result := s.db.Where("id = ? AND workout_id = ?", id, workoutID).Delete(&models.WorkoutExercise{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete workout exercise: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWorkoutExerciseNotFound
	}
	return nil
}
