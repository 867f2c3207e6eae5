package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fittrackpro/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidMuscleGroup = errors.New("invalid muscle group")
	ErrExerciseNotFound   = errors.New("exercise not found")
)

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

func (s *ExerciseService) GetAll() ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := s.db.Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}

func (s *ExerciseService) GetByCategory(raw string) ([]models.Exercise, error) {
	category, ok := models.ParseCategory(raw)
	if !ok {
		return nil, ErrInvalidCategory
	}

	var exercises []models.Exercise
	if err := s.db.Where("category = ?", category).Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to list exercises by category: %w", err)
	}
	return exercises, nil
}

func (s *ExerciseService) GetByMuscleGroup(raw string) ([]models.Exercise, error) {
	group, ok := models.ParseMuscleGroup(raw)
	if !ok {
		return nil, ErrInvalidMuscleGroup
	}

	tx := s.db
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Where("? = ANY(muscle_groups)", group)
	} else {
		// Other dialects store the array in its serialized text form,
		// with every element quoted: {"chest","arms"}. Muscle groups
		// come from a closed enum, so matching the quoted element is
		// exact.
		tx = tx.Where("muscle_groups LIKE ?", `%"`+group+`"%`)
	}

	var exercises []models.Exercise
	if err := tx.Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to list exercises by muscle group: %w", err)
	}
	return exercises, nil
}

func (s *ExerciseService) Search(query string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	pattern := "%" + strings.ToLower(query) + "%"
	if err := s.db.Where("LOWER(name) LIKE ?", pattern).Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to search exercises: %w", err)
	}
	return exercises, nil
}

func (s *ExerciseService) GetByID(id uuid.UUID) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.db.First(&exercise, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("failed to load exercise: %w", err)
	}
	return &exercise, nil
}
