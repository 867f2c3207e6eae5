package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutExercise links a workout to a catalog exercise and carries the
// category-specific metrics as nullable columns. The composite unique
// index enforces one row per (workout, exercise) pair at the store
// level, closing the check-then-insert race.
type WorkoutExercise struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkoutID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_workout_exercise_pair" json:"workout_id"`
	ExerciseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_workout_exercise_pair" json:"exercise_id"`
	Comment    *string   `gorm:"type:text" json:"comment,omitempty"`
	Sets       *int      `json:"sets,omitempty"`
	Reps       *int      `json:"reps,omitempty"`
	Weight     *float64  `json:"weight,omitempty"`
	Duration   *float64  `json:"duration,omitempty"`
	Distance   *float64  `json:"distance,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Exercise   Exercise  `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
}
