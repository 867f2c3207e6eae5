package models

import (
	"time"

	"github.com/google/uuid"
)

// Workout is owned exclusively by one user. Its workout exercises are
// removed together with it.
type Workout struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string            `gorm:"not null;size:100" json:"name"`
	Notes       *string           `gorm:"type:text" json:"notes,omitempty"`
	ScheduledAt *time.Time        `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Exercises   []WorkoutExercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}
