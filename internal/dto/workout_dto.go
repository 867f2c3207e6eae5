package dto

import (
	"time"

	"github.com/fittrackpro/backend/internal/models"
	"github.com/google/uuid"
)

type CreateWorkoutRequest struct {
	Name        string     `json:"name"`
	Notes       *string    `json:"notes"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type UpdateWorkoutRequest struct {
	Name        *string    `json:"name"`
	Notes       *string    `json:"notes"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// Empty reports whether no updatable field was supplied.
func (r UpdateWorkoutRequest) Empty() bool {
	return r.Name == nil && r.Notes == nil && r.ScheduledAt == nil
}

type WorkoutResponse struct {
	ID          uuid.UUID                 `json:"id"`
	UserID      uuid.UUID                 `json:"user_id"`
	Name        string                    `json:"name"`
	Notes       *string                   `json:"notes,omitempty"`
	ScheduledAt *time.Time                `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
	Exercises   []WorkoutExerciseResponse `json:"exercises"`
}

func NewWorkoutResponse(w *models.Workout) WorkoutResponse {
	resp := WorkoutResponse{
		ID:          w.ID,
		UserID:      w.UserID,
		Name:        w.Name,
		Notes:       w.Notes,
		ScheduledAt: w.ScheduledAt,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		Exercises:   make([]WorkoutExerciseResponse, 0, len(w.Exercises)),
	}
	for i := range w.Exercises {
		resp.Exercises = append(resp.Exercises, NewWorkoutExerciseResponse(&w.Exercises[i]))
	}
	return resp
}
