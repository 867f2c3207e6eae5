package dto

import (
	"github.com/fittrackpro/backend/internal/models"
	"github.com/google/uuid"
)

type CreateWorkoutExerciseRequest struct {
	ExerciseID *uuid.UUID `json:"exercise_id"`
	Sets       *int       `json:"sets"`
	Reps       *int       `json:"reps"`
	Weight     *float64   `json:"weight"`
	Duration   *float64   `json:"duration"`
	Distance   *float64   `json:"distance"`
	Comment    *string    `json:"comment"`
}

func (r CreateWorkoutExerciseRequest) Metrics() models.Metrics {
	return models.Metrics{
		Sets:     r.Sets,
		Reps:     r.Reps,
		Weight:   r.Weight,
		Duration: r.Duration,
		Distance: r.Distance,
	}
}

type UpdateWorkoutExerciseRequest struct {
	Sets     *int     `json:"sets"`
	Reps     *int     `json:"reps"`
	Weight   *float64 `json:"weight"`
	Duration *float64 `json:"duration"`
	Distance *float64 `json:"distance"`
	Comment  *string  `json:"comment"`
}

func (r UpdateWorkoutExerciseRequest) Metrics() models.Metrics {
	return models.Metrics{
		Sets:     r.Sets,
		Reps:     r.Reps,
		Weight:   r.Weight,
		Duration: r.Duration,
		Distance: r.Distance,
	}
}

type ExerciseRef struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category models.Category `json:"category"`
}

// WorkoutExerciseResponse is the flattened projection: only the metric
// fields relevant to the exercise's category are populated.
type WorkoutExerciseResponse struct {
	ID       uuid.UUID   `json:"id"`
	Comment  *string     `json:"comment,omitempty"`
	Exercise ExerciseRef `json:"exercise"`
	Sets     *int        `json:"sets,omitempty"`
	Reps     *int        `json:"reps,omitempty"`
	Weight   *float64    `json:"weight,omitempty"`
	Duration *float64    `json:"duration,omitempty"`
	Distance *float64    `json:"distance,omitempty"`
}

func NewWorkoutExerciseResponse(we *models.WorkoutExercise) WorkoutExerciseResponse {
	resp := WorkoutExerciseResponse{
		ID:      we.ID,
		Comment: we.Comment,
		Exercise: ExerciseRef{
			ID:       we.Exercise.ID,
			Name:     we.Exercise.Name,
			Category: we.Exercise.Category,
		},
	}

	switch we.Exercise.Category {
	case models.CategoryStrength:
		resp.Sets, resp.Reps, resp.Weight = we.Sets, we.Reps, we.Weight
	case models.CategoryAerobic:
		resp.Duration, resp.Distance = we.Duration, we.Distance
	case models.CategoryFlexibility:
		resp.Sets, resp.Reps = we.Sets, we.Reps
	}
	return resp
}
