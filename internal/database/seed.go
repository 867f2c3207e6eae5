package database

import (
	"errors"
	"log/slog"

	"github.com/fittrackpro/backend/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type seedExercise struct {
	Name         string
	Description  string
	Category     models.Category
	MuscleGroups []string
}

var seedExercises = []seedExercise{
	{Name: "Bench Press", Description: "Barbell press performed lying on a flat bench.", Category: models.CategoryStrength, MuscleGroups: []string{"chest", "arms", "shoulders"}},
	{Name: "Squat", Description: "Barbell squat to strengthen legs and glutes.", Category: models.CategoryStrength, MuscleGroups: []string{"legs", "glutes", "core"}},
	{Name: "Deadlift", Description: "Hip-hinge barbell lift from the floor.", Category: models.CategoryStrength, MuscleGroups: []string{"back", "legs", "glutes"}},
	{Name: "Pull-Up", Description: "Bodyweight pull from a dead hang to chin over bar.", Category: models.CategoryStrength, MuscleGroups: []string{"back", "arms"}},
	{Name: "Push-Up", Description: "A basic upper body strength exercise.", Category: models.CategoryStrength, MuscleGroups: []string{"chest", "arms", "core"}},
	{Name: "Shoulder Press", Description: "Overhead dumbbell or barbell press.", Category: models.CategoryStrength, MuscleGroups: []string{"shoulders", "arms"}},
	{Name: "Bicep Curl", Description: "Isolation curl with dumbbells or a barbell.", Category: models.CategoryStrength, MuscleGroups: []string{"arms"}},
	{Name: "Glute Bridge", Description: "Hip extension performed lying on the back.", Category: models.CategoryStrength, MuscleGroups: []string{"glutes", "core"}},
	{Name: "Running", Description: "Steady-state or interval outdoor/treadmill run.", Category: models.CategoryAerobic, MuscleGroups: []string{"legs", "core"}},
	{Name: "Cycling", Description: "Road or stationary bike session.", Category: models.CategoryAerobic, MuscleGroups: []string{"legs", "glutes"}},
	{Name: "Rowing", Description: "Full-body session on the rowing ergometer.", Category: models.CategoryAerobic, MuscleGroups: []string{"back", "legs", "arms", "core"}},
	{Name: "Jump Rope", Description: "Continuous rope skipping for conditioning.", Category: models.CategoryAerobic, MuscleGroups: []string{"legs", "shoulders", "core"}},
	{Name: "Hamstring Stretch", Description: "Seated or standing forward fold targeting the hamstrings.", Category: models.CategoryFlexibility, MuscleGroups: []string{"legs"}},
	{Name: "Shoulder Stretch", Description: "Cross-body and overhead shoulder mobility work.", Category: models.CategoryFlexibility, MuscleGroups: []string{"shoulders", "arms"}},
	{Name: "Hip Flexor Stretch", Description: "Kneeling lunge stretch opening the hip flexors.", Category: models.CategoryFlexibility, MuscleGroups: []string{"legs", "glutes"}},
	{Name: "Cat-Cow", Description: "Alternating spinal flexion and extension on all fours.", Category: models.CategoryFlexibility, MuscleGroups: []string{"back", "core"}},
}

// SeedExercises inserts the exercise catalog, skipping names that
// already exist.
func SeedExercises(db *gorm.DB) error {
	seeded := 0

	for _, se := range seedExercises {
		var existing models.Exercise
		err := db.Where("name = ?", se.Name).First(&existing).Error
		switch {
		case err == nil:
			continue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		exercise := models.Exercise{
			ID:           uuid.New(),
			Name:         se.Name,
			Description:  se.Description,
			Category:     se.Category,
			MuscleGroups: pq.StringArray(se.MuscleGroups),
		}

		if err := db.Create(&exercise).Error; err != nil {
			return err
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("seeded exercise catalog", "new", seeded, "total", len(seedExercises))
	}
	return nil
}
