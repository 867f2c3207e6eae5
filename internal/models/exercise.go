package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Category determines which metric fields a workout exercise must carry.
type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryAerobic     Category = "aerobic"
	CategoryFlexibility Category = "flexibility"
)

var Categories = []Category{CategoryStrength, CategoryAerobic, CategoryFlexibility}

// ParseCategory normalizes case and validates against the closed enum.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Categories {
		if c == valid {
			return c, true
		}
	}
	return "", false
}

var MuscleGroups = []string{"chest", "back", "legs", "arms", "shoulders", "core", "glutes"}

// ParseMuscleGroup normalizes case and validates against the fixed
// 7-value set.
func ParseMuscleGroup(s string) (string, bool) {
	g := strings.ToLower(strings.TrimSpace(s))
	for _, valid := range MuscleGroups {
		if g == valid {
			return g, true
		}
	}
	return "", false
}

// Exercise is catalog reference data, created by the startup seed and
// immutable at runtime.
type Exercise struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	Category     Category       `gorm:"not null;size:20;index" json:"category"`
	MuscleGroups pq.StringArray `gorm:"type:text[]" json:"muscle_groups"`
}
