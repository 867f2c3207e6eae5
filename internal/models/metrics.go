package models

// Metrics is the raw metric input supplied when adding or updating a
// workout exercise. Which fields are required (and which are rejected)
// is decided by the linked exercise's category.
type Metrics struct {
	Sets     *int
	Reps     *int
	Weight   *float64
	Duration *float64
	Distance *float64
}

const (
	msgStrengthRequired    = "Strength exercises must include sets, reps, and weight."
	msgStrengthRejected    = "Strength exercises cannot include duration or distance."
	msgAerobicRequired     = "Aerobic exercises must include duration or distance."
	msgAerobicRejected     = "Aerobic exercises cannot include sets, reps, or weight."
	msgFlexibilityRequired = "Flexibility exercises must include sets and reps."
	msgFlexibilityRejected = "Flexibility exercises cannot include weight, duration, or distance."
)

// ValidateMetrics checks the metric input against the category's rules.
// Failures accumulate and are returned together.
func ValidateMetrics(category Category, m Metrics) []string {
	switch category {
	case CategoryStrength:
		return validateStrength(m)
	case CategoryAerobic:
		return validateAerobic(m)
	case CategoryFlexibility:
		return validateFlexibility(m)
	}
	return nil
}

func validateStrength(m Metrics) []string {
	var errs []string
	if m.Sets == nil || m.Reps == nil || m.Weight == nil {
		errs = append(errs, msgStrengthRequired)
	}
	if m.Duration != nil || m.Distance != nil {
		errs = append(errs, msgStrengthRejected)
	}
	return errs
}

func validateAerobic(m Metrics) []string {
	var errs []string
	if m.Duration == nil && m.Distance == nil {
		errs = append(errs, msgAerobicRequired)
	}
	if m.Sets != nil || m.Reps != nil || m.Weight != nil {
		errs = append(errs, msgAerobicRejected)
	}
	return errs
}

func validateFlexibility(m Metrics) []string {
	var errs []string
	if m.Sets == nil || m.Reps == nil {
		errs = append(errs, msgFlexibilityRequired)
	}
	if m.Weight != nil || m.Duration != nil || m.Distance != nil {
		errs = append(errs, msgFlexibilityRejected)
	}
	return errs
}

// ApplyMetrics copies only the fields relevant to the category onto the
// row, clearing the rest. Keeps the stored shape a discriminated record
// even though all metric columns share one table.
func ApplyMetrics(category Category, m Metrics, we *WorkoutExercise) {
	we.Sets, we.Reps, we.Weight, we.Duration, we.Distance = nil, nil, nil, nil, nil
	switch category {
	case CategoryStrength:
		we.Sets, we.Reps, we.Weight = m.Sets, m.Reps, m.Weight
	case CategoryAerobic:
		we.Duration, we.Distance = m.Duration, m.Distance
	case CategoryFlexibility:
		we.Sets, we.Reps = m.Sets, m.Reps
	}
}
