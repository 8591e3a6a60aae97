package workout

// ValidatePositive checks that v is a finite number greater than zero.
func ValidatePositive(field string, v float64) error {
	if !isFinite(v) {
		return newValidationError(field, "must be a finite number")
	}
	if v <= 0 {
		return newValidationError(field, "must be positive")
	}
	return nil
}

// ValidateNonNegative checks that v is a finite number, zero allowed.
func ValidateNonNegative(field string, v float64) error {
	if !isFinite(v) {
		return newValidationError(field, "must be a finite number")
	}
	if v < 0 {
		return newValidationError(field, "must not be negative")
	}
	return nil
}

// ValidateInputs checks the shared and the type specific numeric inputs of a workout.
// extra is the cadence for running and the elevation gain for cycling.
func ValidateInputs(t Type, distance, duration, extra float64) error {
	if err := ValidatePositive("distance", distance); err != nil {
		return err
	}
	if err := ValidatePositive("duration", duration); err != nil {
		return err
	}

	switch t {
	case TypeRunning:
		return ValidatePositive("cadence", extra)
	case TypeCycling:
		return ValidateNonNegative("elevationGain", extra)
	default:
		return newValidationError("type", "must be running or cycling")
	}
}
