package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration returns an error when d is zero or negative.
func ValidatePositiveDuration(name string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got %v", name, d)
	}
	return nil
}

// ValidateIntRange returns an error unless min <= v <= max.
func ValidateIntRange(name string, v, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range for %s: min (%d) cannot be greater than max (%d)", name, min, max)
	}
	if v < min || v > max {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, min, max, v)
	}
	return nil
}

// ValidateNonNegative returns an error when v is below zero.
func ValidateNonNegative(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must be non-negative, got %v", name, v)
	}
	return nil
}
