package training

import (
	"fmt"
	"math"
)

const (
	walkingWeightMultiplier = 0.035
	walkingSpeedMultiplier  = 0.029
)

// SportsWalking is a walk measured in steps, with the athlete's height
type SportsWalking struct {
	base
	height float64 // cm
}

// NewSportsWalking creates a walk from step count, duration (h), weight (kg) and height (cm)
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidData, height)
	}
	return &SportsWalking{base: b, height: height}, nil
}

// Name returns the workout type name
func (w *SportsWalking) Name() string {
	return "SportsWalking"
}

// Distance returns the covered distance in km
func (w *SportsWalking) Distance() float64 {
	return w.distance(DefaultStepLength)
}

// MeanSpeed returns distance over duration in km/h
func (w *SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.duration
}

// SpentCalories = (0.035 * weight + floor(speed^2 / height) * 0.029 * weight) * minutes.
// The speed term is floored, not divided exactly; results depend on it.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	speedTerm := math.Floor(speed * speed / w.height)
	return (walkingWeightMultiplier*w.weight + speedTerm*walkingSpeedMultiplier*w.weight) *
		w.durationMinutes()
}
