package training

import (
	"errors"
	"fmt"
)

const (
	// Unit conversions
	MetersPerKm    = 1000.0
	MinutesPerHour = 60.0

	// Step length in meters for foot-based workouts
	DefaultStepLength = 0.65
)

// ErrInvalidData is returned when sensor data violates a workout's preconditions
var ErrInvalidData = errors.New("invalid workout data")

// Training is the calculation contract shared by every workout type
type Training interface {
	// Name is the workout type shown in the summary
	Name() string
	// Duration returns the workout length in hours
	Duration() float64
	// Distance returns the covered distance in km
	Distance() float64
	// MeanSpeed returns the average speed in km/h
	MeanSpeed() float64
	// SpentCalories returns the burned calories
	SpentCalories() float64
}

// base holds the sensor inputs common to all workouts
type base struct {
	action   int
	duration float64 // hours
	weight   float64 // kg
}

func newBase(action int, duration, weight float64) (base, error) {
	if action < 0 {
		return base{}, fmt.Errorf("%w: action must be non-negative, got %d", ErrInvalidData, action)
	}
	if duration <= 0 {
		return base{}, fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidData, duration)
	}
	if weight <= 0 {
		return base{}, fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidData, weight)
	}
	return base{action: action, duration: duration, weight: weight}, nil
}

// Duration returns the workout length in hours
func (b base) Duration() float64 {
	return b.duration
}

func (b base) distance(stepLength float64) float64 {
	return float64(b.action) * stepLength / MetersPerKm
}

func (b base) durationMinutes() float64 {
	return b.duration * MinutesPerHour
}

// ShowTrainingInfo builds the summary record for a completed workout
func ShowTrainingInfo(t Training) InfoMessage {
	return InfoMessage{
		trainingType: t.Name(),
		duration:     t.Duration(),
		distance:     t.Distance(),
		speed:        t.MeanSpeed(),
		calories:     t.SpentCalories(),
	}
}
