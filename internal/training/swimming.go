package training

import "fmt"

const (
	// Stroke length in meters
	SwimmingStepLength = 1.38

	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2.0
)

// Swimming is a pool swim measured in strokes
type Swimming struct {
	base
	lengthPool float64 // meters
	countPool  int
}

// NewSwimming creates a swim from stroke count, duration (h), weight (kg),
// pool length (m) and the number of pool lengths swum
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (*Swimming, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if lengthPool <= 0 {
		return nil, fmt.Errorf("%w: pool length must be positive, got %v", ErrInvalidData, lengthPool)
	}
	if countPool < 0 {
		return nil, fmt.Errorf("%w: pool count must be non-negative, got %d", ErrInvalidData, countPool)
	}
	return &Swimming{base: b, lengthPool: lengthPool, countPool: countPool}, nil
}

// Name returns the workout type name
func (s *Swimming) Name() string {
	return "Swimming"
}

// Distance returns the covered distance in km
func (s *Swimming) Distance() float64 {
	return s.distance(SwimmingStepLength)
}

// MeanSpeed returns km/h from pool laps rather than strokes
func (s *Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / MetersPerKm / s.duration
}

// SpentCalories = (speed + 1.1) * 2 * weight
func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier * s.weight
}
