package training

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownWorkout is returned when a package code has no registered workout type
var ErrUnknownWorkout = errors.New("workout type not found")

// Constructor builds a workout from positional sensor data
type Constructor struct {
	Arity int
	build func(data []float64) (Training, error)
}

// New builds the workout, rejecting data that doesn't match the arity
func (c Constructor) New(data []float64) (Training, error) {
	if c.build == nil {
		return nil, ErrUnknownWorkout
	}
	if len(data) != c.Arity {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrInvalidData, c.Arity, len(data))
	}
	t, err := c.build(data)
	if err != nil {
		return nil, err
	}
	return t, nil
}

var constructors = map[string]Constructor{
	"SWM": {
		Arity: 5,
		build: func(data []float64) (Training, error) {
			action, err := count("action", data[0])
			if err != nil {
				return nil, err
			}
			countPool, err := count("count_pool", data[4])
			if err != nil {
				return nil, err
			}
			return NewSwimming(action, data[1], data[2], data[3], countPool)
		},
	},
	"RUN": {
		Arity: 3,
		build: func(data []float64) (Training, error) {
			action, err := count("action", data[0])
			if err != nil {
				return nil, err
			}
			return NewRunning(action, data[1], data[2])
		},
	},
	"WLK": {
		Arity: 4,
		build: func(data []float64) (Training, error) {
			action, err := count("action", data[0])
			if err != nil {
				return nil, err
			}
			return NewSportsWalking(action, data[1], data[2], data[3])
		},
	},
}

// Lookup returns the constructor registered for code.
// ok is false when the code is unknown.
func Lookup(code string) (c Constructor, ok bool) {
	c, ok = constructors[code]
	return c, ok
}

// Codes returns all registered workout codes in sorted order
func Codes() []string {
	codes := make([]string, 0, len(constructors))
	for code := range constructors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ReadPackage builds the workout described by a sensor package.
// An unknown code yields ErrUnknownWorkout; malformed data yields ErrInvalidData.
func ReadPackage(code string, data []float64) (Training, error) {
	c, ok := Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkout, code)
	}
	t, err := c.New(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s package: %w", code, err)
	}
	return t, nil
}

// Largest magnitude a float64 holds as an exact whole number
const maxExactCount = 1 << 53

// count converts a positional value that must hold a whole number
func count(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidData, field, v)
	}
	if math.Abs(v) > maxExactCount {
		return 0, fmt.Errorf("%w: %s is out of range, got %v", ErrInvalidData, field, v)
	}
	return int(v), nil
}
