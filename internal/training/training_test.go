package training

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRunning(t *testing.T) {
	tests := []struct {
		name         string
		action       int
		duration     float64
		weight       float64
		wantDistance float64
		wantSpeed    float64
		wantCalories float64
	}{
		{
			name:         "long slow sample",
			action:       1206,
			duration:     12,
			weight:       6,
			wantDistance: 0.7839,
			wantSpeed:    0.7839 / 12,
			// (18 * 0.065325 - 20) * 6 / 1000 * 720
			wantCalories: -81.320328,
		},
		{
			name:         "one hour run",
			action:       15000,
			duration:     1,
			weight:       75,
			wantDistance: 9.75,
			wantSpeed:    9.75,
			wantCalories: 699.75,
		},
		{
			name:         "no steps",
			action:       0,
			duration:     1,
			weight:       70,
			wantDistance: 0,
			wantSpeed:    0,
			wantCalories: -20 * 70.0 / 1000 * 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRunning(tt.action, tt.duration, tt.weight)
			if err != nil {
				t.Fatalf("NewRunning() error = %v", err)
			}
			if got := r.Distance(); !approxEqual(got, tt.wantDistance) {
				t.Errorf("Distance() = %v, want %v", got, tt.wantDistance)
			}
			if got := r.MeanSpeed(); !approxEqual(got, tt.wantSpeed) {
				t.Errorf("MeanSpeed() = %v, want %v", got, tt.wantSpeed)
			}
			if got := r.SpentCalories(); !approxEqual(got, tt.wantCalories) {
				t.Errorf("SpentCalories() = %v, want %v", got, tt.wantCalories)
			}
		})
	}
}

func TestSportsWalking(t *testing.T) {
	tests := []struct {
		name         string
		action       int
		duration     float64
		weight       float64
		height       float64
		wantDistance float64
		wantSpeed    float64
		wantCalories float64
	}{
		{
			// 5.85^2 / 180 = 0.19, floored to 0
			name:         "floored speed term is zero",
			action:       9000,
			duration:     1,
			weight:       75,
			height:       180,
			wantDistance: 5.85,
			wantSpeed:    5.85,
			wantCalories: 157.5,
		},
		{
			// 19.5^2 / 100 = 3.8025, floored to 3
			name:         "floored speed term is whole",
			action:       30000,
			duration:     1,
			weight:       75,
			height:       100,
			wantDistance: 19.5,
			wantSpeed:    19.5,
			wantCalories: 549,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewSportsWalking(tt.action, tt.duration, tt.weight, tt.height)
			if err != nil {
				t.Fatalf("NewSportsWalking() error = %v", err)
			}
			if got := w.Distance(); !approxEqual(got, tt.wantDistance) {
				t.Errorf("Distance() = %v, want %v", got, tt.wantDistance)
			}
			if got := w.MeanSpeed(); !approxEqual(got, tt.wantSpeed) {
				t.Errorf("MeanSpeed() = %v, want %v", got, tt.wantSpeed)
			}
			if got := w.SpentCalories(); !approxEqual(got, tt.wantCalories) {
				t.Errorf("SpentCalories() = %v, want %v", got, tt.wantCalories)
			}
		})
	}
}

func TestSportsWalkingFloorIsNotTrueDivision(t *testing.T) {
	w, err := NewSportsWalking(30000, 1, 75, 100)
	if err != nil {
		t.Fatalf("NewSportsWalking() error = %v", err)
	}

	speed := w.MeanSpeed()
	trueDivision := (0.035*75 + (speed*speed/100)*0.029*75) * 60
	if approxEqual(w.SpentCalories(), trueDivision) {
		t.Errorf("SpentCalories() = %v, should differ from true division result %v", w.SpentCalories(), trueDivision)
	}
}

func TestSwimming(t *testing.T) {
	s, err := NewSwimming(720, 1, 80, 25, 40)
	if err != nil {
		t.Fatalf("NewSwimming() error = %v", err)
	}

	// 720 strokes * 1.38 m
	if got := s.Distance(); !approxEqual(got, 0.9936) {
		t.Errorf("Distance() = %v, want 0.9936", got)
	}
	// 25 m * 40 laps / 1000 / 1 h
	if got := s.MeanSpeed(); !approxEqual(got, 1.0) {
		t.Errorf("MeanSpeed() = %v, want 1.0", got)
	}
	// (1.0 + 1.1) * 2.0 * 80
	if got := s.SpentCalories(); !approxEqual(got, 336.0) {
		t.Errorf("SpentCalories() = %v, want 336.0", got)
	}
}

func TestDerivedValuesAreIdempotent(t *testing.T) {
	run, _ := NewRunning(1206, 12, 6)
	walk, _ := NewSportsWalking(9000, 1, 75, 180)
	swim, _ := NewSwimming(720, 1, 80, 25, 40)

	for _, tr := range []Training{run, walk, swim} {
		t.Run(tr.Name(), func(t *testing.T) {
			if a, b := tr.Distance(), tr.Distance(); a != b {
				t.Errorf("Distance() not stable: %v then %v", a, b)
			}
			if a, b := tr.MeanSpeed(), tr.MeanSpeed(); a != b {
				t.Errorf("MeanSpeed() not stable: %v then %v", a, b)
			}
			if a, b := tr.SpentCalories(), tr.SpentCalories(); a != b {
				t.Errorf("SpentCalories() not stable: %v then %v", a, b)
			}
		})
	}
}

func TestConstructorPreconditions(t *testing.T) {
	tests := []struct {
		name string
		new  func() error
	}{
		{"running zero duration", func() error { _, err := NewRunning(100, 0, 70); return err }},
		{"running negative duration", func() error { _, err := NewRunning(100, -1, 70); return err }},
		{"running negative action", func() error { _, err := NewRunning(-1, 1, 70); return err }},
		{"running zero weight", func() error { _, err := NewRunning(100, 1, 0); return err }},
		{"walking zero height", func() error { _, err := NewSportsWalking(100, 1, 70, 0); return err }},
		{"swimming zero pool length", func() error { _, err := NewSwimming(100, 1, 70, 0, 10); return err }},
		{"swimming negative pool count", func() error { _, err := NewSwimming(100, 1, 70, 25, -1); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.new()
			if !errors.Is(err, ErrInvalidData) {
				t.Errorf("error = %v, want ErrInvalidData", err)
			}
		})
	}
}

func TestShowTrainingInfo(t *testing.T) {
	swim, err := NewSwimming(720, 1, 80, 25, 40)
	if err != nil {
		t.Fatalf("NewSwimming() error = %v", err)
	}

	info := ShowTrainingInfo(swim)

	if info.TrainingType() != "Swimming" {
		t.Errorf("TrainingType() = %q, want %q", info.TrainingType(), "Swimming")
	}
	if info.Duration() != 1 {
		t.Errorf("Duration() = %v, want 1", info.Duration())
	}
	if !approxEqual(info.Distance(), swim.Distance()) {
		t.Errorf("Distance() = %v, want %v", info.Distance(), swim.Distance())
	}
	if !approxEqual(info.Speed(), swim.MeanSpeed()) {
		t.Errorf("Speed() = %v, want %v", info.Speed(), swim.MeanSpeed())
	}
	if !approxEqual(info.Calories(), swim.SpentCalories()) {
		t.Errorf("Calories() = %v, want %v", info.Calories(), swim.SpentCalories())
	}
}
