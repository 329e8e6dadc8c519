package training

const (
	runningCalorieMultiplier = 18.0
	runningCalorieShift      = 20.0
)

// Running is a run measured in steps
type Running struct {
	base
}

// NewRunning creates a run from step count, duration (h) and weight (kg)
func NewRunning(action int, duration, weight float64) (*Running, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Running{base: b}, nil
}

// Name returns the workout type name
func (r *Running) Name() string {
	return "Running"
}

// Distance returns the covered distance in km
func (r *Running) Distance() float64 {
	return r.distance(DefaultStepLength)
}

// MeanSpeed returns distance over duration in km/h
func (r *Running) MeanSpeed() float64 {
	return r.Distance() / r.duration
}

// SpentCalories = (18 * speed - 20) * weight / 1000 * minutes
func (r *Running) SpentCalories() float64 {
	return (runningCalorieMultiplier*r.MeanSpeed() - runningCalorieShift) *
		r.weight / MetersPerKm * r.durationMinutes()
}
