package training

import "fmt"

// InfoMessage is the computed summary of a single workout.
// Values are fixed at construction; use ShowTrainingInfo to build one.
type InfoMessage struct {
	trainingType string
	duration     float64 // hours
	distance     float64 // km
	speed        float64 // km/h
	calories     float64
}

// TrainingType returns the workout type name
func (m InfoMessage) TrainingType() string { return m.trainingType }

// Duration returns the workout length in hours
func (m InfoMessage) Duration() float64 { return m.duration }

// Distance returns the covered distance in km
func (m InfoMessage) Distance() float64 { return m.distance }

// Speed returns the mean speed in km/h
func (m InfoMessage) Speed() float64 { return m.speed }

// Calories returns the burned calories
func (m InfoMessage) Calories() float64 { return m.calories }

// Message renders the summary line with every value fixed to 3 decimals
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.trainingType, m.duration, m.distance, m.speed, m.calories,
	)
}

// String implements fmt.Stringer with the summary line
func (m InfoMessage) String() string {
	return m.Message()
}
