// Package workout computes distance, speed and calorie statistics for the
// supported training types.
package workout

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned by a training that has no calorie formula of its own.
	ErrNotImplemented = errors.New("spent calories not implemented for training")
	// ErrInvalidWorkoutType indicates the type code is not one of the known codes.
	ErrInvalidWorkoutType = errors.New("invalid workout type")
	// ErrArgumentCount indicates the parameter list does not match the training's arity.
	ErrArgumentCount = errors.New("argument count mismatch")
	// ErrInvalidParameter indicates a parameter the formulas cannot work with.
	ErrInvalidParameter = errors.New("invalid parameter")
)

const (
	mInKm     = 1000
	minInHour = 60
	lenStep   = 0.65
)

// Workout is a single training session with its activity-specific formulas.
type Workout interface {
	// Name is the training type as printed in the summary.
	Name() string
	// TrainingDuration is the session length in hours.
	TrainingDuration() float64
	// Distance is the covered distance in km.
	Distance() float64
	// MeanSpeed is the average speed in km/h.
	MeanSpeed() float64
	// SpentCalories is the energy spent in kcal.
	SpentCalories() (float64, error)
}

// Training holds the readings shared by every training type and the default
// distance and speed formulas.
type Training struct {
	Action   int
	Duration float64
	Weight   float64

	stepLength float64
}

// NewTraining builds a base training with the default step length.
func NewTraining(action int, duration, weight float64) Training {
	return Training{
		Action:     action,
		Duration:   duration,
		Weight:     weight,
		stepLength: lenStep,
	}
}

// Name implements Workout.
func (t Training) Name() string { return "Training" }

// TrainingDuration implements Workout.
func (t Training) TrainingDuration() float64 { return t.Duration }

// Distance returns action * step length converted to km.
func (t Training) Distance() float64 {
	return float64(t.Action) * t.stepLength / mInKm
}

// MeanSpeed returns the distance divided by duration.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

// SpentCalories has no generic formula; each training type supplies its own.
func (t Training) SpentCalories() (float64, error) {
	return 0, ErrNotImplemented
}

func (t Training) minutes() float64 {
	return t.Duration * minInHour
}

// ShowTrainingInfo computes the summary of w.
func ShowTrainingInfo(w Workout) (InfoMessage, error) {
	calories, err := w.SpentCalories()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("%s: %w", w.Name(), err)
	}
	return InfoMessage{
		TrainingType: w.Name(),
		Duration:     w.TrainingDuration(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     calories,
	}, nil
}
