package workout

import (
	"fmt"
	"math"
)

const (
	walkWeightMultiplier = 0.035
	walkSpeedMultiplier  = 0.029
)

// SportsWalking is a brisk walk measured in steps, adjusted by the walker's height.
type SportsWalking struct {
	Training
	Height float64 // cm
}

// NewSportsWalking constructs a SportsWalking training.
func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		Training: NewTraining(action, duration, weight),
		Height:   height,
	}
}

// Name implements Workout.
func (s *SportsWalking) Name() string { return "SportsWalking" }

// SpentCalories implements Workout.
//
// The squared speed is floor-divided by the height.
// TODO: confirm with product whether a true division was intended here.
func (s *SportsWalking) SpentCalories() (float64, error) {
	if s.Height == 0 {
		return 0, fmt.Errorf("%w: height must not be zero", ErrInvalidParameter)
	}
	speed := s.MeanSpeed()
	ratio := floorDiv(speed*speed, s.Height)
	speedWeight := walkSpeedMultiplier * s.Weight
	perMinute := walkWeightMultiplier*s.Weight + ratio*speedWeight
	return perMinute * s.minutes(), nil
}

// floorDiv returns the floored quotient x // y with the rounding of a float
// floor-division operator: the quotient is derived from fmod rather than from
// x / y, which keeps results exact near integer boundaries.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}
