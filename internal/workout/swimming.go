package workout

const (
	swimLenStep          = 1.38
	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2
)

// Swimming is a pool session measured in strokes and laps.
type Swimming struct {
	Training
	LengthPool float64 // m
	CountPool  int
}

// NewSwimming constructs a Swimming training.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) *Swimming {
	t := NewTraining(action, duration, weight)
	t.stepLength = swimLenStep
	return &Swimming{
		Training:   t,
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

// Name implements Workout.
func (s *Swimming) Name() string { return "Swimming" }

// MeanSpeed is derived from the laps swum, not from the stroke count.
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration
}

// SpentCalories implements Workout.
func (s *Swimming) SpentCalories() (float64, error) {
	return (s.MeanSpeed() + swimSpeedShift) * (swimWeightMultiplier * s.Weight), nil
}
