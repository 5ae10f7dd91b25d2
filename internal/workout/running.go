package workout

const (
	runCalorieMultiplier = 18
	runCalorieShift      = 20
)

// Running is a run measured in steps.
type Running struct {
	Training
}

// NewRunning constructs a Running training.
func NewRunning(action int, duration, weight float64) *Running {
	return &Running{Training: NewTraining(action, duration, weight)}
}

// Name implements Workout.
func (r *Running) Name() string { return "Running" }

// SpentCalories implements Workout.
func (r *Running) SpentCalories() (float64, error) {
	speed := runCalorieMultiplier*r.MeanSpeed() - runCalorieShift
	return speed * r.Weight / mInKm * r.minutes(), nil
}
