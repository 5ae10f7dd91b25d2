package tracker

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/fittracker/internal/workout"
)

var (
	processedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "tracker",
		Name:      "workouts_processed_total",
		Help:      "Number of workouts summarised, grouped by training type.",
	}, []string{"training_type"})

	failureCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "tracker",
		Name:      "failures_total",
		Help:      "Number of packages that aborted a run, grouped by reason.",
	}, []string{"reason"})

	caloriesHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fittracker",
		Subsystem: "tracker",
		Name:      "spent_calories",
		Help:      "Distribution of calories spent per workout.",
		Buckets:   []float64{50, 100, 200, 400, 800, 1600},
	})
)

func init() {
	prometheus.MustRegister(processedCounter, failureCounter, caloriesHistogram)
}

func recordProcessed(info workout.InfoMessage) {
	processedCounter.WithLabelValues(info.TrainingType).Inc()
	caloriesHistogram.Observe(info.Calories)
}

func recordFailure(err error) {
	failureCounter.WithLabelValues(failureReason(err)).Inc()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, workout.ErrInvalidWorkoutType):
		return "invalid_workout_type"
	case errors.Is(err, workout.ErrArgumentCount):
		return "argument_count"
	case errors.Is(err, workout.ErrInvalidParameter):
		return "invalid_parameter"
	case errors.Is(err, workout.ErrNotImplemented):
		return "not_implemented"
	case errors.Is(err, workout.ErrUnknownFormat):
		return "unknown_format"
	default:
		return "write"
	}
}
