package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"example.com/fittracker/internal/workout"
)

func TestRunnerDefaultPackages(t *testing.T) {
	var out bytes.Buffer
	runner := newTestRunner(t, &out)

	require.NoError(t, runner.Run(context.Background(), DefaultPackages()))

	want := []string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
	}
	require.Equal(t, strings.Join(want, "\n")+"\n", out.String())
}

func TestRunnerAbortsOnUnknownCode(t *testing.T) {
	var out bytes.Buffer
	runner := newTestRunner(t, &out)
	before := testutil.ToFloat64(failureCounter.WithLabelValues("invalid_workout_type"))

	err := runner.Run(context.Background(), []Package{
		{Code: "RUN", Params: []float64{15000, 1, 75}},
		{Code: "XYZ", Params: []float64{1, 1, 1}},
		{Code: "WLK", Params: []float64{9000, 1, 75, 180}},
	})
	require.ErrorIs(t, err, workout.ErrInvalidWorkoutType)
	require.Contains(t, err.Error(), "package 1 (XYZ)")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "Running")
	require.Equal(t, before+1, testutil.ToFloat64(failureCounter.WithLabelValues("invalid_workout_type")))
}

func TestRunnerAbortsOnArgumentCount(t *testing.T) {
	var out bytes.Buffer
	runner := newTestRunner(t, &out)

	err := runner.Run(context.Background(), []Package{{Code: "SWM", Params: []float64{720, 1, 80}}})
	require.ErrorIs(t, err, workout.ErrArgumentCount)
	require.Empty(t, out.String())
}

func TestRunnerJSONFormat(t *testing.T) {
	var out bytes.Buffer
	runner := newTestRunner(t, &out, WithFormat(workout.FormatJSON))

	require.NoError(t, runner.Run(context.Background(), DefaultPackages()[:1]))

	var got workout.InfoMessage
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, "Swimming", got.TrainingType)
	require.InDelta(t, 336.0, got.Calories, 1e-9)
}

func TestRunnerUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	runner := newTestRunner(t, &out, WithFormat("yaml"))

	err := runner.Run(context.Background(), DefaultPackages())
	require.ErrorIs(t, err, workout.ErrUnknownFormat)
	require.Empty(t, out.String())
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	runner := newTestRunner(t, &out)

	err := runner.Run(ctx, DefaultPackages())
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestRunnerWriteError(t *testing.T) {
	runner := newTestRunner(t, failingWriter{})

	err := runner.Run(context.Background(), DefaultPackages())
	require.Error(t, err)
	require.Contains(t, err.Error(), "write summary")
	require.Equal(t, "write", failureReason(err))
}

func TestRunnerRecordsProcessed(t *testing.T) {
	before := testutil.ToFloat64(processedCounter.WithLabelValues("SportsWalking"))

	runner := newTestRunner(t, &bytes.Buffer{})
	require.NoError(t, runner.Run(context.Background(), DefaultPackages()))

	require.Equal(t, before+1, testutil.ToFloat64(processedCounter.WithLabelValues("SportsWalking")))
}

func TestRunnerRunID(t *testing.T) {
	require.Equal(t, "run-1", NewRunner(&bytes.Buffer{}, WithRunID("run-1")).RunID())
	require.NotEmpty(t, NewRunner(&bytes.Buffer{}).RunID())
}

func TestFailureReason(t *testing.T) {
	require.Equal(t, "argument_count", failureReason(workout.ErrArgumentCount))
	require.Equal(t, "invalid_parameter", failureReason(workout.ErrInvalidParameter))
	require.Equal(t, "not_implemented", failureReason(workout.ErrNotImplemented))
}

func newTestRunner(t *testing.T, out io.Writer, opts ...Option) *Runner {
	opts = append([]Option{WithLogger(log.New(testWriter{t}, "", 0)), WithRunID("test-run")}, opts...)
	return NewRunner(out, opts...)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Log(string(p))
	return len(p), nil
}
