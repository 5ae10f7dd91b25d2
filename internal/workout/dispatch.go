package workout

import (
	"fmt"
	"math"
	"sort"
)

type factory struct {
	arity int
	build func(params []float64) (Workout, error)
}

var catalog = map[string]factory{
	"SWM": {arity: 5, build: buildSwimming},
	"RUN": {arity: 3, build: buildRunning},
	"WLK": {arity: 4, build: buildSportsWalking},
}

// ReadPackage turns the sensor readings of one package into a Workout.
// params are positional and follow the constructor order of the training type.
func ReadPackage(code string, params []float64) (Workout, error) {
	f, ok := catalog[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWorkoutType, code)
	}
	if len(params) != f.arity {
		return nil, fmt.Errorf("%w: %s takes %d parameters, got %d", ErrArgumentCount, code, f.arity, len(params))
	}
	if !(params[1] > 0) || math.IsInf(params[1], 1) {
		return nil, fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidParameter, params[1])
	}
	return f.build(params)
}

// Codes lists the known type codes in sorted order.
func Codes() []string {
	out := make([]string, 0, len(catalog))
	for code := range catalog {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Arity reports how many parameters code expects.
func Arity(code string) (int, bool) {
	f, ok := catalog[code]
	return f.arity, ok
}

func buildRunning(p []float64) (Workout, error) {
	action, err := count("action", p[0])
	if err != nil {
		return nil, err
	}
	return NewRunning(action, p[1], p[2]), nil
}

func buildSportsWalking(p []float64) (Workout, error) {
	action, err := count("action", p[0])
	if err != nil {
		return nil, err
	}
	return NewSportsWalking(action, p[1], p[2], p[3]), nil
}

func buildSwimming(p []float64) (Workout, error) {
	action, err := count("action", p[0])
	if err != nil {
		return nil, err
	}
	laps, err := count("count_pool", p[4])
	if err != nil {
		return nil, err
	}
	return NewSwimming(action, p[1], p[2], p[3], laps), nil
}

func count(name string, v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidParameter, name, v)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s out of range, got %v", ErrInvalidParameter, name, v)
	}
	return int(v), nil
}
