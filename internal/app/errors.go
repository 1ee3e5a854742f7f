package app

import (
	"errors"
	"fmt"
)

// ErrAllStrategiesFailed is returned in isolation mode when no strategy
// produced a plan.
var ErrAllStrategiesFailed = errors.New("every strategy failed")

// StrategyError ties a failure to the strategy that caused it.
type StrategyError struct {
	Strategy string
	Err      error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy %s: %v", e.Strategy, e.Err)
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}
