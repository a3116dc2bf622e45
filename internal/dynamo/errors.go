package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for configuration and construction.
var (
	// ErrAxisOutOfRange indicates an axis selector outside the [x, y, z] shuffle.
	ErrAxisOutOfRange = errors.New("dynamo: axis selector out of range")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("dynamo: unknown preset")

	// ErrUnknownStyle indicates a plot style name that cannot be parsed.
	ErrUnknownStyle = errors.New("dynamo: unknown plot style")
)

// AxisError wraps ErrAxisOutOfRange with the offending selector.
type AxisError struct {
	Name  string
	Value int
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("%s=%d: %v", e.Name, e.Value, ErrAxisOutOfRange)
}

func (e *AxisError) Unwrap() error {
	return ErrAxisOutOfRange
}
