package pxgrid

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline error, per the error taxonomy: validation
// errors are reported synchronously at entry with no side effects; runtime
// errors abort the invocation and return no partial buffers.
type Kind int

const (
	// InvalidDimensions covers zero width/height, mismatched buffer
	// lengths, or minS > maxS.
	InvalidDimensions Kind = iota
	// InvalidParameter covers sigma <= 0, minEnergy outside [0,1],
	// sampleWeightRatio < 1, or even smooth/windowSize.
	InvalidParameter
	// EmptyDetection means peak detection produced fewer than two lines on
	// an axis while the sampler required a grid. Not fatal to the caller:
	// retry with looser thresholds or switch to direct mode.
	EmptyDetection
	// AllocationFailure means a requested buffer would exceed the
	// implementation's size limit.
	AllocationFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidDimensions:
		return "InvalidDimensions"
	case InvalidParameter:
		return "InvalidParameter"
	case EmptyDetection:
		return "EmptyDetection"
	case AllocationFailure:
		return "AllocationFailure"
	default:
		return "Unknown"
	}
}

// Error is the typed error returned at the pipeline's external boundary.
// Stage names the component that raised it (e.g. "detect_grid_lines",
// "sample_pixel_art"), matching the building-block names in §4.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pxgrid: %s: %s: %v", e.Stage, e.Kind, e.Err)
	}
	return fmt.Sprintf("pxgrid: %s: %s", e.Stage, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind and an empty
// Stage (such as the sentinels below), so callers can use
// errors.Is(err, pxgrid.ErrEmptyDetection) and friends.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Stage == ""
}

// Sentinel values for errors.Is against a specific Kind regardless of stage.
var (
	ErrInvalidDimensions = &Error{Kind: InvalidDimensions}
	ErrInvalidParameter  = &Error{Kind: InvalidParameter}
	ErrEmptyDetection    = &Error{Kind: EmptyDetection}
	ErrAllocationFailure = &Error{Kind: AllocationFailure}
)

var (
	errInvalidSize  = errors.New("width and height must be > 0")
	errBufferLength = errors.New("rgba buffer length does not match width*height*4")
)

func invalidParam(stage, msg string) error {
	return &Error{Kind: InvalidParameter, Stage: stage, Err: errors.New(msg)}
}

func invalidDims(stage, msg string) error {
	return &Error{Kind: InvalidDimensions, Stage: stage, Err: errors.New(msg)}
}

func emptyDetection(stage, msg string) error {
	return &Error{Kind: EmptyDetection, Stage: stage, Err: errors.New(msg)}
}
