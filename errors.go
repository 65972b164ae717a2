package gifsalad

import (
	"errors"
	"fmt"
)

var _ = fmt.Print

var (
	// ErrUnsupportedFormat means the given image format is not supported.
	ErrUnsupportedFormat = errors.New("gifsalad: unsupported image format")
	ErrNoFrames          = errors.New("gifsalad: no frames")
	ErrPoolClosed        = errors.New("gifsalad: worker pool is closed")
)

// DecodeError is returned when a source animation cannot be opened or enumerated.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FilterError is returned when applying an effect to one frame fails.
type FilterError struct {
	Job Job
	Err error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("failed to apply %q to frame %d (%s): %v", e.Job.Effect, e.Job.Index, e.Job.Source, e.Err)
}

func (e *FilterError) Unwrap() error { return e.Err }

// EncodeError is returned when an output animation cannot be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
