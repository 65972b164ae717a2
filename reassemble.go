package gifsalad

import (
	"errors"
	"fmt"
	"os"

	"github.com/gifsalad/gifsalad/gifmeta"
	"go.uber.org/multierr"
)

// ReadTiming returns the frame delays and loop count of the animation in
// source, with defaults applied for missing values.
func ReadTiming(source string) (*gifmeta.Data, error) {
	anim, err := OpenAll(source)
	if err != nil {
		return nil, &DecodeError{Path: source, Err: err}
	}
	return anim.Timing(), nil
}

// Reassemble encodes frames, in order, into a GIF at output using the timing
// of the animation in source. Once the output is written every file in frames
// is deleted. On failure no output is left behind and frames are kept.
func Reassemble(frames []string, output, source string, opts ...EncodeOption) error {
	if len(frames) == 0 {
		return &EncodeError{Path: output, Err: ErrNoFrames}
	}
	timing, err := ReadTiming(source)
	if err != nil {
		return err
	}
	anim := &Animation{LoopCount: timing.LoopCount}
	for i, path := range frames {
		img, err := Open(path)
		if err != nil {
			return &EncodeError{Path: output, Err: fmt.Errorf("failed to load frame %s: %w", path, err)}
		}
		anim.Frames = append(anim.Frames, &Frame{Number: uint(i + 1), Image: img, Delay: timing.DelayFor(i)})
	}
	if err = anim.Save(output, opts...); err != nil {
		return &EncodeError{Path: output, Err: err}
	}
	return remove_files(frames)
}

func remove_files(paths []string) (err error) {
	for _, path := range paths {
		if rerr := fs.Remove(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			err = multierr.Append(err, rerr)
		}
	}
	return
}
