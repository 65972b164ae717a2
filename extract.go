package gifsalad

import (
	"fmt"
)

// ExtractFrames writes every frame of the animation in source into dir as
// frame_<index>.png, creating dir if needed. Frames are coalesced so that
// each file is the full picture shown at that point of the animation.
// Returns the paths in frame order.
func ExtractFrames(source, dir string) ([]string, error) {
	anim, err := OpenAll(source)
	if err != nil {
		return nil, &DecodeError{Path: source, Err: err}
	}
	if len(anim.Frames) == 0 {
		return nil, &DecodeError{Path: source, Err: ErrNoFrames}
	}
	anim.Coalesce()
	if err = fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create frame directory %s: %w", dir, err)
	}
	ans := make([]string, len(anim.Frames))
	for i, f := range anim.Frames {
		ans[i] = FramePath(dir, i)
		if err = Save(f.Image, ans[i]); err != nil {
			return nil, fmt.Errorf("failed to write frame %d of %s: %w", i, source, err)
		}
	}
	return ans, nil
}
