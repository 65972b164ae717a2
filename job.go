package gifsalad

import (
	"fmt"
	"path/filepath"
)

// FrameExt is the extension of extracted and filtered frame files.
const FrameExt = ".png"

// Job applies one effect to one frame, producing one file.
type Job struct {
	Index       int
	Source      string
	Effect      string
	Destination string
	Scale       float64
}

func FramePath(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%d%s", index, FrameExt))
}

func FilteredFramePath(dir, effect string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_frame_%d%s", effect, index, FrameExt))
}

// BuildJobs creates one job per frame, in frame order.
func BuildJobs(frames []string, effect, output_dir string, scale float64) []Job {
	ans := make([]Job, len(frames))
	for i, frame := range frames {
		ans[i] = Job{Index: i, Source: frame, Effect: effect, Destination: FilteredFramePath(output_dir, effect, i), Scale: scale}
	}
	return ans
}
