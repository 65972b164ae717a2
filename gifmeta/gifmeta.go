package gifmeta

import (
	"fmt"
	"image/gif"
	"math"
	"time"
)

var _ = fmt.Print

// DefaultDelay is the display time of a frame that carries no delay of its own.
const DefaultDelay = 100 * time.Millisecond

// LoopForever is the GIF loop count meaning the animation never stops.
const LoopForever = 0

// Data is the presentation metadata of a GIF animation.
type Data struct {
	PixelWidth, PixelHeight uint32
	NumFrames               int
	LoopCount               int
	Delays                  []time.Duration
}

// DelayFor returns the delay of frame i (0 based). Indices past the last known
// delay reuse it.
func (md *Data) DelayFor(i int) time.Duration {
	switch {
	case len(md.Delays) == 0:
		return DefaultDelay
	case i < len(md.Delays):
		return md.Delays[i]
	}
	return md.Delays[len(md.Delays)-1]
}

// New returns the metadata of a width x height animation with the defaults
// applied: non-positive delays become DefaultDelay and a missing loop
// extension becomes LoopForever.
func New(width, height, loop_count int, delays []time.Duration) *Data {
	md := &Data{
		PixelWidth: uint32(width), PixelHeight: uint32(height),
		NumFrames: len(delays), LoopCount: NormalizeLoopCount(loop_count),
		Delays: make([]time.Duration, len(delays)),
	}
	for i, d := range delays {
		if d <= 0 {
			d = DefaultDelay
		}
		md.Delays[i] = d
	}
	return md
}

// FromGIF reads the timing of a decoded GIF. Frames without a delay entry get
// DefaultDelay.
func FromGIF(g *gif.GIF) *Data {
	delays := make([]time.Duration, len(g.Image))
	for i := range g.Image {
		if i < len(g.Delay) {
			delays[i] = CalculateFrameDelay(g.Delay[i])
		}
	}
	return New(g.Config.Width, g.Config.Height, g.LoopCount, delays)
}

// CalculateFrameDelay converts a delay in hundredths of a second into a
// duration. Frames with no delay get DefaultDelay.
func CalculateFrameDelay(centiseconds int) time.Duration {
	if centiseconds <= 0 {
		return DefaultDelay
	}
	return time.Duration(centiseconds) * 10 * time.Millisecond
}

// DelayToCentiseconds is the inverse of CalculateFrameDelay, rounding to the
// nearest unit GIF can store. Positive durations never round down to zero.
func DelayToCentiseconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	cs := int(math.Round(float64(d) / float64(10*time.Millisecond)))
	return min(max(cs, 1), math.MaxUint16)
}

// NormalizeLoopCount maps the decoder's "no loop extension" value (-1) to
// LoopForever. Other values are returned as is.
func NormalizeLoopCount(n int) int {
	if n < 0 {
		return LoopForever
	}
	return n
}
