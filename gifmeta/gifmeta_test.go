package gifmeta

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFrameDelay(t *testing.T) {
	testCases := []struct {
		cs   int
		want time.Duration
	}{
		{0, DefaultDelay},
		{-3, DefaultDelay},
		{1, 10 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{250, 2500 * time.Millisecond},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, CalculateFrameDelay(tc.cs), "centiseconds: %d", tc.cs)
		if tc.cs > 0 {
			require.Equal(t, tc.cs, DelayToCentiseconds(tc.want))
		}
	}
	require.Equal(t, 0, DelayToCentiseconds(0))
	require.Equal(t, 1, DelayToCentiseconds(time.Millisecond))
	require.Equal(t, 4, DelayToCentiseconds(36*time.Millisecond))
}

func TestLoopCount(t *testing.T) {
	require.Equal(t, LoopForever, NormalizeLoopCount(-1))
	require.Equal(t, 0, NormalizeLoopCount(0))
	require.Equal(t, 3, NormalizeLoopCount(3))
}

func TestFromGIF(t *testing.T) {
	p := color.Palette{color.Black, color.White}
	g := &gif.GIF{LoopCount: 2}
	for i := range 3 {
		g.Image = append(g.Image, image.NewPaletted(image.Rect(0, 0, 4, 3), p))
		g.Delay = append(g.Delay, i*5)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	decoded, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	md := FromGIF(decoded)
	require.Equal(t, 3, md.NumFrames)
	require.Equal(t, uint32(4), md.PixelWidth)
	require.Equal(t, uint32(3), md.PixelHeight)
	require.Equal(t, 2, md.LoopCount)
	require.Equal(t, []time.Duration{DefaultDelay, 50 * time.Millisecond, 100 * time.Millisecond}, md.Delays)
	require.Equal(t, 100*time.Millisecond, md.DelayFor(7))

	// more frames than delay entries
	decoded.Delay = decoded.Delay[:1]
	require.Equal(t, []time.Duration{DefaultDelay, DefaultDelay, DefaultDelay}, FromGIF(decoded).Delays)
}

func TestNew(t *testing.T) {
	md := New(5, 6, -1, []time.Duration{0, -time.Second, 30 * time.Millisecond})
	require.Equal(t, LoopForever, md.LoopCount)
	require.Equal(t, 3, md.NumFrames)
	require.Equal(t, []time.Duration{DefaultDelay, DefaultDelay, 30 * time.Millisecond}, md.Delays)
	require.Equal(t, DefaultDelay, New(1, 1, 0, nil).DelayFor(0))
}
