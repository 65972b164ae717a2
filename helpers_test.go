package gifsalad

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var test_palette = color.Palette{
	color.NRGBA{0, 0, 0, 0xff},
	color.NRGBA{0xff, 0xff, 0xff, 0xff},
	color.NRGBA{0xff, 0, 0, 0xff},
	color.NRGBA{0, 0x80, 0, 0xff},
	color.NRGBA{0x10, 0x20, 0xf0, 0xff},
}

// make_gif builds an opaque animation where frame i has a vertical bar of a
// different color at column i.
func make_gif(num_frames, width, height, delay, loop int) *gif.GIF {
	g := &gif.GIF{LoopCount: loop, Config: image.Config{Width: width, Height: height}}
	for i := range num_frames {
		img := image.NewPaletted(image.Rect(0, 0, width, height), test_palette)
		for y := range height {
			for x := range width {
				img.SetColorIndex(x, y, uint8((x+y)%2))
			}
			img.SetColorIndex(i%width, y, uint8(2+i%3))
		}
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	return g
}

func write_gif(t *testing.T, path string, g *gif.GIF) string {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gif.EncodeAll(f, g))
	return path
}

func write_test_gif(t *testing.T, dir, name string, num_frames int) string {
	t.Helper()
	return write_gif(t, filepath.Join(dir, name), make_gif(num_frames, 8, 6, 10, 0))
}

// coalesced returns the frames of the animation in path as the viewer sees them.
func coalesced(t *testing.T, path string) (*Animation, []*image.NRGBA) {
	t.Helper()
	anim, err := OpenAll(path)
	require.NoError(t, err)
	anim.Coalesce()
	ans := make([]*image.NRGBA, len(anim.Frames))
	for i, f := range anim.Frames {
		ans[i] = f.Image.(*image.NRGBA)
	}
	return anim, ans
}

func list_dir(t *testing.T, dir string) (names []string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return
}
