package effects

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 255 / w), uint8(y * 255 / h), uint8((x + y) % 256), 0xff})
		}
	}
	return img
}

func TestRegistry(t *testing.T) {
	r := Default()
	require.Equal(t, Catalog, r.Names())
	for _, name := range Catalog {
		_, found := r.Lookup(name)
		require.True(t, found, name)
	}
	_, found := r.Lookup("salad")
	require.False(t, found)

	boom := errors.New("boom")
	r.Register("broken", EffectFunc(func(image.Image, float64) (image.Image, error) { return nil, boom }))
	r.Register(Swirl, EffectFunc(func(img image.Image, _ float64) (image.Image, error) { return img, nil }))
	require.Equal(t, append(append([]string{}, Catalog...), "broken"), r.Names())
	e, found := r.Lookup("broken")
	require.True(t, found)
	_, err := e.Apply(gradient(2, 2), 1)
	require.ErrorIs(t, err, boom)
}

func TestCatalogPreservesDimensions(t *testing.T) {
	src := gradient(17, 11)
	r := Default()
	for _, name := range Catalog {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			e, _ := r.Lookup(name)
			out, err := e.Apply(src, 2)
			require.NoError(t, err)
			b := out.Bounds()
			if name == Size {
				require.Equal(t, 34, b.Dx())
				require.Equal(t, 22, b.Dy())
			} else {
				require.Equal(t, src.Bounds().Size(), b.Size())
			}
		})
	}
}

func TestResizeScale(t *testing.T) {
	out, err := resize(gradient(10, 4), 1.5)
	require.NoError(t, err)
	require.Equal(t, image.Pt(15, 6), out.Bounds().Size())
	out, err = resize(gradient(3, 3), 0.01)
	require.NoError(t, err)
	require.Equal(t, image.Pt(1, 1), out.Bounds().Size())
	_, err = resize(gradient(3, 3), 0)
	require.Error(t, err)
}

func TestInvertIsBitwise(t *testing.T) {
	src := gradient(9, 5)
	out, err := invert(src, 2)
	require.NoError(t, err)
	got := imaging.Clone(out)
	for i := 0; i < len(src.Pix); i += 4 {
		want := []uint8{0xff - src.Pix[i], 0xff - src.Pix[i+1], 0xff - src.Pix[i+2], src.Pix[i+3]}
		if diff := cmp.Diff(want, got.Pix[i:i+4]); diff != "" {
			t.Fatalf("pixel %d mismatch (-want +got):\n%s", i/4, diff)
		}
	}
}

func TestMirror(t *testing.T) {
	src := gradient(6, 3)
	out, err := mirror(src, 2)
	require.NoError(t, err)
	for y := range 3 {
		for x := range 6 {
			require.Equal(t, src.NRGBAAt(5-x, y), imaging.Clone(out).NRGBAAt(x, y))
		}
	}
}

func TestSwirl(t *testing.T) {
	src := gradient(20, 20)
	out, err := SwirlBy(src, 0)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(src.Pix, out.(*image.NRGBA).Pix))

	out, err = SwirlBy(src, SwirlDegrees)
	require.NoError(t, err)
	got := out.(*image.NRGBA)
	// corners lie outside the swirl radius
	for _, p := range []image.Point{{0, 0}, {19, 0}, {0, 19}, {19, 19}} {
		require.Equal(t, src.NRGBAAt(p.X, p.Y), got.NRGBAAt(p.X, p.Y))
	}
	require.NotEqual(t, src.Pix, got.Pix)

	flat := imaging.New(8, 5, color.NRGBA{10, 20, 30, 255})
	out, err = SwirlBy(flat, 90)
	require.NoError(t, err)
	require.Equal(t, flat.Pix, out.(*image.NRGBA).Pix)

	out, err = SwirlBy(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 90)
	require.NoError(t, err)
	require.True(t, out.Bounds().Empty())
}
