package effects

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/kovidgoyal/go-parallel"
)

func swirl(img image.Image, _ float64) (image.Image, error) {
	return SwirlBy(img, SwirlDegrees)
}

// SwirlBy rotates pixels around the image center. The rotation angle is
// degrees at the center and falls off quadratically to zero at the radius
// max(width, height)/2. Pixels outside the radius are untouched.
func SwirlBy(img image.Image, degrees float64) (image.Image, error) {
	src := imaging.Clone(img)
	width, height := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(src.Rect)
	if width == 0 || height == 0 {
		return dst, nil
	}
	cx, cy := float64(width)/2, float64(height)/2
	radius := max(cx, cy)
	theta := degrees * math.Pi / 180
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+4*width]
			dy := float64(y) + 0.5 - cy
			for x := range width {
				dx := float64(x) + 0.5 - cx
				out := row[4*x : 4*x+4 : 4*x+4]
				dist := math.Hypot(dx, dy)
				if dist >= radius {
					copy(out, src.Pix[y*src.Stride+4*x:])
					continue
				}
				factor := 1 - dist/radius
				s, c := math.Sincos(theta * factor * factor)
				sample_bilinear(src, c*dx-s*dy+cx-0.5, s*dx+c*dy+cy-0.5, out)
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		return nil, err
	}
	return dst, nil
}

func sample_bilinear(src *image.NRGBA, x, y float64, out []uint8) {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	x = min(max(x, 0), float64(w-1))
	y = min(max(y, 0), float64(h-1))
	x0, y0 := int(x), int(y)
	x1, y1 := min(x0+1, w-1), min(y0+1, h-1)
	fx, fy := x-float64(x0), y-float64(y0)
	p00 := src.Pix[y0*src.Stride+4*x0:]
	p10 := src.Pix[y0*src.Stride+4*x1:]
	p01 := src.Pix[y1*src.Stride+4*x0:]
	p11 := src.Pix[y1*src.Stride+4*x1:]
	for i := range 4 {
		top := float64(p00[i]) + (float64(p10[i])-float64(p00[i]))*fx
		bottom := float64(p01[i]) + (float64(p11[i])-float64(p01[i]))*fx
		out[i] = uint8(math.Round(top + (bottom-top)*fy))
	}
}
