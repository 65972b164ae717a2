package effects

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/noise"
	"github.com/disintegration/imaging"
)

const (
	SwirlDegrees  = 180
	BlurSigma     = 1.5
	EdgeRadius    = 1
	DeepfryNoise  = 0.25
	deepfryAmount = 1.0 // +100% brightness and saturation
)

func resize(img image.Image, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale: %v", scale)
	}
	b := img.Bounds()
	w, h := max(1, int(float64(b.Dx())*scale)), max(1, int(float64(b.Dy())*scale))
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}

func sepia(img image.Image, _ float64) (image.Image, error) {
	return effect.Sepia(img), nil
}

func invert(img image.Image, _ float64) (image.Image, error) {
	return imaging.Invert(img), nil
}

func edge(img image.Image, _ float64) (image.Image, error) {
	return effect.EdgeDetection(img, EdgeRadius), nil
}

func blur(img image.Image, _ float64) (image.Image, error) {
	return imaging.Blur(img, BlurSigma), nil
}

func mirror(img image.Image, _ float64) (image.Image, error) {
	return imaging.FlipH(img), nil
}

// deepfry blows out brightness and saturation, pushes contrast and sharpness
// and then mixes in colored gaussian noise.
func deepfry(img image.Image, _ float64) (image.Image, error) {
	var ans image.Image = adjust.Brightness(img, deepfryAmount)
	ans = adjust.Saturation(ans, deepfryAmount)
	ans = imaging.AdjustContrast(ans, 40)
	ans = imaging.Sharpen(ans, 1)
	b := ans.Bounds()
	grain := noise.Generate(b.Dx(), b.Dy(), &noise.Options{NoiseFn: noise.Gaussian})
	return blend.Opacity(ans, grain, DeepfryNoise), nil
}
