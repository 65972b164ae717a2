package gifsalad

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gifsalad/gifsalad/gifmeta"
	"golang.org/x/image/draw"
)

var _ = fmt.Print

type Frame struct {
	Number   uint
	X, Y     int
	Image    image.Image `json:"-"`
	Delay    time.Duration
	Disposal byte `json:"-"`
}

type Animation struct {
	Frames        []*Frame
	Width, Height int
	LoopCount     int // as stored in the GIF: 0 means loop forever, -1 means no loop extension
}

func (self *Animation) populate_from_gif(g *gif.GIF) {
	self.Width, self.Height = g.Config.Width, g.Config.Height
	self.LoopCount = g.LoopCount
	timing := gifmeta.FromGIF(g)
	for i, img := range g.Image {
		b := img.Bounds()
		frame := Frame{Number: uint(len(self.Frames) + 1), Image: img, X: b.Min.X, Y: b.Min.Y, Delay: timing.Delays[i]}
		if i < len(g.Disposal) {
			frame.Disposal = g.Disposal[i]
		}
		self.Frames = append(self.Frames, &frame)
	}
	if self.Width == 0 || self.Height == 0 {
		for _, f := range self.Frames {
			b := f.Image.Bounds()
			self.Width, self.Height = max(self.Width, b.Max.X), max(self.Height, b.Max.Y)
		}
	}
}

// Coalesce all animation frames so that each frame is a snapshot of the
// animation at that instant, honoring the disposal method of the previous
// frame. Afterwards every frame is an *image.NRGBA covering the whole canvas.
func (self *Animation) Coalesce() {
	canvas := image.NewNRGBA(image.Rect(0, 0, self.Width, self.Height))
	for _, f := range self.Frames {
		b := f.Image.Bounds()
		var saved *image.NRGBA
		if f.Disposal == gif.DisposalPrevious {
			saved = imaging.Clone(canvas)
		}
		draw.Draw(canvas, b, f.Image, b.Min, draw.Over)
		snapshot := imaging.Clone(canvas)
		switch f.Disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, b, image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = saved
		}
		f.Image, f.X, f.Y, f.Disposal = snapshot, 0, 0, gif.DisposalNone
	}
}

// Timing returns the presentation metadata of this animation with the
// defaults applied.
func (self *Animation) Timing() *gifmeta.Data {
	delays := make([]time.Duration, len(self.Frames))
	for i, f := range self.Frames {
		delays[i] = f.Delay
	}
	return gifmeta.New(self.Width, self.Height, self.LoopCount, delays)
}

func IsOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

func as_nrgba(img image.Image) *image.NRGBA {
	if ans, ok := img.(*image.NRGBA); ok && ans.Rect.Min == (image.Point{}) {
		return ans
	}
	return imaging.Clone(img)
}

// changed_bounds returns the smallest rectangle holding every pixel that
// differs between a and b, which must have the same bounds. Identical images
// yield a single pixel rectangle since GIF frames cannot be empty.
func changed_bounds(a, b *image.NRGBA) (ans image.Rectangle) {
	w := b.Rect.Dx()
	for y := range b.Rect.Dy() {
		ra := a.Pix[y*a.Stride : y*a.Stride+4*w]
		rb := b.Pix[y*b.Stride : y*b.Stride+4*w]
		if bytes.Equal(ra, rb) {
			continue
		}
		x0, x1 := 0, w-1
		for x0 < w && bytes.Equal(ra[4*x0:4*x0+4], rb[4*x0:4*x0+4]) {
			x0++
		}
		for x1 > x0 && bytes.Equal(ra[4*x1:4*x1+4], rb[4*x1:4*x1+4]) {
			x1--
		}
		ans = ans.Union(image.Rect(x0, y, x1+1, y+1))
	}
	if ans.Empty() {
		ans = image.Rect(0, 0, 1, 1)
	}
	return ans
}

// exact_paletted converts the r region of img to a paletted image without any
// loss, returning nil when img has more than limit distinct colors in r.
func exact_paletted(img *image.NRGBA, r image.Rectangle, limit int) *image.Paletted {
	index := make(map[color.NRGBA]uint8, limit)
	ans := image.NewPaletted(r, make(color.Palette, 0, limit))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := ans.Pix[(y-r.Min.Y)*ans.Stride:]
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			// GIF has no partial transparency
			if c.A < 0x80 {
				c = color.NRGBA{}
			} else {
				c.A = 0xff
			}
			i, found := index[c]
			if !found {
				if len(ans.Palette) >= limit {
					return nil
				}
				i = uint8(len(ans.Palette))
				index[c] = i
				ans.Palette = append(ans.Palette, c)
			}
			row[x-r.Min.X] = i
		}
	}
	return ans
}

func to_paletted(img *image.NRGBA, r image.Rectangle, cfg *encodeConfig) *image.Paletted {
	num_colors := min(max(cfg.gifNumColors, 2), 256)
	if cfg.gifQuantizer == nil {
		if ans := exact_paletted(img, r, num_colors); ans != nil {
			return ans
		}
	}
	var p color.Palette
	if cfg.gifQuantizer != nil {
		p = cfg.gifQuantizer.Quantize(make(color.Palette, 0, num_colors), img)
	} else {
		p = append(color.Palette(nil), palette.Plan9[:num_colors]...)
		if !IsOpaque(img) {
			p[len(p)-1] = color.Transparent
		}
	}
	drawer := cfg.gifDrawer
	if drawer == nil {
		drawer = draw.FloydSteinberg
	}
	ans := image.NewPaletted(r, p)
	drawer.Draw(ans, r, img, r.Min)
	return ans
}

// as_gif treats every frame as a full canvas snapshot. With optimization
// enabled, frames of a fully opaque animation are cropped to the region that
// changed since the previous frame and stacked without disposal.
func (self *Animation) as_gif(cfg *encodeConfig) *gif.GIF {
	frames := make([]*image.NRGBA, len(self.Frames))
	opaque := true
	width, height := self.Width, self.Height
	for i, f := range self.Frames {
		frames[i] = as_nrgba(f.Image)
		opaque = opaque && frames[i].Opaque()
		width, height = max(width, frames[i].Rect.Dx()), max(height, frames[i].Rect.Dy())
	}
	ans := &gif.GIF{LoopCount: self.LoopCount, Config: image.Config{Width: width, Height: height}}
	delta := cfg.optimize && opaque
	disposal := byte(gif.DisposalBackground)
	if delta {
		disposal = gif.DisposalNone
	}
	for i, img := range frames {
		r := img.Rect
		if delta && i > 0 && frames[i-1].Rect == r {
			r = changed_bounds(frames[i-1], img)
		}
		ans.Image = append(ans.Image, to_paletted(img, r, cfg))
		ans.Delay = append(ans.Delay, gifmeta.DelayToCentiseconds(self.Frames[i].Delay))
		ans.Disposal = append(ans.Disposal, disposal)
	}
	return ans
}

func (self *Animation) EncodeAsGIF(w io.Writer, opts ...EncodeOption) error {
	if len(self.Frames) == 0 {
		return ErrNoFrames
	}
	cfg := defaultEncodeConfig
	for _, option := range opts {
		option(&cfg)
	}
	return gif.EncodeAll(w, self.as_gif(&cfg))
}
