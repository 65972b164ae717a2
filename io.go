package gifsalad

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

type fileSystem interface {
	Create(string) (io.WriteCloser, error)
	Open(string) (io.ReadCloser, error)
	Remove(string) error
	RemoveAll(string) error
	MkdirAll(string, os.FileMode) error
}

type localFS struct{}

func (localFS) Create(name string) (io.WriteCloser, error)    { return os.Create(name) }
func (localFS) Open(name string) (io.ReadCloser, error)       { return os.Open(name) }
func (localFS) Remove(name string) error                      { return os.Remove(name) }
func (localFS) RemoveAll(name string) error                   { return os.RemoveAll(name) }
func (localFS) MkdirAll(name string, perm os.FileMode) error { return os.MkdirAll(name, perm) }

var fs fileSystem = localFS{}

var gif_magic = []byte("GIF8")

// DecodeAll reads an animation from r. GIF input yields every frame as
// stored in the file (not coalesced). Still images (PNG, JPEG, BMP, TIFF and
// WebP) yield a single frame animation.
func DecodeAll(r io.Reader) (ans *Animation, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	ans = &Animation{}
	if bytes.HasPrefix(data, gif_magic) {
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		ans.populate_from_gif(g)
		return ans, nil
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, err
	}
	b := img.Bounds()
	ans.Width, ans.Height = b.Dx(), b.Dy()
	ans.Frames = []*Frame{{Number: 1, Image: imaging.Clone(img)}}
	return ans, nil
}

// OpenAll loads every frame of the animation in filename.
func OpenAll(filename string) (*Animation, error) {
	file, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DecodeAll(file)
}

// Open loads a still image from file.
func Open(filename string) (image.Image, error) {
	file, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return imaging.Decode(file)
}

// frame files are intermediates, favour speed over size
var frameEncodeOptions = []imaging.EncodeOption{imaging.PNGCompressionLevel(png.BestSpeed)}

// Save saves a still image to file. The format is determined from the
// filename extension.
func Save(img image.Image, filename string) (err error) {
	f, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	err = imaging.Encode(file, img, f, frameEncodeOptions...)
	errc := file.Close()
	if err == nil {
		err = errc
	}
	return err
}

type encodeConfig struct {
	gifNumColors int
	gifQuantizer draw.Quantizer
	gifDrawer    draw.Drawer
	optimize     bool
}

var defaultEncodeConfig = encodeConfig{
	gifNumColors: 256,
	optimize:     true,
}

// EncodeOption sets an optional parameter for EncodeAsGIF and Reassemble.
type EncodeOption func(*encodeConfig)

// GIFNumColors returns an EncodeOption that sets the maximum number of colors
// per frame. It ranges from 2 to 256. Default is 256.
func GIFNumColors(numColors int) EncodeOption {
	return func(c *encodeConfig) {
		c.gifNumColors = numColors
	}
}

// GIFQuantizer returns an EncodeOption that sets the quantizer used to build
// the palette of frames. Setting a quantizer disables lossless palettes.
func GIFQuantizer(quantizer draw.Quantizer) EncodeOption {
	return func(c *encodeConfig) {
		c.gifQuantizer = quantizer
	}
}

// GIFDrawer returns an EncodeOption that sets the drawer used to map frames
// with too many colors onto their palette. Default is Floyd-Steinberg.
func GIFDrawer(drawer draw.Drawer) EncodeOption {
	return func(c *encodeConfig) {
		c.gifDrawer = drawer
	}
}

// Optimize returns an EncodeOption that enables or disables cropping frames
// to the region changed since the previous frame. Default is enabled.
func Optimize(enabled bool) EncodeOption {
	return func(c *encodeConfig) {
		c.optimize = enabled
	}
}

// Save writes the animation as a GIF to filename. A partially written file is
// removed on failure.
func (self *Animation) Save(filename string, opts ...EncodeOption) (err error) {
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	err = self.EncodeAsGIF(file, opts...)
	errc := file.Close()
	if err == nil {
		err = errc
	}
	if err != nil {
		fs.Remove(filename)
	}
	return err
}
