package gifsalad

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"runtime"

	"github.com/gifsalad/gifsalad/effects"
)

const (
	DefaultTempDir    = "framestemp"
	DefaultOutputRoot = "gifs"
	DefaultScale      = 2.0
)

// Progress reports that one more frame of a run has been filtered.
type Progress struct {
	Effect      string
	Done, Total int
}

type config struct {
	workers     int
	registry    *effects.Registry
	catalog     []string
	temp_dir    string
	output_root string
	rand        *rand.Rand
	logger      *slog.Logger
	progress    func(Progress)
	encode      []EncodeOption
}

func default_config() config {
	return config{
		workers:     runtime.NumCPU(),
		registry:    effects.Default(),
		catalog:     effects.Catalog,
		temp_dir:    DefaultTempDir,
		output_root: DefaultOutputRoot,
		rand:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Remixer.
type Option func(*config)

// WithWorkers sets the size of the worker pool. Defaults to the number of CPUs.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithRegistry sets the effects available to runs.
func WithRegistry(r *effects.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithCatalog sets the effects, in order, that batch modes expand to.
func WithCatalog(names ...string) Option {
	return func(c *config) {
		c.catalog = append([]string(nil), names...)
	}
}

// WithTempDir sets the directory frames are extracted into. It is deleted at
// the end of every run.
func WithTempDir(dir string) Option {
	return func(c *config) {
		c.temp_dir = dir
	}
}

// WithOutputRoot sets the directory under which output animations are written.
func WithOutputRoot(dir string) Option {
	return func(c *config) {
		c.output_root = dir
	}
}

// WithRand sets the random source used to draw the scale of random runs.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rand = r
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithProgress sets a callback invoked after every filtered frame. It is
// called from worker goroutines and must be safe for concurrent use.
func WithProgress(fn func(Progress)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithEncodeOptions sets the options used when writing output animations.
func WithEncodeOptions(opts ...EncodeOption) Option {
	return func(c *config) {
		c.encode = append([]EncodeOption(nil), opts...)
	}
}
