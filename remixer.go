package gifsalad

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Modes that expand to the whole catalog instead of naming a single effect.
const (
	SaladMode  = "salad"
	RandomMode = "random"
)

// StandardNamespace is the output directory of single effect runs.
const StandardNamespace = "standard"

func IsBatchMode(mode string) bool {
	return mode == SaladMode || mode == RandomMode
}

// Result describes the output of a successful run.
type Result struct {
	Namespace string
	OutputDir string
	Scale     float64
	Outputs   []string // one animation per effect, in the order they were produced
}

// Remixer runs the extract, filter and reassemble pipeline.
type Remixer struct {
	cfg config
}

func New(opts ...Option) *Remixer {
	cfg := default_config()
	for _, option := range opts {
		option(&cfg)
	}
	return &Remixer{cfg: cfg}
}

// Plan returns the effects a mode expands to and the output namespace.
// Anything that is not a batch mode is taken as a literal effect name.
func (self *Remixer) Plan(mode string) (names []string, namespace string) {
	if IsBatchMode(mode) {
		return slices.Clone(self.cfg.catalog), mode
	}
	return []string{mode}, StandardNamespace
}

// Scale returns the scale used by every job of a run in the given mode. Random
// runs draw it once, uniformly from [1, 3).
func (self *Remixer) Scale(mode string) float64 {
	if mode == RandomMode {
		return 1 + 2*self.cfg.rand.Float64()
	}
	return DefaultScale
}

// OutputDir returns the directory the outputs of source are written to.
func (self *Remixer) OutputDir(source, namespace string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(self.cfg.output_root, base, namespace)
}

// Run remixes source according to mode. Frames are extracted once and
// reused for every effect. Effects run one after the other, a failure aborts
// the remaining ones while outputs already written stay on disk. The frame
// workspace is removed before returning, whether or not the run succeeded.
func (self *Remixer) Run(ctx context.Context, source, mode string) (ans Result, err error) {
	log := self.cfg.logger.With("run", uuid.NewString(), "source", source, "mode", mode)
	start := time.Now()
	names, namespace := self.Plan(mode)
	defer func() {
		if cerr := fs.RemoveAll(self.cfg.temp_dir); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to remove %s: %w", self.cfg.temp_dir, cerr))
		}
	}()

	frames, err := ExtractFrames(source, self.cfg.temp_dir)
	if err != nil {
		return ans, err
	}
	log.Debug("extracted frames", "count", len(frames), "dir", self.cfg.temp_dir)

	ans = Result{Namespace: namespace, OutputDir: self.OutputDir(source, namespace), Scale: self.Scale(mode)}
	if err = fs.MkdirAll(ans.OutputDir, 0o755); err != nil {
		return ans, fmt.Errorf("failed to create output directory %s: %w", ans.OutputDir, err)
	}

	var done atomic.Int64
	total := len(names) * len(frames)
	pool := NewPool(self.cfg.workers, func(job Job) (string, error) {
		path, err := FilterFrame(self.cfg.registry, job)
		if err == nil && self.cfg.progress != nil {
			self.cfg.progress(Progress{Effect: job.Effect, Done: int(done.Add(1)), Total: total})
		}
		return path, err
	})
	defer pool.Close()
	dispatcher := NewDispatcher(pool)

	for _, name := range names {
		if _, found := self.cfg.registry.Lookup(name); !found {
			log.Warn("unknown effect, frames are copied unchanged", "effect", name)
		}
		output, err := self.apply(ctx, dispatcher, frames, name, source, ans)
		if err != nil {
			return ans, err
		}
		ans.Outputs = append(ans.Outputs, output)
		log.Info("wrote animation", "effect", name, "output", output)
	}
	log.Debug("run finished", "outputs", len(ans.Outputs), "elapsed", time.Since(start))
	return ans, nil
}

func (self *Remixer) apply(ctx context.Context, d *Dispatcher, frames []string, name, source string, r Result) (output string, err error) {
	filtered, err := d.Dispatch(ctx, frames, name, r.OutputDir, r.Scale)
	if err == nil {
		output = filepath.Join(r.OutputDir, name+".gif")
		err = Reassemble(filtered, output, source, self.cfg.encode...)
	}
	if err != nil {
		// a failed dispatch or reassembly must not leave filtered frames behind
		leaked := make([]string, len(frames))
		for i := range frames {
			leaked[i] = FilteredFramePath(r.OutputDir, name, i)
		}
		err = multierr.Append(err, remove_files(leaked))
		return "", err
	}
	return output, nil
}
