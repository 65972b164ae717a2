package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/gifsalad/gifsalad"
	"github.com/lmittmann/tint"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

var _ = fmt.Print

const usage = "usage: gifsalad <gif_path> <remix_type> [scale (if applicable)]"

var command = &cli.Command{
	Name:      "gifsalad",
	Usage:     "Remix an animated GIF with visual effects",
	ArgsUsage: "<gif_path> <effect|salad|random> [scale]",
	Version:   gifsalad.Version.String(),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Minimum level of log messages (debug, info, warn, error)",
			Value: "info",
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "Do not show a progress bar",
		},
		&cli.StringFlag{
			Name:  "output-root",
			Usage: "Directory output animations are written under",
			Value: gifsalad.DefaultOutputRoot,
		},
		&cli.StringFlag{
			Name:  "temp-dir",
			Usage: "Directory frames are extracted into, deleted after every run",
			Value: gifsalad.DefaultTempDir,
		},
	},
	Action: action,
}

func new_logger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: l, TimeFormat: time.TimeOnly})), nil
}

type progress struct {
	mutex sync.Mutex
	bar   *progressbar.ProgressBar
	done  int
}

// update is called concurrently by the workers so Done values can arrive
// out of order.
func (self *progress) update(p gifsalad.Progress) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.bar == nil {
		self.bar = progressbar.NewOptions(p.Total, progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(), progressbar.OptionClearOnFinish())
	}
	self.bar.Describe(p.Effect)
	if p.Done > self.done {
		self.done = p.Done
		self.bar.Set(p.Done)
	}
}

func (self *progress) finish() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.bar != nil {
		self.bar.Finish()
	}
}

func action(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return cli.Exit(usage, 1)
	}
	// the optional third argument (scale) is accepted for compatibility, the
	// scale is chosen by the mode
	source, mode := c.Args().Get(0), c.Args().Get(1)
	logger, err := new_logger(c.String("log-level"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	opts := []gifsalad.Option{
		gifsalad.WithLogger(logger),
		gifsalad.WithOutputRoot(c.String("output-root")),
		gifsalad.WithTempDir(c.String("temp-dir")),
	}
	bar := &progress{}
	if !c.Bool("no-progress") {
		opts = append(opts, gifsalad.WithProgress(bar.update))
	}
	result, err := gifsalad.New(opts...).Run(ctx, source, mode)
	bar.finish()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	for _, output := range result.Outputs {
		fmt.Println(output)
	}
	return nil
}

func main() {
	if err := command.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
