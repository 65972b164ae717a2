package gifsalad

import (
	"context"
	"fmt"
)

// Dispatcher fans the frames of one effect out over a Pool.
type Dispatcher struct {
	pool *Pool
}

func NewDispatcher(pool *Pool) *Dispatcher {
	return &Dispatcher{pool: pool}
}

// Dispatch applies effect to every frame, writing the results into
// output_dir, and blocks until all frames are done or one has failed. The
// returned paths are in frame order.
func (d *Dispatcher) Dispatch(ctx context.Context, frames []string, effect, output_dir string, scale float64) ([]string, error) {
	jobs := BuildJobs(frames, effect, output_dir, scale)
	ans, err := d.pool.Run(ctx, jobs)
	if err != nil {
		return nil, err
	}
	for i, path := range ans {
		if path != jobs[i].Destination {
			return nil, &FilterError{Job: jobs[i], Err: fmt.Errorf("produced %q instead of %q", path, jobs[i].Destination)}
		}
	}
	return ans, nil
}
