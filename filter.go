package gifsalad

import (
	"fmt"

	"github.com/gifsalad/gifsalad/effects"
)

// FilterFrame loads job.Source, applies the effect named by job.Effect and
// saves the result to job.Destination. Names missing from the registry copy
// the frame through unchanged.
func FilterFrame(registry *effects.Registry, job Job) (string, error) {
	img, err := Open(job.Source)
	if err != nil {
		return "", &FilterError{Job: job, Err: err}
	}
	if e, found := registry.Lookup(job.Effect); found {
		if img, err = e.Apply(img, job.Scale); err != nil {
			return "", &FilterError{Job: job, Err: err}
		}
		if img == nil {
			return "", &FilterError{Job: job, Err: fmt.Errorf("effect returned no image")}
		}
	}
	if err = Save(img, job.Destination); err != nil {
		return "", &FilterError{Job: job, Err: err}
	}
	return job.Destination, nil
}
