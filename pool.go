package gifsalad

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// JobFunc executes a single job and returns the path it produced.
type JobFunc func(Job) (string, error)

type task struct {
	pos   int
	job   Job
	batch *batch
}

type batch struct {
	ctx     context.Context
	cancel  context.CancelFunc
	results []string
	wg      sync.WaitGroup
	once    sync.Once
	err     error
}

func (b *batch) fail(err error) {
	b.once.Do(func() {
		b.err = err
		b.cancel()
	})
}

// Pool is a fixed set of workers that executes batches of jobs. It is
// created once per run and reused for every effect.
type Pool struct {
	size  int
	fn    JobFunc
	work  chan task
	wg    sync.WaitGroup
	mutex sync.RWMutex
	done  bool
}

// NewPool starts size workers running fn. A size below one uses the number
// of CPUs.
func NewPool(size int, fn JobFunc) *Pool {
	if size < 1 {
		size = runtime.NumCPU()
	}
	p := &Pool{size: size, fn: fn, work: make(chan task)}
	p.wg.Add(size)
	for range size {
		go p.worker()
	}
	return p
}

func (p *Pool) Size() int { return p.size }

func (p *Pool) worker() {
	defer p.wg.Done()
	for t := range p.work {
		p.execute(t)
	}
}

func (p *Pool) execute(t task) {
	b := t.batch
	defer b.wg.Done()
	if b.ctx.Err() != nil {
		return
	}
	ans, err := call_safely(p.fn, t.job)
	if err != nil {
		b.fail(err)
		return
	}
	b.results[t.pos] = ans
}

func call_safely(fn JobFunc, job Job) (ans string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FilterError{Job: job, Err: fmt.Errorf("panic: %v\n%s", r, debug.Stack())}
		}
	}()
	ans, err = fn(job)
	var fe *FilterError
	if err != nil && !errors.As(err, &fe) {
		err = &FilterError{Job: job, Err: err}
	}
	return
}

// Run submits every job as one batch and blocks until all of them have
// finished. The first failure cancels the jobs that have not started yet and
// is returned. Results are in the order of jobs.
func (p *Pool) Run(ctx context.Context, jobs []Job) ([]string, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if p.done {
		return nil, ErrPoolClosed
	}
	b := &batch{results: make([]string, len(jobs))}
	b.ctx, b.cancel = context.WithCancel(ctx)
	defer b.cancel()
	b.wg.Add(len(jobs))
feed:
	for i, job := range jobs {
		select {
		case p.work <- task{pos: i, job: job, batch: b}:
		case <-b.ctx.Done():
			b.wg.Add(i - len(jobs))
			break feed
		}
	}
	b.wg.Wait()
	if b.err != nil {
		return nil, b.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.results, nil
}

// Close stops the workers once they are idle and waits for them to exit.
// Calling Close more than once is harmless.
func (p *Pool) Close() {
	p.mutex.Lock()
	if !p.done {
		p.done = true
		close(p.work)
	}
	p.mutex.Unlock()
	p.wg.Wait()
}
