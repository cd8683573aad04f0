// Package workers runs fire and forget tasks on a fixed set of goroutines fed by a bounded queue
package workers

import (
	"context"
	"errors"
	"sync"

	"moodroom/internal/platform/logger"
)

// Task is one unit of background work; ctx is cancelled only when Stop gives up draining
type Task func(ctx context.Context)

// Options sizes the pool
type Options struct {
	Workers int
	Queue   int
	Name    string
}

// Pool is a bounded worker pool; Submit never blocks
type Pool struct {
	name  string
	queue chan Task
	log   *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// ErrStopTimeout is returned by Stop when the queue did not drain before ctx ended
var ErrStopTimeout = errors.New("workers: stop deadline exceeded before drain")

// New starts opt.Workers goroutines (default 4) over a queue of opt.Queue slots (default 256)
func New(opt Options) *Pool {
	if opt.Workers <= 0 {
		opt.Workers = 4
	}
	if opt.Queue <= 0 {
		opt.Queue = 256
	}
	if opt.Name == "" {
		opt.Name = "workers"
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		name:   opt.Name,
		queue:  make(chan Task, opt.Queue),
		log:    logger.Named(opt.Name),
		ctx:    ctx,
		cancel: cancel,
	}
	for i := range opt.Workers {
		p.wg.Add(1)
		go p.run(i)
	}
	return p
}

func (p *Pool) run(id int) {
	defer p.wg.Done()
	for task := range p.queue {
		p.exec(id, task)
	}
}

// exec runs one task and keeps the worker alive across a panic
func (p *Pool) exec(id int, task Task) {
	defer func() {
		if rec := recover(); rec != nil {
			p.log.Error().Int("worker", id).Interface("panic", rec).Msg("task panicked")
		}
	}()
	task(p.ctx)
}

// Submit enqueues task; false means the pool is stopped or the queue is full and the task was dropped
func (p *Pool) Submit(task Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.log.Warn().Msg("pool stopped; task dropped")
		return false
	}
	select {
	case p.queue <- task:
		return true
	default:
		p.log.Warn().Int("queue", cap(p.queue)).Msg("queue full; task dropped")
		return false
	}
}

// Len reports queued, not yet started tasks
func (p *Pool) Len() int { return len(p.queue) }

// Cap is the queue size
func (p *Pool) Cap() int { return cap(p.queue) }

// Stop refuses new tasks and waits for queued ones to finish
// If ctx ends first, running tasks see their context cancelled and ErrStopTimeout is returned
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		p.log.Warn().Int("pending", len(p.queue)).Msg("stop deadline hit while draining")
		return ErrStopTimeout
	}
}
