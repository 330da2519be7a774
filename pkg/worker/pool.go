package worker

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/amincahcepu/Remote-Docling/pkg/logger"
)

// Pool is a counting semaphore over conversion capacity. Every engine
// call must hold a slot for its full duration, which keeps the number
// of concurrent conversion processes bounded no matter how many
// requests are in flight.
type Pool struct {
	sem      *semaphore.Weighted
	capacity int64
	inUse    atomic.Int64
	logger   logger.Logger
}

// Stats is a point-in-time view of pool occupancy.
type Stats struct {
	Capacity int `json:"capacity"`
	InUse    int `json:"inUse"`
	Idle     int `json:"idle"`
}

// NewPool creates a pool with the given slot count, at least one.
func NewPool(size int, log logger.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		sem:      semaphore.NewWeighted(int64(size)),
		capacity: int64(size),
		logger:   log,
	}
}

// Acquire takes a slot, blocking until one frees up or ctx ends.
func (p *Pool) Acquire(ctx context.Context) error {
	if p.sem.TryAcquire(1) {
		p.inUse.Add(1)
		return nil
	}

	p.logger.Debug("Waiting for conversion slot",
		logger.Int("capacity", int(p.capacity)))
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire conversion slot: %w", err)
	}
	p.inUse.Add(1)
	return nil
}

// Release returns a slot. It must follow a successful Acquire.
func (p *Pool) Release() {
	p.inUse.Add(-1)
	p.sem.Release(1)
}

// Stats reports current occupancy.
func (p *Pool) Stats() Stats {
	used := int(p.inUse.Load())
	return Stats{
		Capacity: int(p.capacity),
		InUse:    used,
		Idle:     int(p.capacity) - used,
	}
}

// Capacity returns the slot count.
func (p *Pool) Capacity() int {
	return int(p.capacity)
}
