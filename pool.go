package chat2pdf

import (
	"context"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent conversions; each holds a whole document
	// and its PDF in memory.
	MaxPoolSize = 16
)

// ConverterPool bounds the number of conversions running at once.
// Converters are created lazily on first acquire, all from the same options.
type ConverterPool struct {
	size   int
	proto  *Converter
	sem    chan *Converter
	mu     sync.Mutex
	made   int
	closed bool
}

// NewConverterPool creates a pool with capacity for n Converters. The
// options are applied once up front so a bad theme fails here, not on the
// first Acquire.
func NewConverterPool(n int, opts ...Option) (*ConverterPool, error) {
	if n < 1 {
		n = 1
	}
	proto, err := NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	return &ConverterPool{
		size:  n,
		proto: proto,
		sem:   make(chan *Converter, n),
	}, nil
}

// Acquire gets a Converter from the pool, creating one if capacity allows.
// Blocks until one is released, ctx is done or the pool is closed.
func (p *ConverterPool) Acquire(ctx context.Context) (*Converter, error) {
	// Try to get an existing converter (non-blocking)
	select {
	case c, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return c, nil
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.made < p.size {
		p.made++
		p.mu.Unlock()
		cp := *p.proto
		return &cp, nil
	}
	p.mu.Unlock()

	// All converters created, wait for one to be released
	select {
	case c, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return c, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a Converter to the pool. Releasing after Close is a no-op.
func (p *ConverterPool) Release(c *Converter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	// Never blocks: at most size converters exist and each is released once.
	p.sem <- c
}

// Close wakes blocked Acquire calls with ErrPoolClosed. Safe to call twice.
func (p *ConverterPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.sem)
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs for containers).
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
