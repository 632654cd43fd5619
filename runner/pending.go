package runner

import (
	"context"

	"github.com/roach88/falsify/property"
)

// PendingRun is a handle to a run executing in the background. The run
// itself still executes its trials strictly sequentially; only the
// caller's waiting is decoupled.
type PendingRun struct {
	done  chan struct{}
	stats *Statistics
}

// CheckAsync starts Check in a background goroutine and returns
// immediately. Cancel ctx to interrupt the run cooperatively.
func CheckAsync(ctx context.Context, prop property.Property, params Parameters) *PendingRun {
	p := &PendingRun{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.stats = Check(ctx, prop, params)
	}()
	return p
}

// Wait blocks until the run completes and returns its Statistics. A
// cancelled ctx aborts the wait, not the run; the run itself observes its
// own context passed to CheckAsync.
func (p *PendingRun) Wait(ctx context.Context) (*Statistics, error) {
	select {
	case <-p.done:
		return p.stats, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done reports whether the run has completed without blocking.
func (p *PendingRun) Done() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
