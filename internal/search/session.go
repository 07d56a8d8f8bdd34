package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
)

// State tracks where a search session is in its lifecycle.
type State string

const (
	StateIdle      State = "idle"
	StateFiltering State = "filtering"
	StateReady     State = "ready"
)

type pendingRun struct {
	gen    uint64
	cancel context.CancelFunc
}

// Coordinator enforces latest-request-wins semantics per search session: a
// new filter mutation supersedes any computation still pending its settle
// delay, so only the most recent configuration is ever computed. There is no
// failure state; an empty result is a normal Ready outcome.
type Coordinator struct {
	settle time.Duration
	logger *zap.Logger

	mu      sync.Mutex
	nextGen uint64
	pending map[string]pendingRun
	states  map[string]State
}

// NewCoordinator builds a Coordinator with the given settle delay.
func NewCoordinator(settle time.Duration, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		settle:  settle,
		logger:  logger,
		pending: make(map[string]pendingRun),
		states:  make(map[string]State),
	}
}

// State reports the session's current state; unknown sessions are Idle.
func (c *Coordinator) State(sessionID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.states[sessionID]; ok {
		return s
	}
	return StateIdle
}

// Run waits out the settle delay and then invokes compute, unless a newer Run
// for the same session arrives first, in which case it returns ErrSuperseded.
// An empty session id means the caller opted out of debouncing: compute runs
// immediately and the coordinator retains no state for it.
func (c *Coordinator) Run(ctx context.Context, sessionID string, compute func(context.Context) error) error {
	if sessionID == "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		return compute(ctx)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	if prev, ok := c.pending[sessionID]; ok {
		prev.cancel()
	}
	c.nextGen++
	gen := c.nextGen
	c.pending[sessionID] = pendingRun{gen: gen, cancel: cancel}
	c.states[sessionID] = StateFiltering
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if cur, ok := c.pending[sessionID]; ok && cur.gen == gen {
			delete(c.pending, sessionID)
		}
		c.mu.Unlock()
	}()

	if c.settle > 0 {
		timer := time.NewTimer(c.settle)
		defer timer.Stop()
		select {
		case <-runCtx.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Debug("search superseded during settle", zap.String("session_id", sessionID))
			return appErrors.ErrSuperseded
		case <-timer.C:
		}
	}

	err := compute(runCtx)
	// A cancelled run context with a live parent means a newer request won;
	// its output must not be surfaced even if compute finished cleanly.
	if runCtx.Err() != nil && ctx.Err() == nil {
		return appErrors.ErrSuperseded
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	if cur, ok := c.pending[sessionID]; !ok || cur.gen == gen {
		c.states[sessionID] = StateReady
	}
	c.mu.Unlock()
	return nil
}
