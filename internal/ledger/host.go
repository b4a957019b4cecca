package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	apperrors "doblink/internal/errors"
	"doblink/internal/logger"
	"doblink/internal/models"
)

// maxCommitAttempts bounds how often an operation is re-run after losing a
// commit race to another process sharing the backend.
const maxCommitAttempts = 5

// Host executes operations one at a time against a Backend. An operation's
// writes are committed in a single batch only if it returns nil; its events
// are published only after that commit succeeds. Within a process the mutex
// serializes operations; across processes sharing a backend, a commit whose
// reads went stale fails with ErrConflict and the operation runs again.
type Host struct {
	mu      sync.Mutex
	backend Backend
	clock   Clock
	sink    EventSink
	lastNow int64
}

// NewHost creates a Host. A nil clock uses the system clock; a nil sink drops events.
func NewHost(backend Backend, clock Clock, sink EventSink) *Host {
	if clock == nil {
		clock = SystemClock{}
	}
	if sink == nil {
		sink = MultiSink{}
	}
	return &Host{backend: backend, clock: clock, sink: sink}
}

// Invoke runs op on behalf of caller. Timestamps handed to successive
// operations never decrease, even if the underlying clock steps back.
func (h *Host) Invoke(ctx context.Context, caller models.Address, op func(env *Env) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.clock.Now()
	if now < h.lastNow {
		now = h.lastNow
	}
	h.lastNow = now

	var env *Env
	for attempt := 1; ; attempt++ {
		env = newEnv(ctx, h.backend, caller, now)
		if err := op(env); err != nil {
			return err
		}

		writes := env.pendingWrites()
		if len(writes) == 0 {
			break
		}
		err := h.backend.Commit(ctx, env.observedReads(), writes)
		if err == nil {
			break
		}
		if errors.Is(err, ErrConflict) && attempt < maxCommitAttempts {
			logger.Get().Debugw("retrying registry operation after commit conflict", "attempt", attempt)
			continue
		}
		if errors.Is(err, ErrConflict) {
			err = fmt.Errorf("gave up after %d attempts: %w", attempt, err)
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, event := range env.events {
		if err := h.sink.Publish(ctx, event); err != nil {
			logger.Get().Warnw("failed to publish registry event",
				"topic", event.Topic,
				"error", err,
			)
		}
	}
	return nil
}
