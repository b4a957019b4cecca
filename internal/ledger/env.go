package ledger

import (
	"context"
	"encoding/json"

	"doblink/internal/logger"
	"doblink/internal/models"
)

// Env is the view of the host handed to one operation. Reads see the
// operation's own writes; nothing reaches the backend or the event sink
// until the host commits.
type Env struct {
	ctx    context.Context
	store  Store
	caller models.Address
	now    int64

	reads     map[string]Read
	readOrder []string
	writes    map[string][]byte
	order     []string
	events    []Event
}

func newEnv(ctx context.Context, store Store, caller models.Address, now int64) *Env {
	return &Env{
		ctx:    ctx,
		store:  store,
		caller: caller,
		now:    now,
		reads:  make(map[string]Read),
		writes: make(map[string][]byte),
	}
}

// Context returns the context of the enclosing call.
func (e *Env) Context() context.Context { return e.ctx }

// Caller returns the verified identity of whoever invoked the operation.
func (e *Env) Caller() models.Address { return e.caller }

// Now returns the ledger timestamp of the operation.
func (e *Env) Now() int64 { return e.now }

// Get reads key, preferring a value written earlier in the same operation.
// The first backend value seen for each key is recorded so that commit can
// detect a concurrent change.
func (e *Env) Get(key string) ([]byte, bool, error) {
	if value, ok := e.writes[key]; ok {
		return clone(value), true, nil
	}
	if r, ok := e.reads[key]; ok {
		return clone(r.Value), r.Found, nil
	}
	value, found, err := e.store.Get(e.ctx, key)
	if err != nil {
		return nil, false, err
	}
	e.reads[key] = Read{Key: key, Value: clone(value), Found: found}
	e.readOrder = append(e.readOrder, key)
	return value, found, nil
}

// Set buffers a write until commit.
func (e *Env) Set(key string, value []byte) error {
	if _, seen := e.writes[key]; !seen {
		e.order = append(e.order, key)
	}
	e.writes[key] = clone(value)
	return nil
}

// Publish buffers an event until commit. A payload that cannot be encoded is
// dropped with a warning.
func (e *Env) Publish(topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Get().Warnw("dropping unencodable registry event", "topic", topic, "error", err)
		return
	}
	e.events = append(e.events, Event{Topic: topic, Payload: data, Timestamp: e.now})
}

func (e *Env) observedReads() []Read {
	reads := make([]Read, 0, len(e.readOrder))
	for _, key := range e.readOrder {
		reads = append(reads, e.reads[key])
	}
	return reads
}

func (e *Env) pendingWrites() []Write {
	writes := make([]Write, 0, len(e.order))
	for _, key := range e.order {
		writes = append(writes, Write{Key: key, Value: e.writes[key]})
	}
	return writes
}
