package testutil

import (
	"testing"

	"doblink/internal/ledger"
	"doblink/internal/models"
)

// base32Alphabet is the strkey alphabet used to build fixture addresses.
const base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// StartTime is the ledger timestamp test clocks start from.
const StartTime int64 = 1_700_000_000

// Address returns a deterministic, well-formed account address for n.
func Address(n int) models.Address {
	buf := make([]byte, 56)
	buf[0] = 'G'
	for i := 55; i >= 1; i-- {
		buf[i] = base32Alphabet[n%32]
		n /= 32
	}
	return models.Address(buf)
}

// TestClock is a manually advanced ledger clock.
type TestClock struct {
	now int64
}

// NewTestClock returns a clock reading StartTime.
func NewTestClock() *TestClock {
	return &TestClock{now: StartTime}
}

func (c *TestClock) Now() int64 { return c.now }

// Advance moves the clock by seconds, which may be negative.
func (c *TestClock) Advance(seconds int64) { c.now += seconds }

// TestHost bundles an in-memory host with handles on its collaborators.
type TestHost struct {
	Host  *ledger.Host
	Store *ledger.MemoryStore
	Sink  *ledger.MemorySink
	Clock *TestClock
}

// NewTestHost creates a host over a fresh MemoryStore.
func NewTestHost(t *testing.T) *TestHost {
	t.Helper()

	store := ledger.NewMemoryStore()
	sink := &ledger.MemorySink{}
	clock := NewTestClock()
	return &TestHost{
		Host:  ledger.NewHost(store, clock, sink),
		Store: store,
		Sink:  sink,
		Clock: clock,
	}
}
