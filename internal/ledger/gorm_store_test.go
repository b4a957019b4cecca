package ledger_test

import (
	"context"
	"errors"
	"encoding/json"
	"testing"

	"doblink/internal/ledger"
	"doblink/internal/models"
	"doblink/internal/testutil"
)

func TestGormStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := ledger.NewGormStore(db)

		_, ok, err := store.Get(ctx, "NOPE")
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("expected missing key")
		}
	})

	t.Run("commit_upserts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := ledger.NewGormStore(db)

		testutil.AssertNoError(t, store.Set(ctx, "CNT", []byte("1")))
		testutil.AssertNoError(t, store.Commit(ctx, nil, []ledger.Write{
			{Key: "CNT", Value: []byte("2")},
			{Key: "INV:1", Value: []byte(`{"id":1}`)},
		}))

		value, ok, err := store.Get(ctx, "CNT")
		testutil.AssertNoError(t, err)
		if !ok || string(value) != "2" {
			t.Errorf("expected CNT=2, got %q", value)
		}

		var count int64
		db.Model(&models.LedgerEntry{}).Count(&count)
		if count != 2 {
			t.Errorf("expected 2 rows, got %d", count)
		}
	})

	t.Run("host_over_gorm", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		host := ledger.NewHost(ledger.NewGormStore(db), testutil.NewTestClock(), ledger.NewGormSink(db))

		err := host.Invoke(ctx, "", func(env *ledger.Env) error {
			_ = env.Set("A", []byte("x"))
			env.Publish("INVESTED", map[string]uint32{"id": 1})
			return nil
		})
		testutil.AssertNoError(t, err)

		var events []models.RegistryEvent
		db.Find(&events)
		if len(events) != 1 {
			t.Fatalf("expected 1 persisted event, got %d", len(events))
		}
		if events[0].Topic != "INVESTED" || events[0].LedgerTimestamp != testutil.StartTime {
			t.Errorf("unexpected event row %+v", events[0])
		}
		var payload map[string]uint32
		if err := json.Unmarshal([]byte(events[0].Payload), &payload); err != nil || payload["id"] != 1 {
			t.Errorf("unexpected payload %q", events[0].Payload)
		}
		if events[0].ID == "" {
			t.Error("expected a generated row id")
		}
	})

	t.Run("stale_read_conflicts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := ledger.NewGormStore(db)
		testutil.AssertNoError(t, store.Set(ctx, "CNT", []byte("3")))

		err := store.Commit(ctx,
			[]ledger.Read{{Key: "CNT", Value: []byte("2"), Found: true}},
			[]ledger.Write{{Key: "CNT", Value: []byte("9")}, {Key: "INV:2", Value: []byte(`{"id":2}`)}},
		)
		if !errors.Is(err, ledger.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}

		value, _, _ := store.Get(ctx, "CNT")
		if string(value) != "3" {
			t.Errorf("conflicting commit must roll back, CNT=%q", value)
		}
		if _, ok, _ := store.Get(ctx, "INV:2"); ok {
			t.Error("conflicting commit must not insert other keys")
		}
	})

	t.Run("missing_read_then_created_conflicts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := ledger.NewGormStore(db)
		testutil.AssertNoError(t, store.Set(ctx, "CNT", []byte("2")))

		err := store.Commit(ctx, []ledger.Read{{Key: "CNT"}}, []ledger.Write{{Key: "CNT", Value: []byte("2")}})
		if !errors.Is(err, ledger.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("matching_reads_commit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := ledger.NewGormStore(db)
		testutil.AssertNoError(t, store.Set(ctx, "CNT", []byte("2")))

		err := store.Commit(ctx,
			[]ledger.Read{{Key: "CNT", Value: []byte("2"), Found: true}, {Key: "INV:2"}},
			[]ledger.Write{{Key: "CNT", Value: []byte("3")}, {Key: "INV:2", Value: []byte(`{"id":2}`)}},
		)
		testutil.AssertNoError(t, err)

		value, _, _ := store.Get(ctx, "CNT")
		if string(value) != "3" {
			t.Errorf("expected CNT=3, got %q", value)
		}
	})
}
