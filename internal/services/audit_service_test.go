package services

import (
	"testing"

	"doblink/internal/models"
	"doblink/internal/testutil"
)

func TestAuditServiceLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)
	caller := testutil.Address(1)

	svc.Log(caller, "UPDATE_INVESTMENT_STATUS", "investment", "3", "10.0.0.1",
		map[string]any{"status": "completed"})

	var entries []models.AuditLog
	if err := db.Find(&entries).Error; err != nil {
		t.Fatalf("failed to read audit logs: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Caller != caller.String() {
		t.Errorf("expected caller %s, got %s", caller, entry.Caller)
	}
	if entry.Action != "UPDATE_INVESTMENT_STATUS" || entry.ResourceType != "investment" || entry.ResourceID != "3" {
		t.Errorf("unexpected entry %+v", entry)
	}
	if entry.Changes != `{"status":"completed"}` {
		t.Errorf("unexpected changes %q", entry.Changes)
	}
	if entry.ID == "" {
		t.Error("expected a generated id")
	}
}

func TestAuditServiceWithoutDatabase(t *testing.T) {
	svc := NewAuditService(nil)
	// Must not panic.
	svc.Log(testutil.Address(1), "INIT", "registry", "", "127.0.0.1", nil)
}
