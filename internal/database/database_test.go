package database

import (
	"testing"

	"doblink/internal/config"
	"doblink/internal/models"
)

func TestConfigDSN(t *testing.T) {
	pg := &Config{Driver: config.BackendPostgres, Host: "db", Port: "5432", User: "u", Password: "p", DBName: "reg", SSLMode: "disable"}
	if got, want := pg.DSN(), "host=db port=5432 user=u password=p dbname=reg sslmode=disable"; got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if got, want := pg.MigrationURL(), "postgres://u:p@db:5432/reg?sslmode=disable"; got != want {
		t.Errorf("MigrationURL() = %q, want %q", got, want)
	}

	lite := &Config{Driver: config.BackendSQLite, SQLitePath: "file::memory:"}
	if got := lite.DSN(); got != "file::memory:" {
		t.Errorf("sqlite DSN() = %q", got)
	}
}

func TestNewManagerSQLiteMigrates(t *testing.T) {
	mgr, err := NewManager(&Config{Driver: config.BackendSQLite, SQLitePath: "file:dbtest?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer mgr.Close()

	if err := mgr.Migrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	for _, model := range []interface{}{&models.LedgerEntry{}, &models.RegistryEvent{}, &models.AuditLog{}} {
		if !mgr.DB().Migrator().HasTable(model) {
			t.Errorf("expected table for %T", model)
		}
	}
}

func TestNewManagerRejectsUnknownDriver(t *testing.T) {
	if _, err := NewManager(&Config{Driver: "redis"}); err == nil {
		t.Fatal("expected error for non-SQL driver")
	}
}
