package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"doblink/internal/middleware"
	"doblink/internal/testutil"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENV", "test")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("JWT_SECRET", "cli-test-secret")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	addr := testutil.Address(4)

	out, err := runCLI(t, "token", "--address", addr.String(), "--ttl", "5m")
	testutil.AssertNoError(t, err)

	got, err := middleware.ParseAccessToken("cli-test-secret", strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("printed token does not verify: %v", err)
	}
	if got != addr {
		t.Errorf("expected %s, got %s", addr, got)
	}
}

func TestTokenCommandRejectsBadAddress(t *testing.T) {
	if _, err := runCLI(t, "token", "--address", "alice"); err == nil {
		t.Fatal("expected invalid address to be rejected")
	}
}

func TestInitCommand(t *testing.T) {
	admin := testutil.Address(1)

	out, err := runCLI(t, "init", "--admin", admin.String())
	testutil.AssertNoError(t, err)

	var body struct {
		Admin string `json:"admin"`
		Token struct {
			ID string `json:"id"`
		} `json:"token"`
	}
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("failed to decode %q: %v", out, err)
	}
	if body.Admin != admin.String() || body.Token.ID != "EVCHARGER001" {
		t.Errorf("unexpected output %+v", body)
	}
}

func TestStatsCommandOnEmptyStore(t *testing.T) {
	out, err := runCLI(t, "stats")
	testutil.AssertNoError(t, err)

	var stats map[string]int64
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("failed to decode %q: %v", out, err)
	}
	if stats["total_investments"] != 0 || stats["total_amount"] != 0 || stats["completed_investments"] != 0 {
		t.Errorf("expected zero stats, got %v", stats)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	_, err := runCLI(t, "set-status", "--id", "1", "--status", "refunded", "--as", testutil.Address(1).String())
	testutil.AssertAppError(t, err, "INVALID_STATUS")
}
