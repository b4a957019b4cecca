package services

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"doblink/internal/metrics"
	"doblink/internal/models"
	"doblink/internal/registry"
	"doblink/internal/testutil"
)

func setupRegistryService(t *testing.T) (RegistryServicer, *metrics.Metrics, models.Address) {
	t.Helper()

	th := testutil.NewTestHost(t)
	m := metrics.New(prometheus.NewRegistry())
	svc := NewRegistryService(th.Host, registry.New(), m)

	admin := testutil.Address(1)
	testutil.AssertNoError(t, svc.Init(context.Background(), admin, admin))
	return svc, m, admin
}

func TestRegistryServiceCreateInvestment(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		svc, m, _ := setupRegistryService(t)
		buyer := testutil.Address(2)

		inv, err := svc.CreateInvestment(ctx, buyer, buyer, "EVCHARGER001", 50_000_000)
		testutil.AssertNoError(t, err)

		if inv.ID != 1 {
			t.Errorf("expected id 1, got %d", inv.ID)
		}
		if inv.Status != models.InvestmentStatusPending {
			t.Errorf("expected pending, got %s", inv.Status)
		}
		if inv.Timestamp != testutil.StartTime {
			t.Errorf("expected timestamp %d, got %d", testutil.StartTime, inv.Timestamp)
		}
		if got := promtest.ToFloat64(m.InvestmentsCreated); got != 1 {
			t.Errorf("expected investments counter 1, got %v", got)
		}
	})

	t.Run("below_minimum", func(t *testing.T) {
		svc, m, _ := setupRegistryService(t)
		buyer := testutil.Address(2)

		_, err := svc.CreateInvestment(ctx, buyer, buyer, "EVCHARGER001", 5_000_000)
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		if got := promtest.ToFloat64(m.Operations.WithLabelValues("create_investment", "INVALID_AMOUNT")); got != 1 {
			t.Errorf("expected one INVALID_AMOUNT outcome, got %v", got)
		}
		if got := promtest.ToFloat64(m.InvestmentsCreated); got != 0 {
			t.Errorf("expected investments counter 0, got %v", got)
		}
	})

	t.Run("above_maximum", func(t *testing.T) {
		svc, _, _ := setupRegistryService(t)
		buyer := testutil.Address(2)

		_, err := svc.CreateInvestment(ctx, buyer, buyer, "EVCHARGER001", 200_000_000_000)
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})

	t.Run("negative_band", func(t *testing.T) {
		svc, m, admin := setupRegistryService(t)
		buyer := testutil.Address(2)

		_, err := svc.UpdateTokenInfo(ctx, admin, models.TokenConfig{
			ID: "EVCHARGER001", Name: "Credit line", MinInvestment: -100, MaxInvestment: 100,
		})
		testutil.AssertNoError(t, err)

		inv, err := svc.CreateInvestment(ctx, buyer, buyer, "EVCHARGER001", -5)
		testutil.AssertNoError(t, err)
		if inv.Amount != -5 {
			t.Errorf("expected amount -5, got %d", inv.Amount)
		}

		all, err := svc.GetAllInvestments(ctx)
		testutil.AssertNoError(t, err)
		if len(all) != 1 {
			t.Errorf("expected 1 stored investment, got %d", len(all))
		}
		if got := promtest.ToFloat64(m.InvestedAmount); got != -5 {
			t.Errorf("expected invested amount -5, got %v", got)
		}
		if got := promtest.ToFloat64(m.Operations.WithLabelValues("create_investment", "ok")); got != 1 {
			t.Errorf("expected one successful create, got %v", got)
		}
	})
}

func TestRegistryServiceTokenInfo(t *testing.T) {
	ctx := context.Background()
	svc, _, admin := setupRegistryService(t)

	cfg, err := svc.GetTokenInfo(ctx)
	testutil.AssertNoError(t, err)
	if *cfg != registry.DefaultTokenConfig() {
		t.Errorf("expected default token, got %+v", *cfg)
	}

	update := models.TokenConfig{ID: "SOLAR01", Name: "Solar", APYBasisPoints: 900, MinInvestment: 1, MaxInvestment: 10}
	_, err = svc.UpdateTokenInfo(ctx, testutil.Address(2), update)
	testutil.AssertAppError(t, err, "NOT_AUTHORIZED")

	updated, err := svc.UpdateTokenInfo(ctx, admin, update)
	testutil.AssertNoError(t, err)
	if *updated != update {
		t.Errorf("expected %+v, got %+v", update, *updated)
	}

	cfg, err = svc.GetTokenInfo(ctx)
	testutil.AssertNoError(t, err)
	if *cfg != update {
		t.Errorf("expected stored token %+v, got %+v", update, *cfg)
	}
}

func TestRegistryServiceUpdateInvestmentStatus(t *testing.T) {
	ctx := context.Background()
	svc, m, admin := setupRegistryService(t)
	buyer := testutil.Address(2)

	inv, err := svc.CreateInvestment(ctx, buyer, buyer, "EVCHARGER001", 50_000_000)
	testutil.AssertNoError(t, err)

	_, err = svc.UpdateInvestmentStatus(ctx, buyer, inv.ID, models.InvestmentStatusCompleted)
	testutil.AssertAppError(t, err, "NOT_AUTHORIZED")

	_, err = svc.UpdateInvestmentStatus(ctx, admin, 99, models.InvestmentStatusCompleted)
	testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")

	updated, err := svc.UpdateInvestmentStatus(ctx, admin, inv.ID, models.InvestmentStatusCompleted)
	testutil.AssertNoError(t, err)
	if updated.Status != models.InvestmentStatusCompleted {
		t.Errorf("expected completed, got %s", updated.Status)
	}
	if updated.Amount != inv.Amount || updated.Timestamp != inv.Timestamp {
		t.Errorf("status update must not touch other fields: %+v", updated)
	}
	if got := promtest.ToFloat64(m.StatusChanges.WithLabelValues("completed")); got != 1 {
		t.Errorf("expected one completed transition, got %v", got)
	}
}

func TestRegistryServiceQueries(t *testing.T) {
	ctx := context.Background()
	svc, _, admin := setupRegistryService(t)
	buyer := testutil.Address(2)
	other := testutil.Address(3)

	first, err := svc.CreateInvestment(ctx, buyer, buyer, "T", 50_000_000)
	testutil.AssertNoError(t, err)
	_, err = svc.CreateInvestment(ctx, buyer, buyer, "T", 75_000_000)
	testutil.AssertNoError(t, err)
	_, err = svc.CreateInvestment(ctx, other, other, "T", 20_000_000)
	testutil.AssertNoError(t, err)
	_, err = svc.UpdateInvestmentStatus(ctx, admin, first.ID, models.InvestmentStatusCompleted)
	testutil.AssertNoError(t, err)

	mine, err := svc.GetBuyerInvestments(ctx, buyer)
	testutil.AssertNoError(t, err)
	if len(mine) != 2 || mine[0].ID != 1 || mine[1].ID != 2 {
		t.Errorf("unexpected buyer investments %+v", mine)
	}

	all, err := svc.GetAllInvestments(ctx)
	testutil.AssertNoError(t, err)
	if len(all) != 3 {
		t.Errorf("expected 3 investments, got %d", len(all))
	}

	total, err := svc.GetTokenTotalInvestments(ctx, "T")
	testutil.AssertNoError(t, err)
	if total != 50_000_000 {
		t.Errorf("expected completed total 50000000, got %d", total)
	}

	stats, err := svc.GetStats(ctx)
	testutil.AssertNoError(t, err)
	want := models.Stats{TotalInvestments: 3, TotalAmount: 145_000_000, CompletedInvestments: 1}
	if *stats != want {
		t.Errorf("expected %+v, got %+v", want, *stats)
	}

	got, err := svc.GetInvestment(ctx, 2)
	testutil.AssertNoError(t, err)
	if got.Amount != 75_000_000 {
		t.Errorf("expected amount 75000000, got %d", got.Amount)
	}
	_, err = svc.GetInvestment(ctx, 4)
	testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
}

func TestRegistryServiceGetAdmin(t *testing.T) {
	ctx := context.Background()

	th := testutil.NewTestHost(t)
	svc := NewRegistryService(th.Host, registry.New(), nil)

	_, err := svc.GetAdmin(ctx)
	testutil.AssertAppError(t, err, "ADMIN_NOT_FOUND")

	admin := testutil.Address(7)
	testutil.AssertNoError(t, svc.Init(ctx, admin, admin))

	got, err := svc.GetAdmin(ctx)
	testutil.AssertNoError(t, err)
	if got != admin {
		t.Errorf("expected %s, got %s", admin, got)
	}
}
