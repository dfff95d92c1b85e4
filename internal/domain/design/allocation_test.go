package design

import (
	"reflect"
	"testing"

	"disena_service/internal/domain/entities"
)

// testSnapshot builds the fixture catalog shared by the design package
// tests: the five baseline services plus a mix of constrained and
// unconstrained ones.
func testSnapshot() entities.CatalogSnapshot {
	return entities.CatalogSnapshot{
		Categories: []entities.Category{
			{ID: "cat-spaces", Name: "Spaces"},
			{ID: "cat-ext", Name: "Exteriors"},
			{ID: "cat-extra", Name: "Additions"},
		},
		Services: []entities.Service{
			{ID: "svc-small-room", CategoryID: "cat-spaces", NameEN: "Small room", NameES: "Habitación pequeña"},
			{ID: "svc-small-bath", CategoryID: "cat-spaces", NameEN: "Small bathroom", NameES: "Baño pequeño"},
			{ID: "svc-half-bath", CategoryID: "cat-spaces", NameEN: "Small half-bath", NameES: "Medio baño pequeño"},
			{ID: "svc-parking", CategoryID: "cat-ext", NameEN: "Parking", NameES: "Estacionamiento"},
			{ID: "svc-laundry", CategoryID: "cat-extra", NameEN: "Laundry/Storage", NameES: "Lavandería/Bodega"},
			{ID: "svc-room", CategoryID: "cat-spaces", NameEN: "Room", NameES: "Habitación", PriceMinUSD: 1500},
			{ID: "svc-kitchen", CategoryID: "cat-spaces", NameEN: "Kitchen", NameES: "Cocina", PriceMinUSD: 2000},
			{ID: "svc-office", CategoryID: "cat-spaces", NameEN: "Home office", NameES: "Oficina en casa", PriceMinUSD: 900},
			{ID: "svc-garage", CategoryID: "cat-ext", NameEN: "Garage", NameES: "Garaje", PriceMinUSD: 1800},
			{ID: "svc-pool", CategoryID: "cat-ext", NameEN: "Pool", NameES: "Piscina", PriceMinUSD: 5000},
			{ID: "svc-garden", CategoryID: "cat-ext", NameEN: "Garden", NameES: "Jardín", PriceMinUSD: 3000},
			{ID: "svc-consult", CategoryID: "cat-extra", NameEN: "Interior design consultation", NameES: "Consultoría de interiores", PriceMinUSD: 800},
		},
	}
}

func seededLedger(t *testing.T, snap entities.CatalogSnapshot) *entities.Ledger {
	t.Helper()
	l := entities.NewLedger()
	SeedBaseline(l, snap)
	if len(l.Entries) != 5 {
		t.Fatalf("expected 5 baseline entries, got %d", len(l.Entries))
	}
	return l
}

func TestSeedBaseline_SkipsMissingNames(t *testing.T) {
	snap := testSnapshot()
	// Drop parking from the catalog; that baseline slot is skipped
	// without error.
	var services []entities.Service
	for _, s := range snap.Services {
		if s.ID != "svc-parking" {
			services = append(services, s)
		}
	}
	snap.Services = services

	l := entities.NewLedger()
	SeedBaseline(l, snap)
	if len(l.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(l.Entries))
	}
	if l.Selected("svc-parking") {
		t.Fatalf("parking should not be selected")
	}
}

func TestComputeAllocation_FreshSessionAtMinimumBudget(t *testing.T) {
	snap := testSnapshot()
	l := seededLedger(t, snap)

	view := ComputeAllocation(l, snap, 80)

	if view.AreaUsedByDefaultsM2 != 40 {
		t.Fatalf("expected defaults 40, got %v", view.AreaUsedByDefaultsM2)
	}
	if view.AdditionalAreaM2 != 40 {
		t.Fatalf("expected additional 40, got %v", view.AdditionalAreaM2)
	}
	if view.AreaUsedByOthersM2 != 0 || view.PercentComplete != 0 {
		t.Fatalf("expected 0 others / 0 percent, got %v / %d", view.AreaUsedByOthersM2, view.PercentComplete)
	}
	if view.AreaRemainingM2 != 40 {
		t.Fatalf("expected remaining 40, got %v", view.AreaRemainingM2)
	}
	if view.AreaExceeded {
		t.Fatalf("fresh session must not be exceeded")
	}
}

func TestComputeAllocation_Decomposition(t *testing.T) {
	snap := testSnapshot()
	l := seededLedger(t, snap)
	l.Append("cat-spaces", "svc-room")
	l.Append("cat-ext", "svc-garage")
	l.Append("cat-extra", "svc-consult") // no footprint

	view := ComputeAllocation(l, snap, 200)
	if view.AreaUsedTotalM2 != view.AreaUsedByDefaultsM2+view.AreaUsedByOthersM2 {
		t.Fatalf("decomposition broken: total=%v defaults=%v others=%v",
			view.AreaUsedTotalM2, view.AreaUsedByDefaultsM2, view.AreaUsedByOthersM2)
	}
	if view.AreaUsedByOthersM2 != 36 {
		t.Fatalf("expected others 36 (room 16 + garage 20 + consult 0), got %v", view.AreaUsedByOthersM2)
	}
}

func TestComputeAllocation_PercentRounding(t *testing.T) {
	snap := testSnapshot()
	l := seededLedger(t, snap)
	l.Append("cat-spaces", "svc-office") // 10 m2

	view := ComputeAllocation(l, snap, 100)
	if view.AdditionalAreaM2 != 60 {
		t.Fatalf("expected additional 60, got %v", view.AdditionalAreaM2)
	}
	if view.PercentComplete != 17 {
		t.Fatalf("expected percent 17 (round of 16.67), got %d", view.PercentComplete)
	}
}

func TestComputeAllocation_Idempotent(t *testing.T) {
	snap := testSnapshot()
	l := seededLedger(t, snap)
	l.Append("cat-spaces", "svc-kitchen")

	a := ComputeAllocation(l, snap, 120)
	b := ComputeAllocation(l, snap, 120)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("views differ:\n%+v\n%+v", a, b)
	}
}

func TestComputeAllocation_PercentUncappedAndExceededIndependent(t *testing.T) {
	snap := testSnapshot()
	l := seededLedger(t, snap)
	// 56 m2 of fillers against 40 m2 of additional area.
	l.Append("cat-ext", "svc-garden")
	l.Append("cat-spaces", "svc-room")

	view := ComputeAllocation(l, snap, 80)
	if view.PercentComplete != 140 {
		t.Fatalf("expected uncapped percent 140, got %d", view.PercentComplete)
	}
	if !view.AreaExceeded {
		t.Fatalf("expected exceeded flag")
	}
	if view.AreaRemainingM2 != -16 {
		t.Fatalf("expected remaining -16, got %v", view.AreaRemainingM2)
	}
	if v := view.Verdict(); v.Level != ValidationWarning {
		t.Fatalf("expected warning verdict, got %+v", v)
	}
}

func TestComputeAllocation_OverLimitAdvisory(t *testing.T) {
	snap := testSnapshot()
	l := entities.NewLedger()
	for i := 0; i < 2; i++ {
		l.Append("cat-spaces", "svc-kitchen") // max 2 units
	}

	view := ComputeAllocation(l, snap, 200)
	if len(view.OverLimit) != 0 {
		t.Fatalf("at the cap is not over it: %+v", view.OverLimit)
	}

	l.Append("cat-spaces", "svc-kitchen")
	view = ComputeAllocation(l, snap, 200)
	if len(view.OverLimit) != 1 {
		t.Fatalf("expected one over-limit warning, got %+v", view.OverLimit)
	}
	w := view.OverLimit[0]
	if w.ServiceID != "svc-kitchen" || w.Units != 3 || w.MaxUnits != 2 {
		t.Fatalf("unexpected warning: %+v", w)
	}
}

func TestComputeAllocation_ZeroAdditionalArea(t *testing.T) {
	snap := testSnapshot()
	l := seededLedger(t, snap)

	// Additional area can only hit zero through a non-positive budget;
	// the percent must stay 0 rather than divide by zero.
	view := ComputeAllocation(l, snap, DefaultAreaM2)
	if view.AdditionalAreaM2 != 0 || view.PercentComplete != 0 {
		t.Fatalf("expected additional 0 / percent 0, got %v / %d", view.AdditionalAreaM2, view.PercentComplete)
	}
}

func TestClampTotalArea(t *testing.T) {
	cases := []struct {
		name      string
		requested float64
		want      float64
		advisory  BudgetAdvisory
	}{
		{name: "below floor", requested: 10, want: 80, advisory: BudgetAdvisoryFloorClamped},
		{name: "at floor", requested: 80, want: 80, advisory: BudgetAdvisoryNone},
		{name: "in range", requested: 250, want: 250, advisory: BudgetAdvisoryNone},
		{name: "at ceiling", requested: 1000, want: 1000, advisory: BudgetAdvisoryNone},
		{name: "above ceiling", requested: 5000, want: 1000, advisory: BudgetAdvisoryCeilingExceeded},
		{name: "negative", requested: -5, want: 80, advisory: BudgetAdvisoryFloorClamped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, advisory := ClampTotalArea(tc.requested)
			if got != tc.want || advisory != tc.advisory {
				t.Fatalf("ClampTotalArea(%v) = %v, %q; want %v, %q", tc.requested, got, advisory, tc.want, tc.advisory)
			}
		})
	}
}

func TestRuleFor_FailsOpen(t *testing.T) {
	svc := entities.Service{NameEN: "Something the table never heard of"}
	if _, ok := RuleFor(svc); ok {
		t.Fatalf("expected no rule")
	}
	if AreaOf(svc) != 0 || MaxUnitsOf(svc) != 0 {
		t.Fatalf("unknown service must have no constraints")
	}
	if IsBaseline(svc) {
		t.Fatalf("unknown service is not baseline")
	}
}
