package design

import (
	"errors"
	"testing"
)

func TestBuildQuote_IncompleteAllocation(t *testing.T) {
	snap := testSnapshot()
	l := seededLedger(t, snap)

	view := ComputeAllocation(l, snap, 80)
	_, err := BuildQuote(l, snap, view)
	if !errors.Is(err, ErrIncompleteAllocation) {
		t.Fatalf("expected ErrIncompleteAllocation, got %v", err)
	}
}

func TestBuildQuote_AreaExceededCheckedSecond(t *testing.T) {
	snap := testSnapshot()
	l := seededLedger(t, snap)
	// Garden fills the 40 m2 of additional area; the extra room pushes
	// the used total past the budget.
	l.Append("cat-ext", "svc-garden")
	l.Append("cat-spaces", "svc-room")

	view := ComputeAllocation(l, snap, 80)
	// Forcing percent to 100 isolates the second precondition; the
	// view is plain data, so a test can construct the overlap state
	// directly.
	view.PercentComplete = 100

	_, err := BuildQuote(l, snap, view)
	if !errors.Is(err, ErrAreaExceeded) {
		t.Fatalf("expected ErrAreaExceeded, got %v", err)
	}
}

func TestBuildQuote_ExactlySatisfied(t *testing.T) {
	snap := testSnapshot()
	l := seededLedger(t, snap)
	l.Append("cat-ext", "svc-garden") // 40 m2, exactly fills additional area

	view := ComputeAllocation(l, snap, 80)
	if view.PercentComplete != 100 {
		t.Fatalf("fixture expects 100%%, got %d", view.PercentComplete)
	}

	q, err := BuildQuote(l, snap, view)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One line item per ledger entry: five baselines (free) plus the
	// garden.
	if len(q.LineItems) != 6 {
		t.Fatalf("expected 6 line items, got %d", len(q.LineItems))
	}
	if q.TotalPriceUSD != 3000 {
		t.Fatalf("expected total 3000, got %v", q.TotalPriceUSD)
	}
}

func TestBuildQuote_DuplicatesPricedIndependently(t *testing.T) {
	snap := testSnapshot()
	l := seededLedger(t, snap)
	l.Append("cat-spaces", "svc-room")
	l.Append("cat-spaces", "svc-room")
	l.Append("cat-spaces", "svc-room") // 48 of 48 additional

	view := ComputeAllocation(l, snap, 88)
	if view.PercentComplete != 100 {
		t.Fatalf("fixture expects 100%%, got %d", view.PercentComplete)
	}

	q, err := BuildQuote(l, snap, view)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.LineItems) != 8 {
		t.Fatalf("expected 8 line items, got %d", len(q.LineItems))
	}
	if q.TotalPriceUSD != 4500 {
		t.Fatalf("expected total 4500 (3 x 1500), got %v", q.TotalPriceUSD)
	}
}
