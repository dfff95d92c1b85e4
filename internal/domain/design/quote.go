package design

import (
	"errors"

	"disena_service/internal/domain/entities"
)

var (
	// ErrIncompleteAllocation rejects quoting before the completion
	// percentage reaches exactly 100; the caller routes to the
	// suggestion flow instead.
	ErrIncompleteAllocation = errors.New("allocation incomplete")
	// ErrAreaExceeded rejects quoting while the total used area is over
	// the budget.
	ErrAreaExceeded = errors.New("area budget exceeded")
)

// BuildQuote prices the current selection. Preconditions, in order:
// percentComplete must be exactly 100, then areaUsedTotal must not
// exceed the total budget. Every ledger entry produces its own line
// item; duplicate selections are priced independently.
//
// Identity and timestamp are stamped by the caller; the builder itself
// is a pure function of the ledger and view.
func BuildQuote(ledger *entities.Ledger, snap entities.CatalogSnapshot, view AllocationView) (entities.Quote, error) {
	if view.PercentComplete != 100 {
		return entities.Quote{}, ErrIncompleteAllocation
	}
	if view.AreaUsedTotalM2 > view.TotalAreaM2 {
		return entities.Quote{}, ErrAreaExceeded
	}

	q := entities.Quote{}
	for _, e := range ledger.Entries {
		svc, ok := snap.ServiceByID(e.ServiceID)
		if !ok {
			continue
		}
		q.LineItems = append(q.LineItems, entities.QuoteLineItem{
			ServiceID:   svc.ID,
			NameEN:      svc.NameEN,
			NameES:      svc.NameES,
			PriceMinUSD: svc.PriceMinUSD,
		})
		q.TotalPriceUSD += svc.PriceMinUSD
	}
	return q, nil
}
