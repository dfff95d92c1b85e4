package entities

import "time"

// QuoteLineItem prices one selected service instance. Duplicate
// selections yield duplicate line items; there is no quantity
// discounting.
type QuoteLineItem struct {
	ServiceID   string  `json:"service_id"`
	NameEN      string  `json:"name_en"`
	NameES      string  `json:"name_es"`
	PriceMinUSD float64 `json:"price_min_usd"`
}

// Quote is the immutable priced summary produced when the allocation is
// exactly satisfied. It is handed to the invoicing/scheduling
// collaborators and never mutated afterwards; the service itself does
// not persist it beyond the owning session.
type Quote struct {
	ID            string          `json:"id"`
	LineItems     []QuoteLineItem `json:"line_items"`
	TotalPriceUSD float64         `json:"total_price_usd"`
	GeneratedAt   time.Time       `json:"generated_at"`
}
