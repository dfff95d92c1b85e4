package entities

import "time"

// SessionState tracks the configurator flow:
//
//	loading → configuring ⇄ suggesting → configuring → quoted → configuring
//
// "quoted" is terminal for the session unless the user explicitly
// reopens it, which discards the quote. A failed catalog load never
// produces a persisted session, so load_error only appears on the wire.
type SessionState string

const (
	SessionStateLoading     SessionState = "loading"
	SessionStateLoadError   SessionState = "load_error"
	SessionStateConfiguring SessionState = "configuring"
	SessionStateSuggesting  SessionState = "suggesting"
	SessionStateQuoted      SessionState = "quoted"
)

// DesignSession is one visitor's configurator session: the catalog
// snapshot fetched at creation, the selection ledger seeded with the
// default baseline, the adjustable area budget, and (once satisfied)
// the quote.
type DesignSession struct {
	ID               string          `json:"id"`
	State            SessionState    `json:"state"`
	TotalAreaM2      float64         `json:"total_area_m2"`
	ActiveCategoryID string          `json:"active_category_id"`
	Snapshot         CatalogSnapshot `json:"snapshot"`
	Ledger           Ledger          `json:"ledger"`
	Quote            *Quote          `json:"quote,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
