package response

import (
	"time"

	"disena_service/internal/domain/design"
	"disena_service/internal/domain/entities"
)

// SessionResponse is the full configurator view returned by every
// session endpoint: catalog, current selections, recomputed allocation
// and any advisories. The allocation is always derived fresh from the
// persisted ledger; nothing here is stored.
type SessionResponse struct {
	SessionID        string                    `json:"session_id"`
	State            string                    `json:"state"`
	TotalAreaM2      float64                   `json:"total_area_m2"`
	ActiveCategoryID string                    `json:"active_category_id"`
	Categories       []entities.Category       `json:"categories"`
	Services         []entities.Service        `json:"services"`
	Selections       []entities.SelectionEntry `json:"selections"`
	Allocation       design.AllocationView     `json:"allocation"`
	Verdict          design.Validation         `json:"verdict"`
	BudgetAdvisory   string                    `json:"budget_advisory,omitempty"`
	Quote            *QuoteResponse            `json:"quote,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

func FromSession(s entities.DesignSession) SessionResponse {
	view := design.ComputeAllocation(&s.Ledger, s.Snapshot, s.TotalAreaM2)
	res := SessionResponse{
		SessionID:        s.ID,
		State:            string(s.State),
		TotalAreaM2:      s.TotalAreaM2,
		ActiveCategoryID: s.ActiveCategoryID,
		Categories:       s.Snapshot.Categories,
		Services:         s.Snapshot.Services,
		Selections:       s.Ledger.Entries,
		Allocation:       view,
		Verdict:          view.Verdict(),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if s.Quote != nil {
		q := FromQuote(*s.Quote)
		res.Quote = &q
	}
	return res
}

func FromSessionWithAdvisory(s entities.DesignSession, advisory design.BudgetAdvisory) SessionResponse {
	res := FromSession(s)
	res.BudgetAdvisory = string(advisory)
	return res
}

type QuoteResponse struct {
	QuoteID       string                   `json:"quote_id"`
	LineItems     []entities.QuoteLineItem `json:"line_items"`
	TotalPriceUSD float64                  `json:"total_price_usd"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:       q.ID,
		LineItems:     q.LineItems,
		TotalPriceUSD: q.TotalPriceUSD,
		GeneratedAt:   q.GeneratedAt,
	}
}

// SuggestionsResponse is the 409 body of a quote attempt with an unmet
// budget: the filler candidates, or the two remediations when nothing
// fits.
type SuggestionsResponse struct {
	Code          string               `json:"code"`
	MissingAreaM2 float64              `json:"missing_area_m2"`
	Candidates    []entities.Service   `json:"candidates"`
	Exhausted     bool                 `json:"exhausted"`
	Remediations  []design.Remediation `json:"remediations,omitempty"`
}

func FromSuggestionSet(set design.SuggestionSet) SuggestionsResponse {
	code := "INCOMPLETE_ALLOCATION"
	if set.Exhausted {
		code = "SUGGESTIONS_EXHAUSTED"
	}
	return SuggestionsResponse{
		Code:          code,
		MissingAreaM2: set.MissingAreaM2,
		Candidates:    set.Candidates,
		Exhausted:     set.Exhausted,
		Remediations:  set.Remediations,
	}
}

type SendQuoteResponse struct {
	Reference string `json:"reference"`
	SentTo    string `json:"sent_to"`
}
