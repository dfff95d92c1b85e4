package request

import "strings"

// ToggleSelectionRequest flips one catalog cell on/off.
type ToggleSelectionRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	ServiceID  string `json:"service_id" binding:"required"`
}

func (r ToggleSelectionRequest) ResolveCategoryID() string {
	return strings.TrimSpace(r.CategoryID)
}

func (r ToggleSelectionRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}

// RemoveSelectionRequest drops the most recent instance of a service
// (undo flows).
type RemoveSelectionRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	ServiceID  string `json:"service_id" binding:"required"`
}

func (r RemoveSelectionRequest) ResolveCategoryID() string {
	return strings.TrimSpace(r.CategoryID)
}

func (r RemoveSelectionRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}

// BudgetRequest edits the session's total area budget. Out-of-range
// values are clamped server-side, not rejected.
type BudgetRequest struct {
	TotalAreaM2 float64 `json:"total_area_m2" binding:"required"`
}

// AcceptSuggestionRequest adds one unit of a suggested service.
type AcceptSuggestionRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

func (r AcceptSuggestionRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}

// SendQuoteRequest dispatches the produced quote to the invoicing
// collaborator.
type SendQuoteRequest struct {
	ContactEmail string `json:"contact_email" binding:"required"`
}

func (r SendQuoteRequest) ResolveContactEmail() string {
	return strings.TrimSpace(r.ContactEmail)
}
