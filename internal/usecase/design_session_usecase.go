package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"disena_service/internal/domain/design"
	"disena_service/internal/domain/entities"
	"disena_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID     = errors.New("invalid session id")
	ErrSessionNotFound      = errors.New("design session not found")
	ErrCatalogLoad          = errors.New("catalog load failed")
	ErrEmptyCatalog         = errors.New("catalog snapshot is empty")
	ErrInvalidCategoryID    = errors.New("invalid category id")
	ErrInvalidServiceID     = errors.New("invalid service id")
	ErrUnknownCategory      = errors.New("category not in catalog")
	ErrUnknownService       = errors.New("service not in catalog")
	ErrServiceNotInCategory = errors.New("service does not belong to category")
	ErrSessionStateConflict = errors.New("operation not allowed in current session state")
	ErrNotASuggestion       = errors.New("service is not a suggestion candidate")
	ErrQuoteNotAvailable    = errors.New("session has no quote")
	ErrInvalidContactEmail  = errors.New("invalid contact email")
)

// IDesignSessionUseCase exposes the configurator flow.
//
// One session = one visitor assembling a design under an area budget:
//   - CreateSession loads the catalog once and seeds the baseline
//   - ToggleSelection/RemoveSelection/SetBudget mutate while configuring
//   - RequestQuote either produces the quote or routes to suggestions
//   - AcceptSuggestion/DismissSuggestions resolve the suggestion flow
//   - ReopenSession discards a quote and returns to configuring
//   - SendQuote hands the quote to the invoicing collaborator
type IDesignSessionUseCase interface {
	CreateSession(ctx context.Context) (entities.DesignSession, error)
	GetSession(ctx context.Context, id string) (entities.DesignSession, error)
	ToggleSelection(ctx context.Context, id, categoryID, serviceID string) (entities.DesignSession, error)
	RemoveSelection(ctx context.Context, id, categoryID, serviceID string) (entities.DesignSession, error)
	SetBudget(ctx context.Context, id string, totalAreaM2 float64) (entities.DesignSession, design.BudgetAdvisory, error)
	RequestQuote(ctx context.Context, id string) (entities.DesignSession, *design.SuggestionSet, error)
	AcceptSuggestion(ctx context.Context, id, serviceID string) (entities.DesignSession, error)
	DismissSuggestions(ctx context.Context, id string) (entities.DesignSession, error)
	ReopenSession(ctx context.Context, id string) (entities.DesignSession, error)
	SendQuote(ctx context.Context, id, contactEmail string) (string, error)
}

type DesignSessionUseCase struct {
	repo    interfaces.ISessionRepository
	catalog interfaces.ICatalogClient
	invoice interfaces.IInvoiceGateway
}

var _ IDesignSessionUseCase = (*DesignSessionUseCase)(nil)

func NewDesignSessionUseCase(repo interfaces.ISessionRepository, catalog interfaces.ICatalogClient, invoice interfaces.IInvoiceGateway) *DesignSessionUseCase {
	return &DesignSessionUseCase{repo: repo, catalog: catalog, invoice: invoice}
}

func (u *DesignSessionUseCase) CreateSession(ctx context.Context) (entities.DesignSession, error) {
	log.Printf("[design][usecase] create session start")

	snap, err := u.catalog.Load(ctx)
	if err != nil {
		log.Printf("[design][usecase] catalog load failed err=%v", err)
		return entities.DesignSession{}, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	if snap.IsEmpty() {
		log.Printf("[design][usecase] catalog snapshot empty")
		return entities.DesignSession{}, ErrEmptyCatalog
	}

	ledger := entities.NewLedger()
	design.SeedBaseline(ledger, snap)

	now := time.Now().UTC()
	s := entities.DesignSession{
		ID:               uuid.NewString(),
		State:            entities.SessionStateConfiguring,
		TotalAreaM2:      design.MinTotalAreaM2,
		ActiveCategoryID: snap.FirstCategoryID(),
		Snapshot:         snap,
		Ledger:           *ledger,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[design][usecase] session create failed err=%v", err)
		return entities.DesignSession{}, err
	}
	log.Printf("[design][usecase] create session success session_id=%s categories=%d services=%d baseline_entries=%d",
		created.ID, len(snap.Categories), len(snap.Services), len(created.Ledger.Entries))
	return created, nil
}

func (u *DesignSessionUseCase) GetSession(ctx context.Context, id string) (entities.DesignSession, error) {
	return u.loadSession(ctx, id)
}

func (u *DesignSessionUseCase) ToggleSelection(ctx context.Context, id, categoryID, serviceID string) (entities.DesignSession, error) {
	s, categoryID, serviceID, err := u.loadForSelection(ctx, id, categoryID, serviceID)
	if err != nil {
		return entities.DesignSession{}, err
	}
	if s.State != entities.SessionStateConfiguring {
		return entities.DesignSession{}, ErrSessionStateConflict
	}

	on := s.Ledger.Toggle(categoryID, serviceID)
	s.ActiveCategoryID = categoryID
	log.Printf("[design][usecase] toggle session_id=%s category_id=%s service_id=%s selected=%t", s.ID, categoryID, serviceID, on)
	return u.save(ctx, s)
}

func (u *DesignSessionUseCase) RemoveSelection(ctx context.Context, id, categoryID, serviceID string) (entities.DesignSession, error) {
	s, categoryID, serviceID, err := u.loadForSelection(ctx, id, categoryID, serviceID)
	if err != nil {
		return entities.DesignSession{}, err
	}
	if s.State != entities.SessionStateConfiguring {
		return entities.DesignSession{}, ErrSessionStateConflict
	}

	removed := s.Ledger.Remove(categoryID, serviceID)
	log.Printf("[design][usecase] remove session_id=%s category_id=%s service_id=%s removed=%t", s.ID, categoryID, serviceID, removed)
	return u.save(ctx, s)
}

func (u *DesignSessionUseCase) SetBudget(ctx context.Context, id string, totalAreaM2 float64) (entities.DesignSession, design.BudgetAdvisory, error) {
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.DesignSession{}, design.BudgetAdvisoryNone, err
	}
	if s.State != entities.SessionStateConfiguring && s.State != entities.SessionStateSuggesting {
		return entities.DesignSession{}, design.BudgetAdvisoryNone, ErrSessionStateConflict
	}

	clamped, advisory := design.ClampTotalArea(totalAreaM2)
	s.TotalAreaM2 = clamped
	// Editing the budget invalidates any pending suggestion set; the
	// caller re-requests the quote after the edit.
	if s.State == entities.SessionStateSuggesting {
		s.State = entities.SessionStateConfiguring
	}
	log.Printf("[design][usecase] set budget session_id=%s requested=%.2f stored=%.2f advisory=%q", s.ID, totalAreaM2, clamped, advisory)

	saved, err := u.save(ctx, s)
	if err != nil {
		return entities.DesignSession{}, design.BudgetAdvisoryNone, err
	}
	return saved, advisory, nil
}

func (u *DesignSessionUseCase) RequestQuote(ctx context.Context, id string) (entities.DesignSession, *design.SuggestionSet, error) {
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.DesignSession{}, nil, err
	}
	if s.State != entities.SessionStateConfiguring {
		return entities.DesignSession{}, nil, ErrSessionStateConflict
	}

	view := design.ComputeAllocation(&s.Ledger, s.Snapshot, s.TotalAreaM2)
	log.Printf("[design][usecase] quote attempt session_id=%s percent=%d used=%.2f total=%.2f", s.ID, view.PercentComplete, view.AreaUsedTotalM2, view.TotalAreaM2)

	q, err := design.BuildQuote(&s.Ledger, s.Snapshot, view)
	switch {
	case errors.Is(err, design.ErrIncompleteAllocation):
		set := design.Suggest(&s.Ledger, s.Snapshot, view)
		s.State = entities.SessionStateSuggesting
		saved, saveErr := u.save(ctx, s)
		if saveErr != nil {
			return entities.DesignSession{}, nil, saveErr
		}
		log.Printf("[design][usecase] quote incomplete session_id=%s missing=%.2f candidates=%d exhausted=%t", s.ID, set.MissingAreaM2, len(set.Candidates), set.Exhausted)
		return saved, &set, nil
	case errors.Is(err, design.ErrAreaExceeded):
		// Surfaced to the user; the session stays configuring untouched.
		log.Printf("[design][usecase] quote rejected session_id=%s area exceeded used=%.2f total=%.2f", s.ID, view.AreaUsedTotalM2, view.TotalAreaM2)
		return entities.DesignSession{}, nil, err
	case err != nil:
		return entities.DesignSession{}, nil, err
	}

	q.ID = uuid.NewString()
	q.GeneratedAt = time.Now().UTC()
	s.Quote = &q
	s.State = entities.SessionStateQuoted

	saved, err := u.save(ctx, s)
	if err != nil {
		return entities.DesignSession{}, nil, err
	}
	log.Printf("[design][usecase] quote success session_id=%s quote_id=%s line_items=%d total_usd=%.2f", s.ID, q.ID, len(q.LineItems), q.TotalPriceUSD)
	return saved, nil, nil
}

func (u *DesignSessionUseCase) AcceptSuggestion(ctx context.Context, id, serviceID string) (entities.DesignSession, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.DesignSession{}, ErrInvalidServiceID
	}
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.DesignSession{}, err
	}
	if s.State != entities.SessionStateSuggesting {
		return entities.DesignSession{}, ErrSessionStateConflict
	}

	svc, ok := s.Snapshot.ServiceByID(serviceID)
	if !ok {
		return entities.DesignSession{}, ErrUnknownService
	}

	// A filler must have a footprint and must not be a baseline
	// service. Already-selected services stay acceptable: repeat
	// accepts are how multi-unit accumulation happens, and any
	// resulting over-limit or overflow surfaces as an advisory, never
	// as a rejection.
	if design.AreaOf(svc) <= 0 || design.IsBaseline(svc) {
		return entities.DesignSession{}, ErrNotASuggestion
	}

	// Accepting appends: it never removes an existing instance, which is
	// how multi-unit accumulation happens.
	s.Ledger.Append(svc.CategoryID, svc.ID)
	s.State = entities.SessionStateConfiguring
	log.Printf("[design][usecase] suggestion accepted session_id=%s service_id=%s units=%d", s.ID, svc.ID, s.Ledger.CountOf(svc.ID))
	return u.save(ctx, s)
}

func (u *DesignSessionUseCase) DismissSuggestions(ctx context.Context, id string) (entities.DesignSession, error) {
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.DesignSession{}, err
	}
	if s.State != entities.SessionStateSuggesting {
		return entities.DesignSession{}, ErrSessionStateConflict
	}

	s.State = entities.SessionStateConfiguring
	return u.save(ctx, s)
}

func (u *DesignSessionUseCase) ReopenSession(ctx context.Context, id string) (entities.DesignSession, error) {
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.DesignSession{}, err
	}
	if s.State != entities.SessionStateQuoted {
		return entities.DesignSession{}, ErrSessionStateConflict
	}

	// Going back discards the quote; the ledger survives untouched.
	s.Quote = nil
	s.State = entities.SessionStateConfiguring
	log.Printf("[design][usecase] session reopened session_id=%s", s.ID)
	return u.save(ctx, s)
}

func (u *DesignSessionUseCase) SendQuote(ctx context.Context, id, contactEmail string) (string, error) {
	contactEmail = strings.TrimSpace(contactEmail)
	if contactEmail == "" || !strings.Contains(contactEmail, "@") {
		return "", ErrInvalidContactEmail
	}
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return "", err
	}
	if s.State != entities.SessionStateQuoted || s.Quote == nil {
		return "", ErrQuoteNotAvailable
	}

	log.Printf("[design][usecase] send quote start session_id=%s quote_id=%s", s.ID, s.Quote.ID)
	ref, err := u.invoice.SendInvoice(ctx, *s.Quote, contactEmail)
	if err != nil {
		log.Printf("[design][usecase] send quote failed session_id=%s err=%v", s.ID, err)
		return "", err
	}
	log.Printf("[design][usecase] send quote success session_id=%s reference=%s", s.ID, ref)
	return ref, nil
}

func (u *DesignSessionUseCase) loadSession(ctx context.Context, id string) (entities.DesignSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DesignSession{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DesignSession{}, err
	}
	if s.ID == "" {
		return entities.DesignSession{}, ErrSessionNotFound
	}
	return s, nil
}

// loadForSelection validates the (category, service) pair against the
// session snapshot. A dangling reference is a caller bug, not a user
// flow, so it maps to its own sentinel rather than an advisory.
func (u *DesignSessionUseCase) loadForSelection(ctx context.Context, id, categoryID, serviceID string) (entities.DesignSession, string, string, error) {
	categoryID = strings.TrimSpace(categoryID)
	serviceID = strings.TrimSpace(serviceID)
	if categoryID == "" {
		return entities.DesignSession{}, "", "", ErrInvalidCategoryID
	}
	if serviceID == "" {
		return entities.DesignSession{}, "", "", ErrInvalidServiceID
	}

	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.DesignSession{}, "", "", err
	}
	if !s.Snapshot.HasCategory(categoryID) {
		return entities.DesignSession{}, "", "", ErrUnknownCategory
	}
	svc, ok := s.Snapshot.ServiceByID(serviceID)
	if !ok {
		return entities.DesignSession{}, "", "", ErrUnknownService
	}
	if svc.CategoryID != categoryID {
		return entities.DesignSession{}, "", "", ErrServiceNotInCategory
	}
	return s, categoryID, serviceID, nil
}

func (u *DesignSessionUseCase) save(ctx context.Context, s entities.DesignSession) (entities.DesignSession, error) {
	s.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		log.Printf("[design][usecase] session update failed session_id=%s err=%v", s.ID, err)
		return entities.DesignSession{}, err
	}
	return updated, nil
}
