package handlers

import (
	"errors"
	"net/http"

	request "disena_service/internal/adapter/http/dto/request"
	response "disena_service/internal/adapter/http/dto/response"
	"disena_service/internal/domain/design"
	"disena_service/internal/usecase"
	"disena_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// DesignSessionHandler handles HTTP requests for the design
// configurator flow. One session resource per visitor; every response
// embeds the freshly recomputed allocation so the page can render the
// progress bar and warnings without extra round trips.
type DesignSessionHandler struct {
	usecase usecase.IDesignSessionUseCase
}

func NewDesignSessionHandler(uc usecase.IDesignSessionUseCase) *DesignSessionHandler {
	return &DesignSessionHandler{usecase: uc}
}

// CreateSession loads the catalog, seeds the default baseline and
// returns the new session. A failed catalog load is fatal to the
// attempt; the client retries by POSTing again.
func (h *DesignSessionHandler) CreateSession(c *gin.Context) {
	s, err := h.usecase.CreateSession(c.Request.Context())
	if err != nil {
		appErr := mapDesignSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

func (h *DesignSessionHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapDesignSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *DesignSessionHandler) ToggleSelection(c *gin.Context) {
	var payload request.ToggleSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.ToggleSelection(c.Request.Context(), c.Param("session_id"), payload.ResolveCategoryID(), payload.ResolveServiceID())
	if err != nil {
		appErr := mapDesignSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *DesignSessionHandler) RemoveSelection(c *gin.Context) {
	var payload request.RemoveSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.RemoveSelection(c.Request.Context(), c.Param("session_id"), payload.ResolveCategoryID(), payload.ResolveServiceID())
	if err != nil {
		appErr := mapDesignSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *DesignSessionHandler) SetBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, advisory, err := h.usecase.SetBudget(c.Request.Context(), c.Param("session_id"), payload.TotalAreaM2)
	if err != nil {
		appErr := mapDesignSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionWithAdvisory(s, advisory))
}

// RequestQuote either returns the quoted session or, when the budget is
// not exactly satisfied, a 409 carrying the suggestion set.
func (h *DesignSessionHandler) RequestQuote(c *gin.Context) {
	s, suggestions, err := h.usecase.RequestQuote(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapDesignSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if suggestions != nil {
		c.JSON(http.StatusConflict, response.FromSuggestionSet(*suggestions))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *DesignSessionHandler) AcceptSuggestion(c *gin.Context) {
	var payload request.AcceptSuggestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.AcceptSuggestion(c.Request.Context(), c.Param("session_id"), payload.ResolveServiceID())
	if err != nil {
		appErr := mapDesignSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *DesignSessionHandler) DismissSuggestions(c *gin.Context) {
	s, err := h.usecase.DismissSuggestions(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapDesignSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *DesignSessionHandler) ReopenSession(c *gin.Context) {
	s, err := h.usecase.ReopenSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapDesignSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *DesignSessionHandler) SendQuote(c *gin.Context) {
	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	ref, err := h.usecase.SendQuote(c.Request.Context(), c.Param("session_id"), payload.ResolveContactEmail())
	if err != nil {
		appErr := mapDesignSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SendQuoteResponse{Reference: ref, SentTo: payload.ResolveContactEmail()})
}

func mapDesignSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidCategoryID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidContactEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Design session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogLoad), errors.Is(err, usecase.ErrEmptyCatalog):
		return pkg.NewDomainError("CATALOG_UNAVAILABLE", "Catalog service unavailable, retry later", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrUnknownCategory),
		errors.Is(err, usecase.ErrUnknownService),
		errors.Is(err, usecase.ErrServiceNotInCategory):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATALOG_REFERENCE", "Category or service not in catalog", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSessionStateConflict):
		return pkg.NewDomainErrorSimple("SESSION_STATE_CONFLICT", "Operation not allowed in current session state", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotASuggestion):
		return pkg.NewDomainErrorSimple("NOT_A_SUGGESTION", "Service is not a suggestion candidate", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotAvailable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_AVAILABLE", "Session has no quote to send", http.StatusConflict)
	case errors.Is(err, design.ErrAreaExceeded):
		return pkg.NewDomainErrorSimple("AREA_EXCEEDED", "Selected area exceeds the total budget", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
