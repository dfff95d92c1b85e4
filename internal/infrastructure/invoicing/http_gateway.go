package invoicing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"disena_service/internal/domain/entities"
	"disena_service/internal/usecase/interfaces"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

var ErrMissingInvoiceEndpoint = errors.New("missing INVOICE_ENDPOINT_URL")
var ErrInvoiceGatewayNotConfigured = errors.New("invoice gateway not configured")

// HTTPGateway posts a quote's line items plus the visitor's contact
// email to the external invoicing endpoint. The endpoint owns invoice
// persistence and the follow-up scheduling widget; we only hand the
// quote over and keep its reference id.
type HTTPGateway struct {
	endpoint string
	http     *retryablehttp.Client
	mockMode bool
}

var _ interfaces.IInvoiceGateway = (*HTTPGateway)(nil)

func NewHTTPGateway(endpoint string) (*HTTPGateway, error) {
	if isInvoiceGatewayMockEnabled() {
		log.Printf("[invoice][gateway] mock mode enabled")
		return &HTTPGateway{mockMode: true}, nil
	}

	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		log.Printf("[invoice][gateway] missing INVOICE_ENDPOINT_URL")
		return nil, ErrMissingInvoiceEndpoint
	}

	c := retryablehttp.NewClient()
	c.RetryMax = 2
	c.HTTPClient.Timeout = 15 * time.Second
	c.Logger = nil

	log.Printf("[invoice][gateway] invoice client initialized")
	return &HTTPGateway{endpoint: endpoint, http: c}, nil
}

type invoicePayload struct {
	QuoteID       string                   `json:"quote_id"`
	ContactEmail  string                   `json:"contact_email"`
	LineItems     []entities.QuoteLineItem `json:"line_items"`
	TotalPriceUSD float64                  `json:"total_price_usd"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

func (g *HTTPGateway) SendInvoice(ctx context.Context, q entities.Quote, contactEmail string) (string, error) {
	if g != nil && g.mockMode {
		ref := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[invoice][gateway] mock send success quote_id=%s reference=%s", q.ID, ref)
		return ref, nil
	}
	if g == nil || g.http == nil {
		log.Printf("[invoice][gateway] gateway not configured")
		return "", ErrInvoiceGatewayNotConfigured
	}

	body, err := json.Marshal(invoicePayload{
		QuoteID:       q.ID,
		ContactEmail:  contactEmail,
		LineItems:     q.LineItems,
		TotalPriceUSD: q.TotalPriceUSD,
		GeneratedAt:   q.GeneratedAt,
	})
	if err != nil {
		return "", err
	}

	log.Printf("[invoice][gateway] send start quote_id=%s line_items=%d", q.ID, len(q.LineItems))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		log.Printf("[invoice][gateway] send failed quote_id=%s err=%v", q.ID, err)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[invoice][gateway] send rejected quote_id=%s status=%d", q.ID, resp.StatusCode)
		return "", fmt.Errorf("invoice endpoint: unexpected status %d", resp.StatusCode)
	}

	ref := gjson.GetBytes(raw, "reference").String()
	if ref == "" {
		ref = gjson.GetBytes(raw, "id").String()
	}
	log.Printf("[invoice][gateway] send success quote_id=%s reference=%s", q.ID, ref)
	return ref, nil
}

func isInvoiceGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("INVOICE_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
