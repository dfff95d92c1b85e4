package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"disena_service/internal/domain/entities"
	"disena_service/internal/usecase/interfaces"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

var ErrMissingCatalogBaseURL = errors.New("missing CATALOG_BASE_URL")

// HTTPClient fetches the three catalog collections (categories,
// services, configuration key/values) from the external catalog
// service. Retries live here, in the HTTP layer; callers see a single
// atomic load that either yields a full snapshot or one aggregate
// error.
type HTTPClient struct {
	baseURL string
	http    *retryablehttp.Client
}

var _ interfaces.ICatalogClient = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string) (*HTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingCatalogBaseURL
	}

	c := retryablehttp.NewClient()
	c.RetryMax = 3
	c.RetryWaitMin = 200 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.HTTPClient.Timeout = 10 * time.Second
	c.Logger = nil

	return &HTTPClient{baseURL: baseURL, http: c}, nil
}

func (c *HTTPClient) Load(ctx context.Context) (entities.CatalogSnapshot, error) {
	log.Printf("[catalog][client] load start base_url=%s", c.baseURL)

	var errs []error

	categories, err := c.fetchCategories(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("categories: %w", err))
	}
	services, err := c.fetchServices(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("services: %w", err))
	}
	config, err := c.fetchConfig(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}

	// Atomic load: any failed collection invalidates the whole snapshot.
	if len(errs) > 0 {
		log.Printf("[catalog][client] load failed errs=%d", len(errs))
		return entities.CatalogSnapshot{}, errors.Join(errs...)
	}

	log.Printf("[catalog][client] load success categories=%d services=%d config=%d", len(categories), len(services), len(config))
	return entities.CatalogSnapshot{
		Categories: categories,
		Services:   services,
		Config:     config,
	}, nil
}

func (c *HTTPClient) fetchCategories(ctx context.Context) ([]entities.Category, error) {
	body, err := c.get(ctx, "/categories")
	if err != nil {
		return nil, err
	}
	var out []entities.Category
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) fetchServices(ctx context.Context) ([]entities.Service, error) {
	body, err := c.get(ctx, "/services")
	if err != nil {
		return nil, err
	}
	var out []entities.Service
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// fetchConfig parses the config collection leniently: the remote stores
// values as strings, numbers or booleans depending on who last edited
// the record, so everything is coerced to string.
func (c *HTTPClient) fetchConfig(ctx context.Context) (map[string]string, error) {
	body, err := c.get(ctx, "/config")
	if err != nil {
		return nil, err
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("config: expected array, got %s", parsed.Type)
	}

	out := map[string]string{}
	for _, rec := range parsed.Array() {
		key := rec.Get("key").String()
		if key == "" {
			continue
		}
		out[key] = rec.Get("value").String()
	}
	return out, nil
}

func (c *HTTPClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
