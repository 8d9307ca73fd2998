// Package catalog provides the Shopify Admin API client with record
// normalization, cursor-based pagination, and error classification.
package catalog

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for catalog client operations.
var (
	catalogRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_requests_total",
		Help: "Total catalog requests by HTTP status",
	}, []string{"status"})

	catalogRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_request_duration_seconds",
		Help:    "Catalog request duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	})

	catalogErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_errors_total",
		Help: "Total catalog fetch errors by class",
	}, []string{"class"})

	catalogPagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_pages_fetched_total",
		Help: "Total catalog pages fetched",
	})

	catalogRecordsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_records_fetched_total",
		Help: "Total catalog records fetched and normalized",
	})
)

// MaxPageSize is the largest page size the Admin API accepts.
const MaxPageSize = 250

// DefaultAPIVersion is the Admin API version used when none is configured.
const DefaultAPIVersion = "2023-10"

// Status filters catalog entries by lifecycle state.
type Status string

const (
	// StatusActive selects entries visible in the storefront.
	StatusActive Status = "active"

	// StatusArchived selects entries removed from sale.
	StatusArchived Status = "archived"

	// StatusDraft selects unpublished entries.
	StatusDraft Status = "draft"
)

// Client is the Shopify Admin API catalog client. Credentials are read-only
// for the client's lifetime; fetch operations share no state.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// ShopName is the store subdomain (without .myshopify.com).
	ShopName string

	// AccessToken is the private app access token, sent on every request
	// via the X-Shopify-Access-Token header.
	AccessToken string

	// APIVersion selects the Admin API version (default: DefaultAPIVersion).
	APIVersion string

	// BaseURL overrides the store URL, mainly for testing against a local
	// server. When empty it is derived from ShopName.
	BaseURL string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(shopName, accessToken string) Config {
	return Config{
		ShopName:    shopName,
		AccessToken: accessToken,
		APIVersion:  DefaultAPIVersion,
		Timeout:     30 * time.Second,
	}
}

// New creates a new catalog client.
func New(cfg Config) (*Client, error) {
	if cfg.ShopName == "" && cfg.BaseURL == "" {
		return nil, fmt.Errorf("shop name is required")
	}

	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}

	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.myshopify.com", cfg.ShopName)
	}

	logger := log.With().Str("component", "catalog-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}, nil
}

// productsEndpoint returns the products.json URL for the configured store.
func (c *Client) productsEndpoint() string {
	return fmt.Sprintf("%s/admin/api/%s/products.json", c.config.BaseURL, c.config.APIVersion)
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
