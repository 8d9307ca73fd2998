// Package testutil provides testing utilities for the catalog client.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
)

// PageFixture defines one page served by the mock Admin API.
type PageFixture struct {
	// Token is the page_info value that selects this page; the empty
	// string selects the first page.
	Token string

	// Body is the products.json response body.
	Body string

	// NextToken, when set, emits a Link header whose rel="next" directive
	// carries it as the page_info parameter.
	NextToken string

	// StatusCode overrides the 200 default.
	StatusCode int
}

// MockShopify is a configurable mock Shopify Admin API server.
type MockShopify struct {
	server *httptest.Server
	mu     sync.RWMutex
	pages  map[string]PageFixture

	// Tracking
	RequestCount int
	Queries      []url.Values
	LastHeader   http.Header
}

// NewMockShopify creates a new mock Admin API server serving products.json.
func NewMockShopify() *MockShopify {
	mock := &MockShopify{
		pages: make(map[string]PageFixture),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.Queries = append(mock.Queries, r.URL.Query())
		mock.LastHeader = r.Header.Clone()
		mock.mu.Unlock()

		if !strings.HasSuffix(r.URL.Path, "/products.json") {
			http.NotFound(w, r)
			return
		}

		mock.mu.RLock()
		page, exists := mock.pages[r.URL.Query().Get("page_info")]
		mock.mu.RUnlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if !exists {
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{"products": []}`)
			return
		}

		if page.NextToken != "" {
			w.Header().Set("Link", mock.linkHeader(page.NextToken))
		}

		status := page.StatusCode
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)

		if page.Body != "" {
			fmt.Fprint(w, page.Body)
		}
	}))

	return mock
}

// linkHeader builds a realistic Link header with a rel="previous" directive
// ahead of rel="next", so token extraction is exercised against the full
// directive grammar.
func (m *MockShopify) linkHeader(nextToken string) string {
	base := m.server.URL + "/admin/api/2023-10/products.json"
	return fmt.Sprintf(`<%s?limit=250&page_info=prev999>; rel="previous", <%s?limit=250&page_info=%s>; rel="next"`,
		base, base, nextToken)
}

// URL returns the mock server URL.
func (m *MockShopify) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockShopify) Close() {
	m.server.Close()
}

// Reset clears configured pages and tracking state.
func (m *MockShopify) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages = make(map[string]PageFixture)
	m.RequestCount = 0
	m.Queries = nil
	m.LastHeader = nil
}

// SetPages configures the page sequence served by the mock.
func (m *MockShopify) SetPages(pages ...PageFixture) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages = make(map[string]PageFixture, len(pages))
	for _, page := range pages {
		m.pages[page.Token] = page
	}
}

// SetFirstPage configures a single-page response body.
func (m *MockShopify) SetFirstPage(body string) {
	m.SetPages(PageFixture{Body: body})
}

// SetError makes the first page respond with the given status and body.
func (m *MockShopify) SetError(statusCode int, body string) {
	m.SetPages(PageFixture{StatusCode: statusCode, Body: body})
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockShopify) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// QueryForRequest returns the query parameters of request n (0-based).
func (m *MockShopify) QueryForRequest(n int) url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if n < 0 || n >= len(m.Queries) {
		return nil
	}
	return m.Queries[n]
}

// ProductEntry renders a minimal valid raw entry with one variant.
func ProductEntry(id int64, title, price string, quantity int) string {
	return fmt.Sprintf(`{
		"id": %d,
		"title": %q,
		"handle": %q,
		"vendor": "Acme",
		"product_type": "Widget",
		"status": "active",
		"variants": [{"id": %d, "price": %q, "inventory_quantity": %d}]
	}`, id, title, strings.ToLower(strings.ReplaceAll(title, " ", "-")), id*10, price, quantity)
}
