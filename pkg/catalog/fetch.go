package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxErrorBody bounds how much of an error response body is kept.
const maxErrorBody = 4096

// productsPage is the products.json response envelope. Entries stay as raw
// maps so the normalizer can tell a missing field from a zero value.
type productsPage struct {
	Products []map[string]any `json:"products"`
}

// Result is the outcome of a fetch operation. Transport and remote failures
// never surface as the operation's error return: they end the fetch early
// and are recorded in Err, leaving whatever was accumulated in Records.
// Callers choose their own policy for incomplete data.
type Result struct {
	// Records are the normalized records in server delivery order.
	Records []Record

	// Pages is the number of pages fetched and normalized.
	Pages int

	// Err is the transport or remote failure that terminated the fetch
	// early, nil when the fetch ran to completion.
	Err error
}

// Complete reports whether the fetch ran to completion.
func (r *Result) Complete() bool {
	return r.Err == nil
}

// Partial reports whether the fetch failed after accumulating records.
func (r *Result) Partial() bool {
	return r.Err != nil && len(r.Records) > 0
}

// Products fetches one bounded page of records at the given status.
// limit is clamped to MaxPageSize. The returned error carries only
// normalization contract breaches; network conditions land in Result.Err.
func (c *Client) Products(ctx context.Context, limit int, status Status) (*Result, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clampLimit(limit)))
	params.Set("status", string(status))

	return c.fetchOne(ctx, params)
}

// Search fetches one bounded page of records whose titles contain query.
// The title filter is sent on its own; the Admin API's behavior for title
// combined with status is undocumented, so this client does not combine them.
func (c *Client) Search(ctx context.Context, query string, limit int) (*Result, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clampLimit(limit)))
	params.Set("title", query)

	return c.fetchOne(ctx, params)
}

// AllProducts fetches the full catalog at the given status, following the
// Link header continuation token until the server reports no further pages
// or returns an empty page. Records keep the server's delivery order. A
// failure mid-loop ends the fetch with the records accumulated so far.
func (c *Client) AllProducts(ctx context.Context, status Status) (*Result, error) {
	result := &Result{}
	pageToken := ""

	for {
		params := url.Values{}
		params.Set("limit", strconv.Itoa(MaxPageSize))
		params.Set("status", string(status))
		if pageToken != "" {
			params.Set("page_info", pageToken)
		}

		raw, linkHeader, err := c.fetchPage(ctx, params)
		if err != nil {
			c.logger.Warn().
				Err(err).
				Str("class", string(Classify(err))).
				Int("pages_fetched", result.Pages).
				Int("records", len(result.Records)).
				Msg("Fetch ended early")
			result.Err = err
			return result, nil
		}

		if len(raw) == 0 {
			return result, nil
		}

		records, err := normalizePage(raw)
		if err != nil {
			return nil, err
		}

		result.Records = append(result.Records, records...)
		result.Pages++
		catalogRecordsTotal.Add(float64(len(records)))

		token, ok := nextPageToken(linkHeader)
		if !ok {
			c.logger.Debug().
				Int("pages", result.Pages).
				Int("records", len(result.Records)).
				Msg("Pagination exhausted")
			return result, nil
		}
		pageToken = token
	}
}

// fetchOne issues a single request and normalizes the returned page.
func (c *Client) fetchOne(ctx context.Context, params url.Values) (*Result, error) {
	raw, _, err := c.fetchPage(ctx, params)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("class", string(Classify(err))).
			Msg("Fetch failed")
		return &Result{Err: err}, nil
	}

	records, err := normalizePage(raw)
	if err != nil {
		return nil, err
	}

	catalogRecordsTotal.Add(float64(len(records)))
	return &Result{Records: records, Pages: 1}, nil
}

// fetchPage issues one products.json request and decodes the page. The body
// is decoded with json.Number so identifiers and stock counts survive
// without float rounding.
func (c *Client) fetchPage(ctx context.Context, params url.Values) ([]map[string]any, string, error) {
	startTime := time.Now()
	defer func() {
		catalogRequestDuration.Observe(time.Since(startTime).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.productsEndpoint(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("X-Shopify-Access-Token", c.config.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().
		Str("query", req.URL.RawQuery).
		Msg("Executing catalog request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		catalogRequestsTotal.WithLabelValues("transport_error").Inc()
		catalogErrorsTotal.WithLabelValues(string(ErrorClassTransport)).Inc()
		return nil, "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	catalogRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		catalogErrorsTotal.WithLabelValues(string(ErrorClassRemote)).Inc()
		return nil, "", &RemoteError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var page productsPage
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&page); err != nil {
		catalogErrorsTotal.WithLabelValues(string(ErrorClassRemote)).Inc()
		return nil, "", &RemoteError{
			StatusCode: resp.StatusCode,
			Body:       fmt.Sprintf("decode body: %v", err),
		}
	}

	catalogPagesTotal.Inc()
	return page.Products, resp.Header.Get("Link"), nil
}

// normalizePage converts a page of raw entries, preserving entry order.
func normalizePage(raw []map[string]any) ([]Record, error) {
	records := make([]Record, 0, len(raw))
	for _, entry := range raw {
		record, err := NormalizeRecord(entry)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
