// Package pricing supplies per-store price quotes for the product detail
// panel. The client talks to an optional backend; without one it serves
// deterministic mock quotes so the rendering contract stays identical when a
// live feed is swapped in.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 8 * time.Second

// Quote statuses understood by the panel.
const (
	StatusReady   = "ready"
	StatusLoading = "loading"
	StatusEmpty   = "empty"
)

// Quote is one store's offer for a product. Price is nil while the store is
// still being polled or has no listing.
type Quote struct {
	Store         string
	LogoText      string
	Price         *int64
	Status        string
	ShippingLabel string
	UpdatedLabel  string
	URL           string
}

// Client fetches quotes from the price feed backend. When baseURL is empty
// the client serves mock data.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a price feed client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Quotes returns the store-by-store offers for a product, sorted the way the
// panel displays them.
func (c *Client) Quotes(ctx context.Context, productID string) ([]Quote, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, fmt.Errorf("pricing: missing product id")
	}
	if c == nil || c.baseURL == "" {
		return fakeQuotes(productID), nil
	}

	endpoint, err := url.JoinPath(c.baseURL, "prices", productID)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("pricing: quotes status %d: %s", resp.StatusCode, drainError(resp.Body))
	}

	var payload quotesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	quotes := make([]Quote, 0, len(payload.Quotes))
	for _, q := range payload.Quotes {
		quotes = append(quotes, q.toQuote())
	}
	return quotes, nil
}

func (q quotePayload) toQuote() Quote {
	status := strings.TrimSpace(strings.ToLower(q.Status))
	switch status {
	case StatusReady, StatusLoading, StatusEmpty:
	default:
		status = StatusEmpty
	}
	return Quote{
		Store:         strings.TrimSpace(q.Store),
		LogoText:      strings.TrimSpace(q.LogoText),
		Price:         q.Price,
		Status:        status,
		ShippingLabel: strings.TrimSpace(q.ShippingLabel),
		UpdatedLabel:  strings.TrimSpace(q.UpdatedLabel),
		URL:           strings.TrimSpace(q.URL),
	}
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}

type quotesPayload struct {
	Quotes []quotePayload `json:"quotes"`
}

type quotePayload struct {
	Store         string `json:"store"`
	LogoText      string `json:"logoText"`
	Price         *int64 `json:"price"`
	Status        string `json:"status"`
	ShippingLabel string `json:"shippingLabel"`
	UpdatedLabel  string `json:"updatedAt"`
	URL           string `json:"url"`
}
