package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/calvine/marketplace-mcp/internal/domain/offer"
	portcatalog "github.com/calvine/marketplace-mcp/internal/port/catalog"
)

var _ portcatalog.Source = (*Client)(nil)

const defaultTimeout = 10 * time.Second

// Client fetches the candidate offer list from the upstream marketplace API.
// It reports failures to its caller; the fallback decision lives in the
// catalog service, not here.
type Client struct {
	baseURL  string
	apiKey   string
	campaign string
	http     *http.Client
}

func NewClient(baseURL, apiKey, campaign string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		campaign: campaign,
		http:     &http.Client{Timeout: timeout},
	}
}

// upstreamResponse is the marketplace API envelope. Pagination and campaign
// metadata are present on the wire but unused here.
type upstreamResponse struct {
	Offers json.RawMessage `json:"offers"`
}

// Fetch performs one GET against the marketplace endpoint. A response whose
// offers field is missing or not a list is treated as an empty list — that
// is a data-shape anomaly, not a failure.
func (c *Client) Fetch(ctx context.Context) ([]offer.Offer, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse marketplace url: %w", err)
	}
	q := u.Query()
	q.Set("campaign", c.campaign)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build marketplace request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marketplace request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("marketplace responded %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read marketplace body: %w", err)
	}

	var envelope upstreamResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode marketplace body: %w", err)
	}

	if len(envelope.Offers) == 0 {
		slog.WarnContext(ctx, "marketplace response missing offers field, treating as empty")
		return []offer.Offer{}, nil
	}

	var offers []offer.Offer
	if err := json.Unmarshal(envelope.Offers, &offers); err != nil {
		slog.WarnContext(ctx, "marketplace offers field is not a list, treating as empty", "error", err)
		return []offer.Offer{}, nil
	}
	return offers, nil
}
