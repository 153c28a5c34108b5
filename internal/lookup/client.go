// Copyright (c) 2026 Book Alchemy. All rights reserved.

/*
Package lookup resolves a book title to an ISBN through the Open Library
search API.

The call is synchronous and never retried. Every transport, status or decoding
failure is converted into an EXTERNAL_SERVICE_ERROR so handlers can answer with
a clean 502 instead of crashing.
*/
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/apperr"
)

// ServiceName names the upstream in client-facing errors.
const ServiceName = "Open Library"

// Fetcher resolves a title to an ISBN. found is false when the catalog has no
// matching document or the match carries no ISBN.
type Fetcher interface {
	FetchISBN(ctx context.Context, title string) (isbn string, found bool, err error)
}

// Client queries {baseURL}/search.json.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient builds a client sending at most rps requests per second. A zero
// timeout means the request is bounded only by its context; rps <= 0 disables
// the limit.
func NewClient(baseURL, userAgent string, timeout time.Duration, rps float64) *Client {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// searchResponse is the subset of search.json this client reads.
type searchResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		ISBN []string `json:"isbn"`
	} `json:"docs"`
}

// FetchISBN returns the first ISBN of the first document matching title.
func (c *Client) FetchISBN(ctx context.Context, title string) (string, bool, error) {
	query := url.Values{
		"q":      {title},
		"fields": {"isbn"},
		"limit":  {"1"},
	}
	u := c.baseURL + "/search.json?" + query.Encode()

	var res searchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return "", false, apperr.ExternalService(ServiceName, err)
	}

	if len(res.Docs) == 0 || len(res.Docs[0].ISBN) == 0 {
		return "", false, nil
	}

	return res.Docs[0].ISBN[0], true, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode search response: %w", err)
	}
	return nil
}
