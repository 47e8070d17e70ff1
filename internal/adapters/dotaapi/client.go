// Package dotaapi is a thin client for the Dota 2 web API division
// leaderboard endpoint.
package dotaapi

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

const (
	defaultBase    = "https://www.dota2.com/webapi/ILeaderboard"
	defaultTimeout = 30 * time.Second
)

// Client issues requests against the leaderboard web API.
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a client with a bounded per-call timeout.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: defaultBase,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// DivisionLeaderboard fetches the ranked list for one division. The variant
// selects the leaderboard kind; the upstream default is 0.
func (c *Client) DivisionLeaderboard(ctx context.Context, division string, variant int) (*Division, error) {
	q := url.Values{}
	q.Set("division", division)
	q.Set("leaderboard", strconv.Itoa(variant))

	var dto divisionDTO
	if err := c.getJSON(ctx, "/GetDivisionLeaderboard/v0001", q, &dto); err != nil {
		return nil, err
	}

	d := &Division{
		TimePosted:            dto.TimePosted,
		NextScheduledPostTime: dto.NextScheduledPostTime,
		Entries:               make([]Entry, 0, len(dto.Leaderboard)),
	}
	for _, e := range dto.Leaderboard {
		d.Entries = append(d.Entries, Entry(e))
	}
	return d, nil
}

// getJSON builds the URL, performs the request and decodes the body.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("dotaapi request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("dotaapi http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("dotaapi decode: %w", err)
	}
	return nil
}
