// internal/adapters/reviewapi/client.go
package reviewapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"review_portal/internal/adapters/observability"
	"review_portal/internal/domain"
)

const service = "reviews_api"

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int, timeout time.Duration) (*Client, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return nil, fmt.Errorf("API base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", base)
	}
	if rps <= 0 {
		rps = 10
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (c *Client) BaseURL() string { return c.base }

// ---- Public API ----

func (c *Client) SubmitReview(ctx context.Context, s domain.Submission) (domain.Receipt, error) {
	var out domain.Receipt
	err := c.do(ctx, "submit", http.MethodPost, c.base+"/reviews", s, &out)
	return out, err
}

func (c *Client) ListReviews(ctx context.Context, businessID string, f domain.ListFilter) ([]domain.Review, error) {
	u := fmt.Sprintf("%s/businesses/%s/reviews", c.base, url.PathEscape(businessID))
	q := url.Values{}
	if s := strings.ToLower(strings.TrimSpace(f.Sentiment)); s != "" && s != "all" {
		q.Set("sentiment", s)
	}
	if cat := strings.TrimSpace(f.Category); cat != "" {
		q.Set("category", cat)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	var out []domain.Review
	if err := c.do(ctx, "list", http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Review{}
	}
	return out, nil
}

func (c *Client) GetStats(ctx context.Context, businessID string) (domain.Stats, error) {
	var out domain.Stats
	u := fmt.Sprintf("%s/businesses/%s/stats", c.base, url.PathEscape(businessID))
	return out, c.do(ctx, "stats", http.MethodGet, u, nil, &out)
}

// ---- Internals ----

// do performs one request: no retries. Transport failures and undecodable
// success bodies become *domain.TransportError; non-2xx becomes *domain.RequestError.
func (c *Client) do(ctx context.Context, op, method, u string, in, out any) error {
	start := time.Now()
	status, err := c.roundTrip(ctx, op, method, u, in, out)
	observability.ObserveExternal(service, op, status, time.Since(start))
	return err
}

func (c *Client) roundTrip(ctx context.Context, op, method, u string, in, out any) (int, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return 0, &domain.TransportError{Op: op, Endpoint: c.base, Err: err}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, fmt.Errorf("%s: build request: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "review-portal/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, &domain.TransportError{Op: op, Endpoint: c.base, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return resp.StatusCode, &domain.RequestError{Op: op, Status: resp.StatusCode, Detail: detailOf(b)}
	}

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty response body")
		}
		return resp.StatusCode, &domain.TransportError{Op: op, Endpoint: c.base, Err: fmt.Errorf("decode response: %w", err)}
	}
	return resp.StatusCode, nil
}

// detailOf extracts the "detail" field of an error body. FastAPI validation
// errors carry a list of {"msg": ...} objects instead of a string.
func detailOf(b []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(b, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if m := strings.TrimSpace(it.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
