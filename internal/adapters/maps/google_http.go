package maps

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

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (g *GoogleClient) newRequest(
	ctx context.Context,
	endpoint string,
	params url.Values,
) (*http.Request, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("key", g.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (g *GoogleClient) do(req *http.Request) (*http.Response, error) {
	resp, err := g.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// getJSON issues a single GET bounded by timeout and decodes the body into out.
// Failures are not retried; callers fall back instead.
func (g *GoogleClient) getJSON(
	ctx context.Context,
	endpoint string,
	params url.Values,
	timeout time.Duration,
	out any,
) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := g.newRequest(ctx, endpoint, params)
	if err != nil {
		return err
	}

	resp, err := g.do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

type googleLatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type googleGeometry struct {
	Location *googleLatLng `json:"location"`
}

type googleValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}
