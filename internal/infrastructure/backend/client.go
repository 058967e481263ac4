package backend

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

	"obradash/pkg"

	"go.uber.org/zap"
)

var ErrUnexpectedResponse = errors.New("unexpected non-JSON response from backend")

// TokenSource yields the bearer token for the request being made. An empty
// token means the request goes out without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Client is the gateway to the construction backend REST API.
//
// Error contract:
//   - transport failures return *pkg.NetworkError
//   - non-2xx responses return *pkg.APIError whose message is the JSON "error"
//     field, else the raw text body, else pkg.DefaultAPIErrorMessage
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := method + " " + path
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &pkg.NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("[backend][client] request failed", zap.String("op", op), zap.Error(err))
		return &pkg.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &pkg.NetworkError{Op: op, Err: err}
	}
	c.log.Debug("[backend][client] response",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &pkg.APIError{Status: resp.StatusCode, Message: errorMessage(raw, isJSON)}
	}
	if out == nil {
		return nil
	}
	if !isJSON {
		if s, ok := out.(*string); ok {
			*s = string(raw)
			return nil
		}
		if len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		if !json.Valid(raw) {
			return fmt.Errorf("%s: %w", op, ErrUnexpectedResponse)
		}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func errorMessage(raw []byte, isJSON bool) string {
	if isJSON {
		var body struct {
			Error any `json:"error"`
		}
		if err := json.Unmarshal(raw, &body); err == nil {
			if s, ok := body.Error.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
		return pkg.DefaultAPIErrorMessage
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return pkg.DefaultAPIErrorMessage
}

func filterQuery(pairs ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if v := strings.TrimSpace(pairs[i+1]); v != "" {
			q.Set(pairs[i], v)
		}
	}
	return q
}

func idPath(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}
