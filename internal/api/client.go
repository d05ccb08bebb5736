// Package api wraps the shop backend REST API. Each resource gets a thin
// typed wrapper over the shared client; paths and JSON shapes follow the
// backend contract byte for byte.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/platansad/storefront/internal/config"
)

var (
	ErrRequestFailed   = errors.New("backend request failed")
	ErrResponseInvalid = errors.New("backend response invalid")
	ErrUnauthorized    = errors.New("backend rejected credentials")
	ErrNotFound        = errors.New("backend resource not found")
)

// TokenSource supplies the admin bearer token for authenticated calls.
// An empty return means no token is attached.
type TokenSource func() string

// Client is the shared backend HTTP client.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// NewClient creates a backend client from configuration.
func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// SetTokenSource wires the admin session token supplier. Admin wrappers
// attach the token on every call; public wrappers never do.
func (c *Client) SetTokenSource(source TokenSource) {
	c.token = source
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, dest interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: marshal request: %v", ErrRequestFailed, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if authed && c.token != nil {
		if token := strings.TrimSpace(c.token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrResponseInvalid, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest interface{}, authed bool) error {
	return c.do(ctx, http.MethodGet, path, query, nil, dest, authed)
}

func (c *Client) postJSON(ctx context.Context, path string, body, dest interface{}, authed bool) error {
	return c.do(ctx, http.MethodPost, path, nil, body, dest, authed)
}

func (c *Client) putJSON(ctx context.Context, path string, body, dest interface{}, authed bool) error {
	return c.do(ctx, http.MethodPut, path, nil, body, dest, authed)
}

func (c *Client) deleteJSON(ctx context.Context, path string, dest interface{}, authed bool) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, dest, authed)
}

// postMultipart uploads a single file field, used by the media library.
func (c *Client) postMultipart(ctx context.Context, path, field, filename string, file io.Reader, dest interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.token != nil {
		if token := strings.TrimSpace(c.token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrResponseInvalid, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		detail := readErrorDetail(resp.Body)
		if detail != "" {
			return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, detail)
		}
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
}

// readErrorDetail pulls the FastAPI-style {"detail": "..."} message if present.
func readErrorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Detail)
}
