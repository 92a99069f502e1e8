// Package client provides a thin HTTP client for the ecycle API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"syscall"
)

// Client is a thin HTTP client for the ecycle API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Body)
}

// FormFile is a file part in a multipart request.
type FormFile struct {
	Field    string
	Filename string
	Data     []byte
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, dst)
}

func (c *Client) post(ctx context.Context, path string, body, dst any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, dst)
}

func (c *Client) put(ctx context.Context, path string, body, dst any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, dst)
}

func (c *Client) patch(ctx context.Context, path string, body, dst any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, dst)
}

// postForm sends a multipart form. Repeated fields keep their order.
func (c *Client) postForm(
	ctx context.Context,
	path string,
	fields map[string][]string,
	files []FormFile,
	dst any,
) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			if err := w.WriteField(name, v); err != nil {
				return fmt.Errorf("writing field %s: %w", name, err)
			}
		}
	}
	for _, f := range files {
		fw, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return fmt.Errorf("creating file part: %w", err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return fmt.Errorf("writing file part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, &buf, w.FormDataContentType(), dst)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, dst any) error {
	if body == nil {
		return c.do(ctx, method, path, nil, "", dst)
	}
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(data), "application/json", dst)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body io.Reader,
	contentType string,
	dst any,
) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return fmt.Errorf("API server not running at %s", c.baseURL)
		}
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if dst == nil || len(respBody) == 0 {
		return nil
	}
	if raw, ok := dst.(*[]byte); ok {
		*raw = respBody
		return nil
	}
	if err := json.Unmarshal(respBody, dst); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func isConnectionRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) ||
		strings.Contains(err.Error(), "connection refused")
}
