package cloudstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the shared JSON-document endpoint used as an ad-hoc
// cross-device store. The endpoint is unauthenticated and unreliable by
// contract: GET returns the current document, POST replaces it, and any
// failure is a hard failure for that sync attempt only.
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a cloud-store client for the given document URL.
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Fetch retrieves the current shared document. A document that was never
// initialized comes back with empty slices, not an error.
func (c *Client) Fetch(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("cloudstore: GET %s failed: %v", c.url, err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("cloudstore: GET %s returned status %d", c.url, resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrTransport, resp.StatusCode, string(body))
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode document: %v", ErrInvalidResponse, err)
	}

	c.log.Info("cloudstore: fetched document with %d registrations, %d overrides",
		len(doc.Registrations), len(doc.Overrides))
	return &doc, nil
}

// Store replaces the shared document. Last POST wins.
func (c *Client) Store(ctx context.Context, doc *Document) error {
	doc.UpdatedAt = time.Now().UnixMilli()

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal document: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("cloudstore: POST %s failed: %v", c.url, err)
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("cloudstore: POST %s returned status %d", c.url, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrTransport, resp.StatusCode, string(body))
	}

	c.log.Info("cloudstore: stored document with %d registrations, %d overrides",
		len(doc.Registrations), len(doc.Overrides))
	return nil
}
