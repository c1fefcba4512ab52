// Package firebase is a minimal REST client for the Firebase Realtime
// Database. Values are addressed by slash-separated paths and exchanged as
// JSON documents; PATCH merges fields instead of replacing the node.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is the HTTP wrapper for the Realtime Database REST API.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient creates a new database client. baseURL is the database root,
// e.g. "https://myapp-default-rtdb.firebaseio.com". authToken is optional.
func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authToken:  authToken,
		httpClient: &http.Client{},
	}
}

// Get reads the value at path into out. It returns found=false when the node
// does not exist (the API answers 200 with a JSON null body).
func (c *Client) Get(ctx context.Context, path string, out any) (bool, error) {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}
	if isNull(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode value at %s: %w", path, err)
	}
	return true, nil
}

// Put replaces the value at path.
func (c *Client) Put(ctx context.Context, path string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", path, err)
	}
	_, err = c.do(ctx, http.MethodPut, path, body)
	return err
}

// Patch merges the given fields into the node at path without touching
// sibling fields.
func (c *Client) Patch(ctx context.Context, path string, fields any) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal patch for %s: %w", path, err)
	}
	_, err = c.do(ctx, http.MethodPatch, path, body)
	return err
}

// Delete removes the node at path.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

// Push appends value under path with a server-assigned key and returns
// that key.
func (c *Client) Push(ctx context.Context, path string, value any) (string, error) {
	body, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to marshal value for %s: %w", path, err)
	}
	raw, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return "", err
	}

	var resp struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("failed to decode push response for %s: %w", path, err)
	}
	if resp.Name == "" {
		return "", fmt.Errorf("push to %s returned no key", path)
	}
	return resp.Name, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/%s.json", c.baseURL, strings.Trim(path, "/"))
	if c.authToken != "" {
		endpoint += "?auth=" + url.QueryEscape(c.authToken)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request for %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call database %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read database response for %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("database API %s %s error %d: %s", method, path, resp.StatusCode, string(raw))
	}
	return raw, nil
}

func isNull(raw []byte) bool {
	return len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null"
}
