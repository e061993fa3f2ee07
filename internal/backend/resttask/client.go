// Package resttask implements the service.Service interface against a plain
// JSON collection endpoint (GET and POST on /task).
package resttask

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tasklist/internal/service"
)

const (
	// DefaultEndpoint is the host the task service is expected on.
	DefaultEndpoint = "http://localhost:3005"

	// CollectionPath is the collection resource path.
	CollectionPath = "/task"

	// ContentType is sent with every create request.
	ContentType = "application/json;charset=utf-8"
)

// Client implements service.Service over HTTP.
type Client struct {
	http *http.Client
	url  string
}

// New creates a client for the given endpoint (scheme and host, optionally
// with a path prefix). An empty endpoint means DefaultEndpoint.
func New(endpoint string) *Client {
	return NewWithHTTPClient(endpoint, http.DefaultClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		http: httpClient,
		url:  strings.TrimRight(endpoint, "/") + CollectionPath,
	}
}

// URL returns the collection URL requests are sent to.
func (c *Client) URL() string {
	return c.url
}

// record is the wire shape of a task.
type record struct {
	ID    flexID `json:"id"`
	Title string `json:"title"`
}

// flexID accepts a JSON string or number. Numeric ids keep their literal
// text, so 3 and "3" both become "3".
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %s", b)
	}
	*f = flexID(n.String())
	return nil
}

func (r record) task() service.Task {
	return service.Task{ID: string(r.ID), Title: r.Title}
}

// ListTasks fetches the full collection.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}

	var records []record
	if err := c.do(req, &records); err != nil {
		return nil, err
	}

	tasks := make([]service.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, r.task())
	}
	return tasks, nil
}

// CreateTask posts a new task and returns the record the endpoint created.
// No idempotency key is sent; repeating the call creates another record.
func (c *Client) CreateTask(ctx context.Context, title string) (service.Task, error) {
	body, err := json.Marshal(struct {
		Title string `json:"title"`
	}{Title: title})
	if err != nil {
		return service.Task{}, fmt.Errorf("encode create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return service.Task{}, fmt.Errorf("build create request: %w", err)
	}
	req.Header.Set("Content-Type", ContentType)

	var created record
	if err := c.do(req, &created); err != nil {
		return service.Task{}, err
	}
	if created.ID == "" {
		return service.Task{}, fmt.Errorf("POST %s: created task has no id: %w", c.url, service.ErrMalformed)
	}
	return created.task(), nil
}

// do sends req and decodes a 2xx JSON body into v.
func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return wrapError(req, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s %s: %d %s: %w", req.Method, req.URL, resp.StatusCode,
			http.StatusText(resp.StatusCode), service.ErrStatus)
	}

	// The whole body must be one JSON value; trailing bytes make it malformed.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return wrapError(req, ctxErr)
		}
		return wrapError(req, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%s %s: %v: %w", req.Method, req.URL, err, service.ErrMalformed)
	}
	return nil
}

// wrapError classifies a transport-level failure.
func wrapError(req *http.Request, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: request timed out: %w", req.Method, req.URL, service.ErrTransport)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: request cancelled: %w", req.Method, req.URL, service.ErrTransport)
	}
	return fmt.Errorf("%s %s: %v: %w", req.Method, req.URL, err, service.ErrTransport)
}
