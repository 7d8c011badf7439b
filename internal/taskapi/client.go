package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/clive/todo-tui/internal/task"
)

const (
	// DefaultBaseURL is where the task store listens by default
	DefaultBaseURL = "http://localhost:8080"

	// DefaultTimeout bounds a single store request
	DefaultTimeout = 30 * time.Second

	taskPath  = "/api/task"
	tasksPath = "/api/tasks"
)

// Client talks to the task store's REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a store client. A zero timeout means requests never time out.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log.New(io.Discard),
	}
}

// WithLogger sets the logger used for request outcomes
func (c *Client) WithLogger(logger *log.Logger) *Client {
	if logger != nil {
		c.logger = logger.WithPrefix("taskapi")
	}
	return c
}

// BaseURL returns the store root the client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StatusError is a response with a status other than the one the operation expects
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

type createTaskRequest struct {
	Description string `json:"description"`
}

// CreateTask posts a new task. The description is sent untrimmed.
func (c *Client) CreateTask(ctx context.Context, description string) (task.Task, error) {
	var created task.Task
	err := c.do(ctx, task.OpCreate, http.MethodPost, taskPath, createTaskRequest{Description: description}, http.StatusCreated, &created)
	if err != nil {
		return task.Task{}, err
	}
	if created.ID == "" {
		return task.Task{}, task.Rejected(task.OpCreate, fmt.Errorf("response missing task id"))
	}
	return created, nil
}

// DeleteTask deletes a single task by ID
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, task.OpDeleteOne, http.MethodDelete, taskPath+"/"+url.PathEscape(id), nil, http.StatusOK, nil)
}

// DeleteAllTasks deletes every task in the store
func (c *Client) DeleteAllTasks(ctx context.Context) error {
	return c.do(ctx, task.OpDeleteAll, http.MethodDelete, tasksPath, nil, http.StatusOK, nil)
}

// ListTasks returns all tasks in store order
func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	tasks := make([]task.Task, 0)
	if err := c.do(ctx, task.OpLoad, http.MethodGet, tasksPath, nil, http.StatusOK, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// do executes one request and classifies any failure as a *task.Error.
// Transport failures are KindNetworkUnavailable; anything the store answered
// with the wrong status, or an unreadable body, is a rejection of op.
func (c *Client) do(ctx context.Context, op task.Op, method, path string, body interface{}, want int, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return task.Rejected(op, fmt.Errorf("marshal request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return task.Rejected(op, fmt.Errorf("create request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "op", op, "method", method, "path", path, "error", err)
		return task.Unavailable(op, fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("read response failed", "op", op, "status", resp.StatusCode, "error", err)
		return task.Unavailable(op, fmt.Errorf("read response: %w", err))
	}

	c.logger.Debug("request",
		"op", op,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != want {
		return task.Rejected(op, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))})
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return task.Rejected(op, fmt.Errorf("unmarshal response: %w", err))
		}
	}

	return nil
}

var _ task.Store = (*Client)(nil)
