package taskstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is the HTTP wrapper for the task record store REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new task store HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ListTasks lists tasks for an owner via GET /api/v1/tasks.
func (c *Client) ListTasks(ctx context.Context, ownerID string, completed *bool, limit int) ([]taskDTO, error) {
	q := url.Values{}
	q.Set("owner_id", ownerID)
	if completed != nil {
		q.Set("completed", strconv.FormatBool(*completed))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var listResp struct {
		Tasks []taskDTO `json:"tasks"`
	}
	if err := c.get(ctx, "/api/v1/tasks?"+q.Encode(), &listResp); err != nil {
		return nil, err
	}
	return listResp.Tasks, nil
}

// GetTask fetches a single task by id via GET /api/v1/tasks/{id}.
func (c *Client) GetTask(ctx context.Context, ownerID, id string) (taskDTO, error) {
	q := url.Values{}
	q.Set("owner_id", ownerID)

	var dto taskDTO
	err := c.get(ctx, fmt.Sprintf("/api/v1/tasks/%s?%s", url.PathEscape(id), q.Encode()), &dto)
	return dto, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build task store request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &StoreAPIError{StatusCode: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return &StoreAPIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode task store response: %w", err)
	}
	return nil
}

// StoreAPIError is a failed reply from the record store. StatusCode 0 means
// the store was unreachable.
type StoreAPIError struct {
	StatusCode int
	Body       string
}

func (e *StoreAPIError) Error() string {
	return fmt.Sprintf("task store API error %d: %s", e.StatusCode, e.Body)
}

// taskDTO is the record store's wire representation of a task.
type taskDTO struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
	Completed   bool    `json:"completed"`
	DueAt       *string `json:"due_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}
