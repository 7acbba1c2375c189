// Package api is a thin HTTP client for the TodoKeeper backend. It keeps the
// bearer token and the authenticated user id from the last successful login
// and uses them on task calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrUnavailable means the server could not be reached or answered 503.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means credentials or the stored token were rejected.
	ErrUnauthorized = errors.New("unauthorized")
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
	userID  string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// IsLoggedIn reports whether a login succeeded in this session.
func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

type User struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type Task struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Completed     bool      `json:"completed"`
	ScheduledDate *string   `json:"scheduled_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TaskDraft struct {
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	User
	Token string `json:"token"`
}

type apiError struct {
	Detail string `json:"detail"`
}

// Signup registers a new account. The password buffer is not retained.
func (c *Client) Signup(ctx context.Context, email string, password []byte) (*User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", credentials{Email: email, Password: string(password)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and stores the bearer token for subsequent task calls.
func (c *Client) Login(ctx context.Context, email string, password []byte) (*User, error) {
	var out loginResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", credentials{Email: email, Password: string(password)}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.Token
	c.userID = out.UserID
	return &out.User, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := c.do(ctx, http.MethodGet, c.tasksPath(""), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddTask(ctx context.Context, draft TaskDraft) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPost, c.tasksPath(""), draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleTask(ctx context.Context, taskID string) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPatch, c.tasksPath(taskID)+"/complete", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodDelete, c.tasksPath(taskID), nil, nil)
}

func (c *Client) tasksPath(taskID string) string {
	p := "/api/" + c.userID + "/tasks"
	if taskID != "" {
		p += "/" + taskID
	}
	return p
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusError(resp *http.Response) error {
	var detail apiError
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil || detail.Detail == "" {
		detail.Detail = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail.Detail)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, detail.Detail)
	default:
		return errors.New(detail.Detail)
	}
}
