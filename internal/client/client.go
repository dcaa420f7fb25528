package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck-api/internal/api"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// ErrNotLoggedIn is returned when an authenticated call is attempted with no
// session present.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrSessionNotLoaded is returned when the session store has not been
// hydrated yet; the caller cannot distinguish logged-in from logged-out
// until Load has run.
var ErrSessionNotLoaded = errors.New("session not loaded")

// APIError represents a non-success response from the server, carrying the
// HTTP status and the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client is an HTTP client for the Taskdeck API. It attaches the bearer
// token from its session store to task requests and keeps the store
// up to date across login, refresh, and logout.
//
// The client never refreshes proactively: a request made with an expired
// access token fails with a 401 until Refresh is called.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   SessionStore
}

// New creates a Client for the given server base URL.
func New(baseURL string, sessions SessionStore) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		sessions:   sessions,
	}
}

// Register creates a new account and stores the returned session.
func (c *Client) Register(ctx context.Context, email, name, password string) (*Session, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, map[string]string{
		"email":    email,
		"name":     name,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return c.storeAuth(resp)
}

// Login authenticates and stores the returned session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return c.storeAuth(resp)
}

// Logout acknowledges the logout with the server and clears the stored
// session. The server holds no session state, so discarding the tokens
// locally is what actually ends the session.
func (c *Client) Logout(ctx context.Context) error {
	var ack map[string]any
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, &ack); err != nil {
		return err
	}
	return c.sessions.Clear()
}

// Refresh exchanges the stored refresh token for a new access token and
// updates the session. The refresh token itself is unchanged.
func (c *Client) Refresh(ctx context.Context) error {
	session, err := c.currentSession()
	if err != nil {
		return err
	}
	if session.RefreshToken == "" {
		return ErrNotLoggedIn
	}

	var resp api.RefreshTokenResponse
	err = c.do(ctx, http.MethodPost, "/auth/refresh", nil, map[string]string{
		"refreshToken": session.RefreshToken,
	}, &resp)
	if err != nil {
		return err
	}

	session.AccessToken = resp.AccessToken
	return c.sessions.Set(session)
}

// ListTasks fetches one page of the user's tasks.
func (c *Client) ListTasks(ctx context.Context, params store.ListParams) (*api.TaskListResponse, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	var resp api.TaskListResponse
	if err := c.doAuthed(ctx, http.MethodGet, "/tasks", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTask fetches a single task by ID.
func (c *Client) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := c.doAuthed(ctx, http.MethodGet, "/tasks/"+id, nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task with the given title and optional description.
func (c *Client) CreateTask(ctx context.Context, title string, description *string) (*domain.Task, error) {
	var task domain.Task
	body := api.CreateTaskRequest{Title: title, Description: description}
	if err := c.doAuthed(ctx, http.MethodPost, "/tasks", nil, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update; nil fields are left unchanged.
func (c *Client) UpdateTask(ctx context.Context, id string, update api.UpdateTaskRequest) (*domain.Task, error) {
	var task domain.Task
	if err := c.doAuthed(ctx, http.MethodPatch, "/tasks/"+id, nil, update, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task by ID.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	var ack map[string]any
	return c.doAuthed(ctx, http.MethodDelete, "/tasks/"+id, nil, nil, &ack)
}

// ToggleTask advances a task one step along the status cycle.
func (c *Client) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := c.doAuthed(ctx, http.MethodPost, "/tasks/"+id+"/toggle", nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// currentSession returns the hydrated session or the appropriate sentinel.
func (c *Client) currentSession() (Session, error) {
	session, hydrated := c.sessions.Session()
	if !hydrated {
		return Session{}, ErrSessionNotLoaded
	}
	return session, nil
}

// storeAuth persists the session carried by an auth response.
func (c *Client) storeAuth(resp api.AuthResponse) (*Session, error) {
	session := Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User: &UserInfo{
			ID:    resp.User.ID,
			Email: resp.User.Email,
			Name:  resp.User.Name,
		},
	}
	if err := c.sessions.Set(session); err != nil {
		return nil, err
	}
	return &session, nil
}

// doAuthed performs a request with the session's bearer token attached.
func (c *Client) doAuthed(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out interface{},
) error {
	session, err := c.currentSession()
	if err != nil {
		return err
	}
	if !session.LoggedIn() {
		return ErrNotLoggedIn
	}
	return c.doWithToken(ctx, method, path, query, body, out, session.AccessToken)
}

// do performs an unauthenticated request.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out interface{},
) error {
	return c.doWithToken(ctx, method, path, query, body, out, "")
}

func (c *Client) doWithToken(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out interface{},
	token string,
) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		message := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			message = errResp.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
