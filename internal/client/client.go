package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/applytrack/applytrack/internal/model"
)

const defaultRequestTimeout = 30 * time.Second

// APIError is a non-2xx response decoded from the server's uniform
// {msg} envelope.
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Msg
}

// JobInput holds the caller-supplied fields for create and edit calls.
type JobInput struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Status   string `json:"status,omitempty"`
}

// Client drives the API on behalf of the state store. Every network
// call dispatches SetLoading first and exactly one success or error
// action after, so the loading flag never sticks.
type Client struct {
	baseURL  string
	http     *http.Client
	store    *Store
	sessions *SessionFile

	mu    sync.Mutex
	token string
}

// New creates a Client against the given base URL, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string, store *Store, sessions *SessionFile) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: defaultRequestTimeout},
		store:    store,
		sessions: sessions,
	}
}

// Restore loads the persisted session, if any, and applies it to the
// state. Called once at startup.
func (c *Client) Restore() error {
	session, err := c.sessions.Load()
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	c.setToken(session.Token)
	c.store.Dispatch(SetUser{Name: session.Name})
	return nil
}

// Register creates an account and logs the new user in.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	return c.authenticate(ctx, "/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

// Login authenticates an existing user.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *Client) authenticate(ctx context.Context, path string, body map[string]string) error {
	c.store.Dispatch(SetLoading{})

	var resp struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		c.store.Dispatch(RegisterError{})
		return err
	}

	c.setToken(resp.Token)
	if err := c.sessions.Save(&Session{Name: resp.User.Name, Token: resp.Token}); err != nil {
		c.store.Dispatch(RegisterError{})
		return err
	}

	c.store.Dispatch(RegisterSuccess{Name: resp.User.Name})
	return nil
}

// Logout clears the persisted session and resets the state.
func (c *Client) Logout() error {
	err := c.sessions.Clear()
	c.setToken("")
	c.store.Dispatch(LogoutUser{})
	return err
}

// FetchJobs loads the caller's job list. A failure is treated as an
// invalid or expired session and triggers a logout.
func (c *Client) FetchJobs(ctx context.Context) error {
	c.store.Dispatch(SetLoading{})

	var resp struct {
		JobsCount int          `json:"jobsCount"`
		Jobs      []*model.Job `json:"jobs"`
	}
	if err := c.do(ctx, http.MethodGet, "/jobs", nil, &resp); err != nil {
		c.store.Dispatch(FetchJobsError{})
		if logoutErr := c.Logout(); logoutErr != nil {
			return logoutErr
		}
		return err
	}

	c.store.Dispatch(FetchJobsSuccess{Jobs: resp.Jobs})
	return nil
}

// CreateJob creates a job and appends it to the local list.
func (c *Client) CreateJob(ctx context.Context, input JobInput) error {
	c.store.Dispatch(SetLoading{})

	var resp struct {
		Job *model.Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodPost, "/jobs", input, &resp); err != nil {
		c.store.Dispatch(CreateJobError{})
		return err
	}

	c.store.Dispatch(CreateJobSuccess{Job: resp.Job})
	return nil
}

// DeleteJob deletes a job, then re-fetches the full list rather than
// splicing it locally.
func (c *Client) DeleteJob(ctx context.Context, jobID string) error {
	c.store.Dispatch(SetLoading{})

	if err := c.do(ctx, http.MethodDelete, "/jobs/"+jobID, nil, nil); err != nil {
		c.store.Dispatch(DeleteJobError{})
		return err
	}

	return c.FetchJobs(ctx)
}

// FetchSingleJob loads one job into the edit slot.
func (c *Client) FetchSingleJob(ctx context.Context, jobID string) error {
	c.store.Dispatch(SetLoading{})

	var resp struct {
		Job *model.Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodGet, "/jobs/"+jobID, nil, &resp); err != nil {
		c.store.Dispatch(FetchSingleJobError{})
		return err
	}

	c.store.Dispatch(FetchSingleJobSuccess{Job: resp.Job})
	return nil
}

// EditJob updates a job and stores the post-update record in the edit
// slot.
func (c *Client) EditJob(ctx context.Context, jobID string, input JobInput) error {
	c.store.Dispatch(SetLoading{})

	var resp struct {
		Job *model.Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodPatch, "/jobs/"+jobID, input, &resp); err != nil {
		c.store.Dispatch(EditJobError{})
		return err
	}

	c.store.Dispatch(EditJobSuccess{Job: resp.Job})
	return nil
}

// State returns a snapshot of the current client state.
func (c *Client) State() State {
	return c.store.Snapshot()
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// do performs one JSON request. Non-2xx responses are returned as
// *APIError with the server's msg.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Msg string `json:"msg"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &APIError{StatusCode: resp.StatusCode, Msg: envelope.Msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
