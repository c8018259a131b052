package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/go-resty/resty/v2"
)

// defaultTimeout bounds every request when the config leaves Timeout unset.
const defaultTimeout = 30 * time.Second

// Config holds the settings needed to construct a [Client].
type Config struct {
	// BaseURL is the address of the API server, e.g. "http://localhost:8080".
	// A missing scheme defaults to http.
	BaseURL string

	// Timeout bounds each individual request. Zero means [defaultTimeout].
	Timeout time.Duration
}

// Client is a typed HTTP client for the user API.
//
// The zero value is not usable; construct instances with [New]. A Client is
// safe for concurrent use: the stored bearer token is guarded by a mutex and
// the underlying resty client maintains its own connection pool.
type Client struct {
	http *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// New constructs a Client pointed at cfg.BaseURL.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func New(cfg Config, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := utils.NewHTTPClient()
	httpClient.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{http: httpClient, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent mutating requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Health calls GET /health and returns the reported status.
func (c *Client) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// Version calls GET /version and returns the server build metadata.
func (c *Client) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// Login authenticates with POST /login. On success the issued bearer token is
// stored via SetToken for subsequent mutating calls and also returned to the
// caller. Returns [ErrUnauthorized] (wrapped) when the credentials are
// rejected.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var tokenResponse models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokenResponse); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}

	c.SetToken(tokenResponse.Token)
	return tokenResponse.Token, nil
}

// ListUsers calls GET /users and returns all stored users.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode list users response: %w", err)
	}

	return users, nil
}

// GetUser calls GET /users/{id}. Returns [ErrNotFound] (wrapped) when no user
// has the given id.
func (c *Client) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&user).
		Get(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateUser calls POST /users with the stored bearer token and returns the
// created user as stored by the server, including the assigned id. Returns
// [ErrConflict] (wrapped) when the email is already taken and [ErrBadRequest]
// (wrapped) when validation fails.
func (c *Client) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var createdUser models.User
	if err = json.Unmarshal(resp.Body(), &createdUser); err != nil {
		return models.User{}, fmt.Errorf("decode create user response: %w", err)
	}

	return createdUser, nil
}

// UpdateUser calls PUT /users/{id} with the stored bearer token and returns
// the full updated user. Omitted request fields keep their stored values.
func (c *Client) UpdateUser(ctx context.Context, id int64, request models.UpdateUserRequest) (models.User, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var updatedUser models.User
	if err = json.Unmarshal(resp.Body(), &updatedUser); err != nil {
		return models.User{}, fmt.Errorf("decode update user response: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser calls DELETE /users/{id} with the stored bearer token. Returns
// [ErrNotFound] (wrapped) when no user has the given id.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	resp, err := c.authedRequest(ctx).
		Delete(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
