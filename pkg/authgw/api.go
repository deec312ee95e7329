package authgw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/manyalawy/ballers-app/pkg/session"
)

// API is the backend auth service boundary. Implementations translate the
// three logical auth calls plus token refresh into network requests and
// normalize their failures into the package error taxonomy.
type API interface {
	// SendCode asks the backend to email a one-time code. The code itself
	// is dispatched out-of-band; there is no local side effect.
	SendCode(ctx context.Context, email string) error

	// VerifyCode exchanges an emailed code for a session.
	VerifyCode(ctx context.Context, email, code string) (*session.Session, error)

	// RefreshSession exchanges a refresh token for a new session.
	RefreshSession(ctx context.Context, refreshToken string) (*session.Session, error)

	// SignOut invalidates the session server-side.
	SignOut(ctx context.Context, accessToken string) error
}

// Client is the HTTP implementation of API.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption configures a Client during construction.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates an auth API client for the given backend base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// sessionResponse is the backend's token payload.
type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// apiError is the backend's error payload.
type apiError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (c *Client) SendCode(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.post(ctx, "/auth/otp", "", body, nil)
}

func (c *Client) VerifyCode(ctx context.Context, email, code string) (*session.Session, error) {
	body := map[string]string{"email": email, "code": code, "type": "email"}

	var resp sessionResponse
	if err := c.post(ctx, "/auth/verify", "", body, &resp); err != nil {
		return nil, err
	}
	return resp.toSession()
}

func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*session.Session, error) {
	body := map[string]string{"refresh_token": refreshToken}

	var resp sessionResponse
	if err := c.post(ctx, "/auth/token", "", body, &resp); err != nil {
		return nil, err
	}
	return resp.toSession()
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.post(ctx, "/auth/logout", accessToken, nil, nil)
}

// post issues a JSON POST and decodes the response into out when non-nil.
// Transport failures become ErrNetwork; backend rejections are classified
// from the status code and error payload.
func (c *Client) post(ctx context.Context, path, bearer string, body, out any) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var backendErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&backendErr)
		return classify(resp.StatusCode, backendErr)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Join(ErrNetwork, fmt.Errorf("failed to decode response: %w", err))
		}
	}

	return nil
}

// classify maps a backend rejection to the package error taxonomy.
func classify(status int, backendErr apiError) error {
	switch backendErr.Code {
	case "otp_expired":
		return ErrCodeExpired
	case "otp_invalid":
		return ErrCodeInvalid
	case "over_email_send_rate_limit":
		return ErrRateLimited
	}

	switch status {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrCodeInvalid
	case http.StatusGone:
		return ErrCodeExpired
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidRequest
	default:
		return fmt.Errorf("%w: backend returned status %d", ErrNetwork, status)
	}
}

func (r *sessionResponse) toSession() (*session.Session, error) {
	userID, err := uuid.Parse(r.User.ID)
	if err != nil {
		return nil, errors.Join(ErrNetwork, fmt.Errorf("backend returned invalid user id: %w", err))
	}

	return &session.Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(r.ExpiresIn) * time.Second),
		User:         session.User{ID: userID, Email: r.User.Email},
	}, nil
}

var _ API = (*Client)(nil)
