package supabase

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cvhub-backend/pkg/apperror"
)

// AdminClient talks to the GoTrue admin API with the project's service role key.
type AdminClient struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewAdminClient(supabaseURL, serviceRoleKey string) *AdminClient {
	return &AdminClient{
		baseURL:    strings.TrimRight(supabaseURL, "/"),
		serviceKey: serviceRoleKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type createUserRequest struct {
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	EmailConfirm bool           `json:"email_confirm"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

type errorResponse struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (e errorResponse) text() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	default:
		return e.ErrorDescription
	}
}

// CreateUser registers an auth user and returns its id. GoTrue rejections
// (duplicate email, weak password) surface as BadRequest with GoTrue's message.
func (a *AdminClient) CreateUser(ctx context.Context, email, password string, metadata map[string]any) (string, error) {
	body, err := json.Marshal(createUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: false,
		UserMetadata: metadata,
	})
	if err != nil {
		return "", apperror.Internal(err)
	}

	resp, err := a.do(ctx, http.MethodPost, "/auth/v1/admin/users", body)
	if err != nil {
		return "", apperror.Upstream("Registration service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return "", apperror.Upstream("Registration service unavailable", fmt.Errorf("gotrue status %d", resp.StatusCode))
	}
	if resp.StatusCode >= 400 {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.text()
		if msg == "" {
			msg = "Registration failed"
		}
		return "", apperror.BadRequest(msg)
	}

	var user struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", apperror.Upstream("Failed to parse registration response", err)
	}
	if user.ID == "" {
		return "", apperror.Upstream("Failed to parse registration response", fmt.Errorf("empty user id"))
	}
	return user.ID, nil
}

// DeleteUser removes an auth user. A missing user is not an error.
func (a *AdminClient) DeleteUser(ctx context.Context, id string) error {
	resp, err := a.do(ctx, http.MethodDelete, "/auth/v1/admin/users/"+id, nil)
	if err != nil {
		return fmt.Errorf("delete auth user: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete auth user: gotrue status %d", resp.StatusCode)
	}
	return nil
}

// IsServiceKey reports whether key is this project's service role key.
func (a *AdminClient) IsServiceKey(key string) bool {
	return a.serviceKey != "" && subtle.ConstantTimeCompare([]byte(key), []byte(a.serviceKey)) == 1
}

func (a *AdminClient) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", a.serviceKey)
	req.Header.Set("Authorization", "Bearer "+a.serviceKey)
	return a.httpClient.Do(req)
}
