package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"radsafe/internal/models"
)

// ErrRemoteUnavailable covers every way the optional profile service can
// fail: unreachable, timed out, non-2xx, or an undecodable body. It is
// always swallowed by callers on best-effort paths and never shown to the
// user.
var ErrRemoteUnavailable = errors.New("profile service unavailable")

const defaultRequestTimeout = 3 * time.Second

// RemoteProfile is the profile service's view of a user.
type RemoteProfile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profilePhoto"`
	Phone        string `json:"phone"`
}

// Client talks to the optional authentication/profile REST service. A
// client with an empty base URL is disabled: every call reports
// ErrRemoteUnavailable and the core keeps functioning on the local store
// alone.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
}

func (client *Client) Enabled() bool {
	return client.baseURL != ""
}

// FetchProfile retrieves the remote record for a user id. A 404 or any
// transport problem maps to ErrRemoteUnavailable.
func (client *Client) FetchProfile(ctx context.Context, id string) (RemoteProfile, error) {
	if !client.Enabled() || id == "" {
		return RemoteProfile{}, ErrRemoteUnavailable
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+"/profile/"+id, nil)
	if err != nil {
		return RemoteProfile{}, ErrRemoteUnavailable
	}

	response, err := client.http.Do(request)
	if err != nil {
		return RemoteProfile{}, ErrRemoteUnavailable
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return RemoteProfile{}, ErrRemoteUnavailable
	}

	remote := RemoteProfile{}
	if err := json.NewDecoder(response.Body).Decode(&remote); err != nil {
		return RemoteProfile{}, ErrRemoteUnavailable
	}
	return remote, nil
}

// MirrorProfile pushes a local profile update to the remote service. The
// session layer fires this in the background and only logs the outcome.
func (client *Client) MirrorProfile(user models.UserRecord) error {
	if !client.Enabled() || user.ID == "" {
		return ErrRemoteUnavailable
	}

	payload := RemoteProfile{
		Name:         user.Name,
		Email:        user.Email,
		ProfilePhoto: user.ProfilePhoto,
		Phone:        user.Phone,
	}
	return client.post(fmt.Sprintf("/profile/%s", user.ID), payload)
}

// MirrorRegistration announces a fresh signup to the remote service, the
// original client's hybrid register call. Best effort like the profile
// mirror.
func (client *Client) MirrorRegistration(user models.UserRecord) error {
	if !client.Enabled() {
		return ErrRemoteUnavailable
	}

	payload := map[string]string{
		"name":     user.Name,
		"email":    user.Email,
		"password": user.Password,
	}
	return client.post("/register", payload)
}

func (client *Client) post(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return ErrRemoteUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRequestTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return ErrRemoteUnavailable
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.http.Do(request)
	if err != nil {
		return ErrRemoteUnavailable
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return ErrRemoteUnavailable
	}
	return nil
}
