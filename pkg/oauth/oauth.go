// Package oauth talks to the external OAuth provider used for social login.
//
// The flow implemented here is the server side of the authorization-code
// grant: the SPA sends us the code, we exchange it for an access token and
// fetch the user profile.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"casamento/pkg/config"
	"casamento/pkg/logger"
)

// Config carries the provider endpoints and credentials.
type Config struct {
	Provider     string
	TokenURL     string
	UserInfoURL  string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Timeout      time.Duration
}

// Service is the provider client.
type Service struct {
	config *Config
	client *resty.Client
}

// Profile is the provider-agnostic identity we keep.
type Profile struct {
	Provider   string `json:"-"`
	ProviderID string `json:"sub"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	AvatarURL  string `json:"picture"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ErrNotConfigured is returned when the provider credentials are missing.
var ErrNotConfigured = errors.New("oauth: provider not configured")

// NewService builds the provider client; returns nil when not configured so
// the caller can disable social login.
func NewService(config *Config) *Service {
	if config == nil || config.ClientID == "" || config.ClientSecret == "" {
		return nil
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &Service{
		config: config,
		client: client,
	}
}

// NewServiceFromConfig builds the client from the auth.oauth configuration
// keys. Returns nil when the provider credentials are not set.
func NewServiceFromConfig() *Service {
	return NewService(&Config{
		Provider:     config.Get("auth.oauth.provider", "oauth"),
		TokenURL:     config.GetString("auth.oauth.token_url"),
		UserInfoURL:  config.GetString("auth.oauth.userinfo_url"),
		ClientID:     config.GetString("auth.oauth.client_id"),
		ClientSecret: config.GetString("auth.oauth.client_secret"),
		RedirectURL:  config.GetString("auth.oauth.redirect_url"),
	})
}

// ExchangeCode trades an authorization code for an access token.
func (s *Service) ExchangeCode(ctx context.Context, code string) (string, error) {
	if s == nil {
		return "", ErrNotConfigured
	}

	var token tokenResponse
	var apiErr errorResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "authorization_code",
			"code":          code,
			"client_id":     s.config.ClientID,
			"client_secret": s.config.ClientSecret,
			"redirect_uri":  s.config.RedirectURL,
		}).
		SetResult(&token).
		SetError(&apiErr).
		Post(s.config.TokenURL)
	if err != nil {
		logger.ErrorString("OAuth", "ExchangeCode", err.Error())
		return "", fmt.Errorf("oauth: token exchange failed: %w", err)
	}

	if resp.IsError() {
		logger.ErrorString("OAuth", "ExchangeCode", apiErr.Error+": "+apiErr.ErrorDescription)
		return "", fmt.Errorf("oauth: provider rejected the code: %s", apiErr.Error)
	}

	if token.AccessToken == "" {
		return "", errors.New("oauth: empty access token")
	}
	return token.AccessToken, nil
}

// FetchProfile loads the user profile behind an access token.
func (s *Service) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	if s == nil {
		return nil, ErrNotConfigured
	}

	var profile Profile

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&profile).
		Get(s.config.UserInfoURL)
	if err != nil {
		logger.ErrorString("OAuth", "FetchProfile", err.Error())
		return nil, fmt.Errorf("oauth: userinfo request failed: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("oauth: userinfo returned %d", resp.StatusCode())
	}

	if profile.Email == "" {
		return nil, errors.New("oauth: provider returned no e-mail")
	}
	profile.Provider = s.config.Provider
	return &profile, nil
}

// HealthCheck verifies the provider endpoint is reachable.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s == nil {
		return ErrNotConfigured
	}
	_, err := s.client.R().SetContext(ctx).Head(s.config.UserInfoURL)
	return err
}
