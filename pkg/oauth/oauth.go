// Package oauth holds the Kakao and Google login flows. Both providers
// follow the same authorization-code exchange; only the endpoints and
// profile payloads differ.
package oauth

import (
	"context"
	"errors"
)

// Profile is the provider-agnostic identity the member service registers.
type Profile struct {
	Provider        string
	ProviderID      string
	Email           string
	Name            string
	ProfileImageURL string
}

// Provider exchanges an authorization code for a member profile.
type Provider interface {
	Name() string
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*Profile, error)
}

var ErrNoEmail = errors.New("oauth: provider returned no email")

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
