package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hongik-triple/acnelog_backend/config"
)

const (
	kakaoAuthURL    = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL   = "https://kauth.kakao.com/oauth/token"
	kakaoProfileURL = "https://kapi.kakao.com/v2/user/me"
)

type Kakao struct {
	cfg  config.OAuthProviderConfig
	http *http.Client
}

func NewKakao(cfg config.OAuthProviderConfig) *Kakao {
	return &Kakao{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}}
}

func (k *Kakao) Name() string { return "kakao" }

func (k *Kakao) AuthURL(state string) string {
	params := url.Values{}
	params.Set("client_id", k.cfg.ClientID)
	params.Set("redirect_uri", k.cfg.RedirectURI)
	params.Set("response_type", "code")
	params.Set("state", state)
	return kakaoAuthURL + "?" + params.Encode()
}

func (k *Kakao) Exchange(ctx context.Context, code string) (*Profile, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", k.cfg.ClientID)
	form.Set("client_secret", k.cfg.ClientSecret)
	form.Set("redirect_uri", k.cfg.RedirectURI)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, kakaoTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("kakao: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := k.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakao: token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao: token status %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, fmt.Errorf("kakao: decode token: %w", err)
	}

	return k.fetchProfile(ctx, tok.AccessToken)
}

type kakaoProfile struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

func (k *Kakao) fetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, kakaoProfileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("kakao: build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := k.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakao: profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao: profile status %d", resp.StatusCode)
	}

	var p kakaoProfile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("kakao: decode profile: %w", err)
	}
	if p.KakaoAccount.Email == "" {
		return nil, ErrNoEmail
	}

	return &Profile{
		Provider:        k.Name(),
		ProviderID:      strconv.FormatInt(p.ID, 10),
		Email:           p.KakaoAccount.Email,
		Name:            p.KakaoAccount.Profile.Nickname,
		ProfileImageURL: p.KakaoAccount.Profile.ProfileImageURL,
	}, nil
}
