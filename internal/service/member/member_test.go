package member

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hongik-triple/acnelog_backend/internal/repo"
	"github.com/hongik-triple/acnelog_backend/internal/repo/enttest"
	entmember "github.com/hongik-triple/acnelog_backend/internal/repo/member"
	"github.com/hongik-triple/acnelog_backend/pkg/oauth"
	pasetotoken "github.com/hongik-triple/acnelog_backend/pkg/paseto"
)

type stubProvider struct {
	profile *oauth.Profile
	err     error
}

func (s *stubProvider) Name() string                { return "kakao" }
func (s *stubProvider) AuthURL(state string) string { return "https://auth.example/?state=" + state }

func (s *stubProvider) Exchange(ctx context.Context, code string) (*oauth.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

type fixture struct {
	db  *repo.Client
	svc Service
}

func newFixture(t *testing.T, providers map[string]oauth.Provider) *fixture {
	t.Helper()

	db := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { db.Close() })

	tokens, err := pasetotoken.New(pasetotoken.Config{
		Mode:     pasetotoken.ModeLocal,
		Issuer:   "acnelog-test",
		Audience: "acnelog-app",
	}, pasetotoken.NewLocalKeys())
	if err != nil {
		t.Fatalf("build token manager: %v", err)
	}

	svc := New(db, nil, tokens, providers, time.Hour, slog.Default())
	return &fixture{db: db, svc: svc}
}

func kakaoProfile() *oauth.Profile {
	return &oauth.Profile{
		Provider:        "kakao",
		ProviderID:      "kakao-42",
		Email:           "minji@example.com",
		Name:            "민지",
		ProfileImageURL: "https://img/profile.jpg",
	}
}

func TestAuthURL(t *testing.T) {
	f := newFixture(t, map[string]oauth.Provider{"kakao": &stubProvider{}})

	url, err := f.svc.AuthURL("kakao", "xyz")
	if err != nil {
		t.Fatalf("AuthURL failed: %v", err)
	}
	if url != "https://auth.example/?state=xyz" {
		t.Errorf("url = %q", url)
	}

	if _, err := f.svc.AuthURL("github", "xyz"); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestLogin_CreatesMember(t *testing.T) {
	f := newFixture(t, map[string]oauth.Provider{"kakao": &stubProvider{profile: kakaoProfile()}})

	res, err := f.svc.Login(context.Background(), "kakao", "auth-code")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if res.AccessToken == "" || res.RefreshToken == "" {
		t.Error("login must issue both tokens")
	}

	m, err := f.db.Member.Get(context.Background(), res.MemberID)
	if err != nil {
		t.Fatalf("load member: %v", err)
	}
	if m.Email != "minji@example.com" {
		t.Errorf("email = %q", m.Email)
	}
	if m.Provider != entmember.ProviderKakao {
		t.Errorf("provider = %q", m.Provider)
	}
	if m.LastLoginAt == nil {
		t.Error("last_login_at must be set on first login")
	}
}

func TestLogin_ReusesExistingMember(t *testing.T) {
	f := newFixture(t, map[string]oauth.Provider{"kakao": &stubProvider{profile: kakaoProfile()}})

	first, err := f.svc.Login(context.Background(), "kakao", "code-1")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := f.svc.Login(context.Background(), "kakao", "code-2")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if first.MemberID != second.MemberID {
		t.Error("same email must map to the same member")
	}

	n, err := f.db.Member.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("%d members after repeat login, want 1", n)
	}
}

func TestLogin_ExchangeFailure(t *testing.T) {
	f := newFixture(t, map[string]oauth.Provider{
		"kakao": &stubProvider{err: errors.New("invalid grant")},
	})

	if _, err := f.svc.Login(context.Background(), "kakao", "bad-code"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("expected ErrLoginFailed, got %v", err)
	}
}

func TestRefresh(t *testing.T) {
	f := newFixture(t, map[string]oauth.Provider{"kakao": &stubProvider{profile: kakaoProfile()}})

	res, err := f.svc.Login(context.Background(), "kakao", "code")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	rotated, err := f.svc.Refresh(context.Background(), res.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if rotated.MemberID != res.MemberID {
		t.Error("refresh must keep the member identity")
	}
	if rotated.AccessToken == "" || rotated.RefreshToken == "" {
		t.Error("refresh must issue a full pair")
	}

	// Access tokens are not accepted as refresh tokens.
	if _, err := f.svc.Refresh(context.Background(), res.AccessToken); !errors.Is(err, ErrLoginFailed) {
		t.Errorf("expected ErrLoginFailed for access token, got %v", err)
	}
	if _, err := f.svc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrLoginFailed) {
		t.Errorf("expected ErrLoginFailed for garbage, got %v", err)
	}
}

func TestRefresh_WithdrawnMember(t *testing.T) {
	f := newFixture(t, map[string]oauth.Provider{"kakao": &stubProvider{profile: kakaoProfile()}})

	res, err := f.svc.Login(context.Background(), "kakao", "code")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := f.svc.Withdraw(context.Background(), res.MemberID); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if _, err := f.svc.Refresh(context.Background(), res.RefreshToken); !errors.Is(err, ErrLoginFailed) {
		t.Errorf("expected ErrLoginFailed after withdrawal, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t, map[string]oauth.Provider{"kakao": &stubProvider{profile: kakaoProfile()}})

	res, err := f.svc.Login(context.Background(), "kakao", "code")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	name := "민지2"
	st := "oily" // case-insensitive
	profile, err := f.svc.UpdateProfile(context.Background(), res.MemberID, UpdateProfileRequest{
		Name:     &name,
		SkinType: &st,
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if profile.Name != "민지2" {
		t.Errorf("name = %q", profile.Name)
	}
	if profile.SkinType != "OILY" {
		t.Errorf("skin type = %q, want OILY", profile.SkinType)
	}

	bogus := "SEBORRHEIC"
	if _, err := f.svc.UpdateProfile(context.Background(), res.MemberID, UpdateProfileRequest{SkinType: &bogus}); !errors.Is(err, ErrInvalidSkinType) {
		t.Errorf("expected ErrInvalidSkinType, got %v", err)
	}
}

func TestWithdraw(t *testing.T) {
	f := newFixture(t, map[string]oauth.Provider{"kakao": &stubProvider{profile: kakaoProfile()}})

	res, err := f.svc.Login(context.Background(), "kakao", "code")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := f.svc.Withdraw(context.Background(), res.MemberID); err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}

	// Withdrawn members are invisible to profile reads.
	if _, err := f.svc.GetProfile(context.Background(), res.MemberID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after withdrawal, got %v", err)
	}

	// The row survives as a soft delete.
	m, err := f.db.Member.Get(context.Background(), res.MemberID)
	if err != nil {
		t.Fatalf("load member row: %v", err)
	}
	if m.DeletedAt == nil {
		t.Error("withdrawal must set deleted_at")
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	f := newFixture(t, nil)

	if _, err := f.svc.GetProfile(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
