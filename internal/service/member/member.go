// Package member handles OAuth login, sessions and member profiles.
package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hongik-triple/acnelog_backend/internal/repo"
	entdiag "github.com/hongik-triple/acnelog_backend/internal/repo/diagnosis"
	entmember "github.com/hongik-triple/acnelog_backend/internal/repo/member"
	"github.com/hongik-triple/acnelog_backend/internal/skin"
	"github.com/hongik-triple/acnelog_backend/pkg/oauth"
	pasetotoken "github.com/hongik-triple/acnelog_backend/pkg/paseto"
)

const sessionKeyPrefix = "session:"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginResult struct {
	MemberID     uuid.UUID `json:"member_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

type Profile struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Provider        string    `json:"provider"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	SkinType        string    `json:"skin_type,omitempty"`
	LastSurveyedAt  string    `json:"last_surveyed_at,omitempty"`
}

type UpdateProfileRequest struct {
	Name     *string
	SkinType *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	AuthURL(provider, state string) (string, error)
	Login(ctx context.Context, provider, code string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	GetProfile(ctx context.Context, memberID uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, memberID uuid.UUID, req UpdateProfileRequest) (*Profile, error)
	Withdraw(ctx context.Context, memberID uuid.UUID) error
	SessionMember(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db         *repo.Client
	rdb        *goredis.Client
	tokens     *pasetotoken.Manager
	providers  map[string]oauth.Provider
	sessionTTL time.Duration
	log        *slog.Logger
}

func New(
	db *repo.Client,
	rdb *goredis.Client,
	tokens *pasetotoken.Manager,
	providers map[string]oauth.Provider,
	sessionTTL time.Duration,
	log *slog.Logger,
) Service {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &service{
		db:         db,
		rdb:        rdb,
		tokens:     tokens,
		providers:  providers,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

func (s *service) AuthURL(provider, state string) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", ErrUnknownProvider
	}
	return p.AuthURL(state), nil
}

func (s *service) Login(ctx context.Context, provider, code string) (*LoginResult, error) {
	p, ok := s.providers[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}

	profile, err := p.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	m, err := s.upsertMember(ctx, profile)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New()
	if s.rdb != nil {
		key := sessionKeyPrefix + sessionID.String()
		if err := s.rdb.Set(ctx, key, m.ID.String(), s.sessionTTL).Err(); err != nil {
			return nil, fmt.Errorf("store session: %w", err)
		}
	}

	access, err := s.tokens.IssueAccess(m.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(m.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &LoginResult{
		MemberID:     m.ID,
		Name:         m.Name,
		Email:        m.Email,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *service) upsertMember(ctx context.Context, profile *oauth.Profile) (*repo.Member, error) {
	m, err := s.db.Member.Query().
		Where(entmember.Email(profile.Email), entmember.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("find member: %w", err)
		}
		created, err := s.db.Member.Create().
			SetName(profile.Name).
			SetEmail(profile.Email).
			SetProvider(entmember.Provider(profile.Provider)).
			SetProviderID(profile.ProviderID).
			SetProfileImageURL(profile.ProfileImageURL).
			SetLastLoginAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create member: %w", err)
		}
		return created, nil
	}

	updated, err := s.db.Member.UpdateOneID(m.ID).
		SetLastLoginAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update member login: %w", err)
	}
	return updated, nil
}

// Refresh rotates a token pair. The refresh token must verify, be of the
// refresh type, and its session must still exist.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrLoginFailed
	}
	if s.rdb != nil && claims.SessionID != nil {
		if _, err := s.SessionMember(ctx, *claims.SessionID); err != nil {
			return nil, ErrLoginFailed
		}
	}

	m, err := s.db.Member.Query().
		Where(entmember.ID(claims.MemberID), entmember.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrLoginFailed
		}
		return nil, fmt.Errorf("find member: %w", err)
	}

	access, err := s.tokens.IssueAccess(m.ID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(m.ID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &LoginResult{
		MemberID:     m.ID,
		Name:         m.Name,
		Email:        m.Email,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, sessionKeyPrefix+sessionID.String()).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SessionMember resolves a session id to the member it belongs to.
// Returns ErrNotFound for expired or revoked sessions.
func (s *service) SessionMember(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	if s.rdb == nil {
		return uuid.Nil, ErrNotFound
	}
	raw, err := s.rdb.Get(ctx, sessionKeyPrefix+sessionID.String()).Result()
	if err != nil {
		return uuid.Nil, ErrNotFound
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNotFound
	}
	return id, nil
}

func (s *service) GetProfile(ctx context.Context, memberID uuid.UUID) (*Profile, error) {
	m, err := s.db.Member.Query().
		Where(entmember.ID(memberID), entmember.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}

	out := &Profile{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Provider: string(m.Provider),
	}
	if m.ProfileImageURL != nil {
		out.ProfileImageURL = *m.ProfileImageURL
	}
	if m.SkinType != nil {
		out.SkinType = *m.SkinType
	}

	// Most recent survey date, if any.
	last, err := s.db.Diagnosis.Query().
		Where(
			entdiag.MemberID(memberID),
			entdiag.SourceEQ(entdiag.SourceSurvey),
			entdiag.DeletedAtIsNil(),
		).
		Order(entdiag.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if err == nil {
		out.LastSurveyedAt = last.CreatedAt.Format("2006.01.02")
	} else if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("latest survey: %w", err)
	}

	return out, nil
}

func (s *service) UpdateProfile(ctx context.Context, memberID uuid.UUID, req UpdateProfileRequest) (*Profile, error) {
	u := s.db.Member.UpdateOneID(memberID)

	if req.Name != nil {
		u = u.SetName(*req.Name)
	}
	if req.SkinType != nil {
		typ, err := parseSkinType(*req.SkinType)
		if err != nil {
			return nil, err
		}
		u = u.SetSkinType(typ)
	}

	if err := u.Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	return s.GetProfile(ctx, memberID)
}

func parseSkinType(raw string) (string, error) {
	typ, err := skin.Parse(raw)
	if err != nil {
		return "", ErrInvalidSkinType
	}
	return typ.String(), nil
}

func (s *service) Withdraw(ctx context.Context, memberID uuid.UUID) error {
	err := s.db.Member.UpdateOneID(memberID).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("withdraw member: %w", err)
	}
	return nil
}
