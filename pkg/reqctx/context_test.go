package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type testClaims struct {
	memberID  uuid.UUID
	sessionID *uuid.UUID
	tokenType string
	expired   bool
}

func (c *testClaims) GetMemberID() uuid.UUID   { return c.memberID }
func (c *testClaims) GetSessionID() *uuid.UUID { return c.sessionID }
func (c *testClaims) GetTokenType() string     { return c.tokenType }
func (c *testClaims) IsExpired() bool          { return c.expired }

func TestClaimsRoundTrip(t *testing.T) {
	memberID := uuid.New()
	ctx := WithClaims(context.Background(), &testClaims{memberID: memberID, tokenType: "access"})

	claims := ClaimsFromContext(ctx)
	if claims == nil {
		t.Fatal("claims not found in context")
	}
	if claims.GetMemberID() != memberID {
		t.Errorf("member id = %s, want %s", claims.GetMemberID(), memberID)
	}

	got, found := MemberIDFromContext(ctx)
	if !found || got != memberID {
		t.Errorf("MemberIDFromContext = %s, %v", got, found)
	}
}

func TestClaimsFromContext_Empty(t *testing.T) {
	if ClaimsFromContext(context.Background()) != nil {
		t.Error("expected nil claims from empty context")
	}
	if _, found := MemberIDFromContext(context.Background()); found {
		t.Error("expected no member id from empty context")
	}
}

func TestIsAuthenticated(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want bool
	}{
		{
			name: "no claims",
			ctx:  context.Background(),
			want: false,
		},
		{
			name: "valid claims",
			ctx:  WithClaims(context.Background(), &testClaims{memberID: uuid.New()}),
			want: true,
		},
		{
			name: "expired claims",
			ctx:  WithClaims(context.Background(), &testClaims{memberID: uuid.New(), expired: true}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthenticated(tt.ctx); got != tt.want {
				t.Errorf("IsAuthenticated = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequestMetaRoundTrip(t *testing.T) {
	meta := &RequestMeta{
		RequestID:   "req-1",
		ClientIP:    "10.0.0.1",
		UserAgent:   "test-agent",
		RequestedAt: time.Now(),
	}
	ctx := WithRequestMeta(context.Background(), meta)

	got, found := RequestMetaFromContext(ctx)
	if !found || got.RequestID != "req-1" {
		t.Fatalf("RequestMetaFromContext = %+v, %v", got, found)
	}
	if RequestIDFromContext(ctx) != "req-1" {
		t.Error("RequestIDFromContext mismatch")
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("expected empty request id from empty context")
	}
}
