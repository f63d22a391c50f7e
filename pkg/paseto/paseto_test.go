package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		Mode:     ModeLocal,
		Issuer:   "acnelog-test",
		Audience: "acnelog-app",
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestIssueAndVerify(t *testing.T) {
	mgr := newTestManager(t)
	memberID := uuid.New()
	sessionID := uuid.New()

	token, err := mgr.IssueAccess(memberID, &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("type = %q, want access", claims.Type)
	}
	if claims.MemberID != memberID {
		t.Errorf("member id = %s, want %s", claims.MemberID, memberID)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Error("session id mismatch")
	}
	if claims.IsExpired() {
		t.Error("fresh token reported as expired")
	}
}

func TestIssueRefresh(t *testing.T) {
	mgr := newTestManager(t)

	token, err := mgr.IssueRefresh(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueRefresh failed: %v", err)
	}

	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("type = %q, want refresh", claims.Type)
	}
	if claims.SessionID != nil {
		t.Error("session id must be absent when not issued")
	}
}

func TestVerify_WrongKey(t *testing.T) {
	issuer := newTestManager(t)
	verifier := newTestManager(t) // different symmetric key

	token, err := issuer.IssueAccess(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("token encrypted with a different key must not verify")
	}
}

func TestVerify_Garbage(t *testing.T) {
	mgr := newTestManager(t)
	if _, err := mgr.Verify("v4.local.not-a-real-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestNew_Validation(t *testing.T) {
	keys := NewLocalKeys()

	if _, err := New(Config{Mode: ModeLocal, Audience: "a"}, keys); err == nil {
		t.Error("missing issuer must fail")
	}
	if _, err := New(Config{Mode: ModeLocal, Issuer: "i"}, keys); err == nil {
		t.Error("missing audience must fail")
	}
	if _, err := New(Config{Mode: ModePublic, Issuer: "i", Audience: "a"}, keys); err == nil {
		t.Error("mode mismatch with keys must fail")
	}
}

func TestLoadKeys(t *testing.T) {
	sym := NewLocalKeys().Symmetric.ExportHex()
	keys, err := LoadKeys(KeyMaterial{Mode: ModeLocal, SymmetricHex: sym})
	if err != nil {
		t.Fatalf("LoadKeys local failed: %v", err)
	}
	if keys.Symmetric == nil || keys.Symmetric.ExportHex() != sym {
		t.Error("symmetric key did not round-trip")
	}

	pair := NewPublicKeys()
	keys, err = LoadKeys(KeyMaterial{Mode: ModePublic, SecretHex: pair.Secret.ExportHex()})
	if err != nil {
		t.Fatalf("LoadKeys public failed: %v", err)
	}
	if keys.Public == nil || keys.Public.ExportHex() != pair.Public.ExportHex() {
		t.Error("public key must be derived from the secret key")
	}

	// Verify-only deployments carry just the public half.
	keys, err = LoadKeys(KeyMaterial{Mode: ModePublic, PublicHex: pair.Public.ExportHex()})
	if err != nil {
		t.Fatalf("LoadKeys verify-only failed: %v", err)
	}
	if keys.Secret != nil {
		t.Error("verify-only key set must carry no secret key")
	}

	if _, err := LoadKeys(KeyMaterial{Mode: ModeLocal}); err == nil {
		t.Error("local mode without a key must fail")
	}
	if _, err := LoadKeys(KeyMaterial{Mode: ModePublic}); err == nil {
		t.Error("public mode without keys must fail")
	}
	if _, err := LoadKeys(KeyMaterial{Mode: "paserk"}); err == nil {
		t.Error("unknown mode must fail")
	}
}

func TestDefaultTTLs(t *testing.T) {
	mgr := newTestManager(t)

	token, err := mgr.IssueAccess(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}
	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt)
	if ttl != 15*time.Minute {
		t.Errorf("default access TTL = %v, want 15m", ttl)
	}
}
