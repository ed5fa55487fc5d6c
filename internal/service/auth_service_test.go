package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"summer-success/tracker/config"
	"summer-success/tracker/internal/dto"
	"summer-success/tracker/pkg/jwt"
)

// ── Mock TokenBlacklist ──

type mockBlacklist struct {
	entries map[string]time.Duration
	err     error
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{entries: make(map[string]time.Duration)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.entries[jti] = ttl
	return nil
}

// ── helpers ──

func setupTestAuthService(t *testing.T, password string, blacklist TokenBlacklist) (AuthService, *jwt.Manager) {
	t.Helper()
	cfg := &config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-tests",
		AccessTokenTTL: 2 * time.Hour,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		cfg.ParentPasswordHash = string(hash)
	}
	jwtMgr := jwt.NewManager(cfg)
	return NewAuthService(cfg, jwtMgr, blacklist, zap.NewNop()), jwtMgr
}

// ═══════════════════════════════════════════════════════════
// Login
// ═══════════════════════════════════════════════════════════

func TestAuthService_Login_Success(t *testing.T) {
	svc, jwtMgr := setupTestAuthService(t, "summer2025", nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Password: "summer2025"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ExpiresIn != 7200 {
		t.Errorf("expected expires_in 7200, got %d", resp.ExpiresIn)
	}

	claims, err := jwtMgr.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token must parse: %v", err)
	}
	if claims.Subject != jwt.SubjectParent || claims.ID == "" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService(t, "summer2025", nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Password: "winter"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_NotConfigured(t *testing.T) {
	svc, _ := setupTestAuthService(t, "", nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Password: "anything"})
	if !errors.Is(err, ErrAuthNotConfigured) {
		t.Errorf("expected ErrAuthNotConfigured, got %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Logout
// ═══════════════════════════════════════════════════════════

func TestAuthService_Logout_Blacklists(t *testing.T) {
	bl := newMockBlacklist()
	svc, _ := setupTestAuthService(t, "pw", bl)

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ttl, ok := bl.entries["jti-1"]
	if !ok {
		t.Fatal("expected jti to be blacklisted")
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("ttl should cover the remaining lifetime, got %v", ttl)
	}
}

func TestAuthService_Logout_NoBlacklist(t *testing.T) {
	svc, _ := setupTestAuthService(t, "pw", nil)

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("logout without a blacklist should be a no-op, got %v", err)
	}
}

func TestAuthService_Logout_StoreError(t *testing.T) {
	bl := newMockBlacklist()
	bl.err = errors.New("redis down")
	svc, _ := setupTestAuthService(t, "pw", bl)

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err == nil {
		t.Error("expected store error to surface")
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")) != nil {
		t.Error("hash does not verify")
	}
}
