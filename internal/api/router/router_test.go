package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"summer-success/tracker/config"
	"summer-success/tracker/internal/api/handler"
	"summer-success/tracker/internal/repository"
	"summer-success/tracker/internal/service"
	"summer-success/tracker/internal/testutil"
	"summer-success/tracker/pkg/jwt"
)

type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("parent-pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "router-test-secret-0123456789abcdef",
			AccessTokenTTL:     time.Hour,
			ParentPasswordHash: string(hash),
		},
		Tracker: config.TrackerConfig{Timezone: "UTC", CelebrationTTL: time.Hour},
	}

	logger := zap.NewNop()
	repo := repository.NewRepository(testutil.OpenTestDB(t))
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(cfg, repo, jwtMgr, service.Deps{}, logger)

	r, err := Setup(cfg, handler.NewHandler(svc), jwtMgr, nil, nil, logger)
	if err != nil {
		t.Fatalf("setup router: %v", err)
	}
	return r
}

func call(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

func TestRouter_Health(t *testing.T) {
	r := setupRouter(t)
	if code, _ := call(t, r, "GET", "/health", "", nil); code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
}

func TestRouter_MutationsRequireToken(t *testing.T) {
	r := setupRouter(t)

	code, env := call(t, r, "POST", "/api/v1/children", "", map[string]string{"name": "Alex"})
	if code != http.StatusUnauthorized || env.Code != 10002 {
		t.Errorf("expected 401/10002, got %d/%d", code, env.Code)
	}
	if code, _ := call(t, r, "GET", "/api/v1/children", "", nil); code != http.StatusOK {
		t.Errorf("reads are public, got %d", code)
	}
}

func TestRouter_LogAndReward(t *testing.T) {
	r := setupRouter(t)

	// login
	code, env := call(t, r, "POST", "/api/v1/auth/login", "", map[string]string{"password": "parent-pw"})
	if code != http.StatusOK {
		t.Fatalf("login: %d", code)
	}
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	_ = json.Unmarshal(env.Data, &tok)

	// child
	code, env = call(t, r, "POST", "/api/v1/children", tok.AccessToken, map[string]string{"name": "Alex"})
	if code != http.StatusCreated {
		t.Fatalf("create child: %d", code)
	}
	var child struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(env.Data, &child)

	// a full goal day
	const day = "2025-07-14"
	for _, a := range []map[string]interface{}{
		{"type": "education", "category": "Reading", "description": "Book", "duration": 120},
		{"type": "skill", "category": "Workout", "description": "Run", "duration": 60},
		{"type": "chore", "category": "Vacuum", "description": "Hall"},
		{"type": "chore", "category": "Clean Room", "description": "Room"},
	} {
		a["child_id"] = child.ID
		a["date"] = day
		if code, env := call(t, r, "POST", "/api/v1/activities", tok.AccessToken, a); code != http.StatusCreated {
			t.Fatalf("create activity %v: %d/%d", a["category"], code, env.Code)
		}
	}
	call(t, r, "POST", "/api/v1/behaviors", tok.AccessToken, map[string]string{
		"child_id": child.ID, "date": day, "type": "Lying",
	})

	code, env = call(t, r, "GET", "/api/v1/progress/daily?child_id="+child.ID+"&date="+day, "", nil)
	if code != http.StatusOK {
		t.Fatalf("daily: %d", code)
	}
	var p struct {
		MinecraftTime int  `json:"minecraft_time"`
		Celebrate     bool `json:"celebrate"`
	}
	_ = json.Unmarshal(env.Data, &p)
	if p.MinecraftTime != 40 || !p.Celebrate {
		t.Errorf("expected 40 minutes with celebration, got %+v", p)
	}

	// vacation blocks further logging
	call(t, r, "PUT", "/api/v1/vacation-days/"+day, tok.AccessToken, map[string]bool{"on_vacation": true})
	code, env = call(t, r, "POST", "/api/v1/activities", tok.AccessToken, map[string]interface{}{
		"child_id": child.ID, "date": day, "type": "chore", "category": "Vacuum", "description": "again",
	})
	if code != http.StatusUnprocessableEntity || env.Code != 21004 {
		t.Errorf("expected 422/21004, got %d/%d", code, env.Code)
	}

	// logout revokes nothing without redis but still succeeds
	if code, _ := call(t, r, "POST", "/api/v1/auth/logout", tok.AccessToken, nil); code != http.StatusOK {
		t.Errorf("logout: %d", code)
	}
}
