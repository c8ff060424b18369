package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yoftil7/task-api/internal/auth"
	"github.com/yoftil7/task-api/internal/models"
)

const testKey = "middleware-test-key"

func init() {
	gin.SetMode(gin.TestMode)
}

func probeRouter(handler gin.HandlerFunc, chain ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	group := router.Group("/", chain...)
	group.GET("/probe", handler)
	return router
}

func get(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorType(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := struct {
		Error struct {
			Code int    `json:"code"`
			Type string `json:"type"`
		} `json:"error"`
	}{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("malformed error body %q: %v", w.Body.String(), err)
	}
	if body.Error.Code != w.Code {
		t.Errorf("body code %d disagrees with status %d", body.Error.Code, w.Code)
	}
	return body.Error.Type
}

func TestAuthResolvesCaller(t *testing.T) {
	token, err := auth.IssueToken(testKey, 7, models.RoleManager, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	router := probeRouter(func(c *gin.Context) {
		if CallerID(c) != 7 {
			t.Errorf("CallerID = %d, want 7", CallerID(c))
		}
		if CallerRole(c) != models.RoleManager {
			t.Errorf("CallerRole = %q, want manager", CallerRole(c))
		}
		c.Status(http.StatusOK)
	}, Auth(testKey))

	if w := get(router, token); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestAuthRejectsBadCredentials(t *testing.T) {
	expired, err := auth.IssueToken(testKey, 7, models.RoleUser, -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	foreign, err := auth.IssueToken("another-key", 7, models.RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"garbage token", "garbage"},
		{"expired token", expired},
		{"wrong signing key", foreign},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached := false
			router := probeRouter(func(c *gin.Context) { reached = true }, Auth(testKey))
			w := get(router, tc.token)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if got := errorType(t, w); got != "AuthenticationError" {
				t.Errorf("type = %q, want AuthenticationError", got)
			}
			if reached {
				t.Error("handler ran despite a rejected credential")
			}
		})
	}
}

func TestHasRole(t *testing.T) {
	adminOnly := Require(Authenticated(testKey), HasRole(models.RoleAdmin))
	adminOrManager := Require(Authenticated(testKey), HasRole(models.RoleAdmin, models.RoleManager))

	cases := []struct {
		name     string
		role     string
		chain    gin.HandlerFunc
		wantCode int
		wantType string
	}{
		{"admin passes admin gate", models.RoleAdmin, adminOnly, http.StatusOK, ""},
		{"user denied admin gate", models.RoleUser, adminOnly, http.StatusForbidden, "AuthorizationError"},
		{"manager denied admin gate", models.RoleManager, adminOnly, http.StatusForbidden, "AuthorizationError"},
		{"manager passes report gate", models.RoleManager, adminOrManager, http.StatusOK, ""},
		{"user denied report gate", models.RoleUser, adminOrManager, http.StatusForbidden, "AuthorizationError"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := auth.IssueToken(testKey, 1, tc.role, time.Hour)
			if err != nil {
				t.Fatalf("IssueToken: %v", err)
			}
			router := probeRouter(func(c *gin.Context) { c.Status(http.StatusOK) }, tc.chain)
			w := get(router, token)
			if w.Code != tc.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tc.wantCode)
			}
			if tc.wantType != "" {
				if got := errorType(t, w); got != tc.wantType {
					t.Errorf("type = %q, want %q", got, tc.wantType)
				}
			}
		})
	}
}

func TestHasRoleWithoutIdentityIsAuthenticationFailure(t *testing.T) {
	router := probeRouter(func(c *gin.Context) { c.Status(http.StatusOK) }, Require(HasRole(models.RoleAdmin)))
	w := get(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
