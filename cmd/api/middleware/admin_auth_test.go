package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"news-cms/cmd/api/auth"
	"news-cms/cmd/api/middleware"
	"news-cms/cmd/api/services"
)

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "middleware-test-secret")
	t.Setenv("JWT_ISSUER", "middleware-test")
	manager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the middleware only touches the token, never the user store
	authSvc := services.NewAuthService(nil, manager)

	r := gin.New()
	r.GET("/protected", middleware.AdminAuth(authSvc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(middleware.CtxUserID),
			"username": c.GetString(middleware.CtxUsername),
			"role":     c.GetString(middleware.CtxRole),
		})
	})
	return r
}

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	manager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token, err := manager.Sign("64b000000000000000000001", "tester", role)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}
	return token
}

func TestAdminAuthAllowsAdminRole(t *testing.T) {
	r := newAuthTestRouter(t)
	token := signTestToken(t, auth.RoleAdmin)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["user_id"] != "64b000000000000000000001" {
		t.Fatalf("expected user id in context, got %q", body["user_id"])
	}
	if body["username"] != "tester" {
		t.Fatalf("expected username in context, got %q", body["username"])
	}
	if body["role"] != auth.RoleAdmin {
		t.Fatalf("expected admin role in context, got %q", body["role"])
	}
}

func TestAdminAuthRejectsEditorRole(t *testing.T) {
	r := newAuthTestRouter(t)
	token := signTestToken(t, auth.RoleEditor)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, recorder.Code)
	}
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	r := newAuthTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestAdminAuthRejectsGarbageToken(t *testing.T) {
	r := newAuthTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}
