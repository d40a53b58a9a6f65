package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"raydan-backend-go/internal/services"
)

func testTokenService() services.TokenService {
	return services.TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "raydan-forum",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentAdminID(r) == "" {
			t.Fatalf("admin id missing from context")
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestWithAuthAcceptsAccessToken(t *testing.T) {
	tokens := testTokenService()
	signed, _, err := tokens.CreateAccessToken("admin-1", "admin@raydanforum.org", services.RoleEditor)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/admin/dashboard", nil)
	r.Header.Set("Authorization", "Bearer "+signed)
	WithAuth(tokens)(protectedEcho(t)).ServeHTTP(recorder, r)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
}

func TestWithAuthRejectsMissingHeader(t *testing.T) {
	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/admin/dashboard", nil)
	WithAuth(testTokenService())(protectedEcho(t)).ServeHTTP(recorder, r)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", recorder.Code)
	}
}

func TestWithAuthRejectsRefreshToken(t *testing.T) {
	tokens := testTokenService()
	signed, err := tokens.CreateRefreshToken("admin-1")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/admin/dashboard", nil)
	r.Header.Set("Authorization", "Bearer "+signed)
	WithAuth(tokens)(protectedEcho(t)).ServeHTTP(recorder, r)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("refresh token must not open admin routes, status = %d", recorder.Code)
	}
}

func TestWithAuthRejectsTamperedToken(t *testing.T) {
	tokens := testTokenService()
	signed, _, err := tokens.CreateAccessToken("admin-1", "a@b.c", services.RoleEditor)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/admin/dashboard", nil)
	r.Header.Set("Authorization", "Bearer "+signed+"x")
	WithAuth(tokens)(protectedEcho(t)).ServeHTTP(recorder, r)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", recorder.Code)
	}
}

func TestRequireRole(t *testing.T) {
	tokens := testTokenService()
	handler := WithAuth(tokens)(RequireRole(services.RoleSuperAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	editorToken, _, err := tokens.CreateAccessToken("admin-2", "editor@raydanforum.org", services.RoleEditor)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/admin/admins", nil)
	r.Header.Set("Authorization", "Bearer "+editorToken)
	handler.ServeHTTP(recorder, r)
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("editor allowed into super admin route, status = %d", recorder.Code)
	}

	superToken, _, err := tokens.CreateAccessToken("admin-1", "root@raydanforum.org", services.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	recorder = httptest.NewRecorder()
	r = httptest.NewRequest("GET", "/api/admin/admins", nil)
	r.Header.Set("Authorization", "Bearer "+superToken)
	handler.ServeHTTP(recorder, r)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("status = %d", recorder.Code)
	}
}
