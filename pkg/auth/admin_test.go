package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdminToken_EmptyTokenPassesThrough(t *testing.T) {
	called := false
	req := httptest.NewRequest("GET", "/api/contact", nil)
	rec := httptest.NewRecorder()
	RequireAdminToken("")(okHandler(&called)).ServeHTTP(rec, req)

	if !called || rec.Code != http.StatusOK {
		t.Errorf("expected pass-through, called=%v code=%d", called, rec.Code)
	}
}

func TestRequireAdminToken_MissingHeader_Returns401(t *testing.T) {
	called := false
	req := httptest.NewRequest("GET", "/api/contact", nil)
	rec := httptest.NewRecorder()
	RequireAdminToken("s3cret")(okHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("next handler should not be called")
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Error("expected WWW-Authenticate header")
	}
}

func TestRequireAdminToken_WrongToken_Returns401(t *testing.T) {
	called := false
	req := httptest.NewRequest("GET", "/api/contact", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	RequireAdminToken("s3cret")(okHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdminToken_WrongScheme_Returns401(t *testing.T) {
	called := false
	req := httptest.NewRequest("GET", "/api/contact", nil)
	req.Header.Set("Authorization", "Basic s3cret")
	rec := httptest.NewRecorder()
	RequireAdminToken("s3cret")(okHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdminToken_ValidToken_CallsNext(t *testing.T) {
	called := false
	req := httptest.NewRequest("GET", "/api/contact", nil)
	req.Header.Set("Authorization", "bearer s3cret")
	rec := httptest.NewRecorder()
	RequireAdminToken("s3cret")(okHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !called {
		t.Errorf("expected 200 and next called, got %d called=%v", rec.Code, called)
	}
}
