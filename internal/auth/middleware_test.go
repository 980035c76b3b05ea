package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// okHandler replies 200 "ok".
var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
})

func callWithKey(t *testing.T, mw func(http.Handler) http.Handler, header, key string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	if key != "" {
		req.Header.Set(header, key)
	}
	rec := httptest.NewRecorder()
	mw(okHandler).ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_ModeNone_PassesThrough(t *testing.T) {
	mw := Middleware("none", "x-api-key", "secret")
	// No key in the request, should still pass because mode != "apikey".
	rec := callWithKey(t, mw, "x-api-key", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestMiddleware_EmptyKey_PassesThrough(t *testing.T) {
	// key="" means auth is not configured, allow all.
	mw := Middleware("apikey", "x-api-key", "")
	rec := callWithKey(t, mw, "x-api-key", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMiddleware_CorrectKey_Passes(t *testing.T) {
	mw := Middleware("apikey", "x-api-key", "supersecret")
	rec := callWithKey(t, mw, "x-api-key", "supersecret")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestMiddleware_WrongKey_Unauthorized(t *testing.T) {
	mw := Middleware("apikey", "x-api-key", "supersecret")
	rec := callWithKey(t, mw, "x-api-key", "wrong")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestMiddleware_MissingHeader_Unauthorized(t *testing.T) {
	mw := Middleware("apikey", "x-api-key", "supersecret")
	rec := callWithKey(t, mw, "x-api-key", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMiddleware_CustomHeader(t *testing.T) {
	mw := Middleware("apikey", "x-veglia-token", "mytoken")
	rec := callWithKey(t, mw, "x-veglia-token", "mytoken")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	rec = callWithKey(t, mw, "x-api-key", "mytoken")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("key in the wrong header: status = %d, want 401", rec.Code)
	}
}
