package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget_tracker/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  float64(42),
		"user": "testuser",
		"exp":  exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func okHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		uid, ok := r.Context().Value(utils.ContextKey("userId")).(float64)
		if !ok || int(uid) != 42 {
			t.Errorf("userId in context = %v", r.Context().Value(utils.ContextKey("userId")))
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddlewareMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	called := false
	h := JWTMiddleware(okHandler(t, &called))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/transactions", nil))

	if called {
		t.Error("handler ran without a token")
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTMiddlewareValidCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	called := false
	h := JWTMiddleware(okHandler(t, &called))

	r := httptest.NewRequest("GET", "/transactions", nil)
	r.AddCookie(&http.Cookie{Name: "Bearer", Value: signTestToken(t, "test-secret", time.Now().Add(time.Hour))})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if !called {
		t.Fatal("handler did not run with a valid cookie token")
	}
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestJWTMiddlewareAuthorizationHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	called := false
	h := JWTMiddleware(okHandler(t, &called))

	r := httptest.NewRequest("GET", "/transactions", nil)
	r.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", time.Now().Add(time.Hour)))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if !called {
		t.Fatal("handler did not run with a valid header token")
	}
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	called := false
	h := JWTMiddleware(okHandler(t, &called))

	r := httptest.NewRequest("GET", "/transactions", nil)
	r.AddCookie(&http.Cookie{Name: "Bearer", Value: signTestToken(t, "test-secret", time.Now().Add(-time.Hour))})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if called {
		t.Error("handler ran with an expired token")
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTMiddlewareWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	called := false
	h := JWTMiddleware(okHandler(t, &called))

	r := httptest.NewRequest("GET", "/transactions", nil)
	r.AddCookie(&http.Cookie{Name: "Bearer", Value: signTestToken(t, "other-secret", time.Now().Add(time.Hour))})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if called {
		t.Error("handler ran with a token signed by the wrong secret")
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestMiddlewaresExcludePaths(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := MiddlewaresExcludePaths(JWTMiddleware, "/users/signup", "/healthz")(inner)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/users/signup", nil))
	if w.Code != http.StatusOK {
		t.Errorf("excluded path got %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/transactions", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("protected path without token got %d, want 401", w.Code)
	}
}
