package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jewelstore/internal/domain"
	customersvc "jewelstore/internal/service/customer"
)

func TestRegisterCreated(t *testing.T) {
	auth := &stubAuthService{customer: &domain.Customer{ID: "u1", Name: "Asha", Email: "asha@example.com"}}
	router := newTestRouter(t, Deps{AuthSvc: auth})

	body := `{"name":"Asha","email":"asha@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestRegisterEmailTaken(t *testing.T) {
	router := newTestRouter(t, Deps{AuthSvc: &stubAuthService{err: customersvc.ErrEmailTaken}})

	body := `{"name":"Asha","email":"asha@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	auth := &stubAuthService{customer: &domain.Customer{ID: "u1", Name: "Asha"}}
	router := newTestRouter(t, Deps{AuthSvc: auth})

	body := `{"email":"asha@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"tok-customer"`) {
		t.Fatalf("token missing from body: %s", rec.Body.String())
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newTestRouter(t, Deps{AuthSvc: &stubAuthService{err: customersvc.ErrInvalidCredentials}})

	body := `{"email":"asha@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminLoginReturnsToken(t *testing.T) {
	auth := &stubAuthService{admin: &domain.Admin{ID: "a1", Username: "admin"}}
	router := newTestRouter(t, Deps{AuthSvc: auth})

	body := `{"username":"admin","password":"admin123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/adminlogin", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"tok-admin"`) {
		t.Fatalf("token missing from body: %s", rec.Body.String())
	}
}

func TestCheckAuthWithoutToken(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/check-auth", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCheckAuthResolvesIdentity(t *testing.T) {
	router := newTestRouter(t, Deps{AuthSvc: adminAuth()})

	req := httptest.NewRequest(http.MethodGet, "/auth/check-auth", nil)
	req.Header.Set("Authorization", "Bearer tok-user")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"userId":"u1"`) {
		t.Fatalf("identity missing from body: %s", rec.Body.String())
	}
}

func TestLogoutRevokes(t *testing.T) {
	router := newTestRouter(t, Deps{AuthSvc: adminAuth()})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-user")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}
