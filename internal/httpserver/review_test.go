package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jewelstore/internal/domain"
	reviewsvc "jewelstore/internal/service/review"
)

func TestListReviewsPublic(t *testing.T) {
	svc := &stubReviewService{reviews: []domain.Review{{ID: "r1", ListingID: "l1", Rating: 5}}}
	router := newTestRouter(t, Deps{ReviewSvc: svc})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews/l1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"rating":5`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAverageRating(t *testing.T) {
	svc := &stubReviewService{average: 4.5}
	router := newTestRouter(t, Deps{ReviewSvc: svc})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews/l1/average", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"averageRating":4.5`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateReviewRequiresAuth(t *testing.T) {
	router := newTestRouter(t, Deps{})

	body := `{"productId":"l1","rating":4,"comment":"nice"}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCreateReviewUsesTokenIdentity(t *testing.T) {
	svc := &stubReviewService{review: &domain.Review{ID: "r1", ListingID: "l1", CustomerID: "u1", Rating: 4}}
	router := newTestRouter(t, Deps{ReviewSvc: svc, AuthSvc: adminAuth()})

	body := `{"productId":"l1","rating":4,"comment":"nice"}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok-user")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.lastCreate.UserID != "u1" || svc.lastCreate.Username != "Asha" {
		t.Fatalf("identity not threaded into input: %+v", svc.lastCreate)
	}
}

func TestCreateReviewDuplicate(t *testing.T) {
	svc := &stubReviewService{err: reviewsvc.ErrAlreadyReviewed}
	router := newTestRouter(t, Deps{ReviewSvc: svc, AuthSvc: adminAuth()})

	body := `{"productId":"l1","rating":4,"comment":"nice"}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok-user")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateReviewNotOwner(t *testing.T) {
	svc := &stubReviewService{err: reviewsvc.ErrNotOwner}
	router := newTestRouter(t, Deps{ReviewSvc: svc, AuthSvc: adminAuth()})

	body := `{"rating":2,"comment":"changed"}`
	req := httptest.NewRequest(http.MethodPut, "/reviews/r1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok-user")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestDeleteReviewHappyPath(t *testing.T) {
	router := newTestRouter(t, Deps{ReviewSvc: &stubReviewService{}, AuthSvc: adminAuth()})

	req := httptest.NewRequest(http.MethodDelete, "/reviews/r1", nil)
	req.Header.Set("Authorization", "Bearer tok-user")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}
