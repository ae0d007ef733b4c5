package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jewelstore/internal/domain"
	ordersvc "jewelstore/internal/service/order"
)

const checkoutBody = `{
	"userId": "u1",
	"products": [{"productId": "p1", "quantity": 2}],
	"totalAmount": 4200,
	"shippingInfo": {
		"fullName": "Asha Verma",
		"phone": "9876543210",
		"email": "asha@example.com",
		"addressLine1": "12 MG Road",
		"city": "Bengaluru",
		"state": "Karnataka",
		"zipCode": "560001"
	}
}`

func TestCreateOrderReturns201(t *testing.T) {
	svc := &stubOrderService{order: &domain.Order{ID: "o1", CustomerID: "u1", Status: domain.StatusPending}}
	router := newTestRouter(t, Deps{OrderSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"Pending"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if svc.lastCreate.UserID != "u1" || len(svc.lastCreate.Products) != 1 {
		t.Fatalf("payload not passed to service: %+v", svc.lastCreate)
	}
}

func TestCreateOrderValidationError(t *testing.T) {
	svc := &stubOrderService{err: domain.ValidationError("at least one product is required")}
	router := newTestRouter(t, Deps{OrderSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListOrdersForUser(t *testing.T) {
	svc := &stubOrderService{orders: []domain.Order{{ID: "o1", CustomerID: "u1"}}}
	router := newTestRouter(t, Deps{OrderSvc: svc})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/user/u1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":"o1"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateStatusRequiresAdmin(t *testing.T) {
	svc := &stubOrderService{order: &domain.Order{ID: "o1", Status: domain.StatusShipped}}
	router := newTestRouter(t, Deps{OrderSvc: svc, AuthSvc: adminAuth()})

	body := `{"status":"Shipped"}`
	req := httptest.NewRequest(http.MethodPut, "/orders/o1/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok-user")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if svc.lastStatus != "" {
		t.Fatalf("status update ran for customer token: %q", svc.lastStatus)
	}
}

func TestUpdateStatusHappyPath(t *testing.T) {
	svc := &stubOrderService{order: &domain.Order{ID: "o1", Status: domain.StatusShipped}}
	router := newTestRouter(t, Deps{OrderSvc: svc, AuthSvc: adminAuth()})

	body := `{"status":"Shipped"}`
	req := httptest.NewRequest(http.MethodPut, "/orders/o1/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok-admin")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.lastStatus != domain.StatusShipped {
		t.Fatalf("status not passed through: %q", svc.lastStatus)
	}
	if !strings.Contains(rec.Body.String(), "Order status updated") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	svc := &stubOrderService{err: ordersvc.ErrInvalidStatus}
	router := newTestRouter(t, Deps{OrderSvc: svc, AuthSvc: adminAuth()})

	body := `{"status":"Exploded"}`
	req := httptest.NewRequest(http.MethodPut, "/orders/o1/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok-admin")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
