package pizzeria

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
)

func newTestHandler() (*Handler, *fakeRepo) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	return NewHandler(svc, logger.New("test")), repo
}

func doRequest(t *testing.T, h *Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("token", token)
	}

	rec := httptest.NewRecorder()
	h.SetupRoutes().ServeHTTP(rec, req)
	return rec
}

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.ResponseMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("failed to decode message body %q: %v", rec.Body.String(), err)
	}
	return msg.Msg
}

func registerPerson(t *testing.T, h *Handler, name string) *models.PersonResponse {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/api/register", AuthToken, models.RegisterPersonRequest{Name: name})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned status %d: %s", rec.Code, rec.Body.String())
	}
	var person models.PersonResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &person); err != nil {
		t.Fatalf("failed to decode person: %v", err)
	}
	return &person
}

func TestAuthenticate(t *testing.T) {
	h, _ := newTestHandler()

	t.Run("valid credentials", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/auth", "", models.UserAuthRequest{Username: "test", Password: "test"})
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		var token models.AccessTokenResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &token); err != nil {
			t.Fatalf("failed to decode token: %v", err)
		}
		if token.AccessToken != AuthToken {
			t.Errorf("expected the fixed token, got %q", token.AccessToken)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/auth", "", models.UserAuthRequest{Username: "test", Password: "bad"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if got := decodeMsg(t, rec); got != "Bad username or password" {
			t.Errorf("unexpected message %q", got)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		h.SetupRoutes().ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTokenHeaderCheck(t *testing.T) {
	h, _ := newTestHandler()

	tests := []struct {
		name    string
		token   string
		wantMsg string
	}{
		{name: "missing header", token: "", wantMsg: "Missing Authorization Header"},
		{name: "wrong token", token: "wrong", wantMsg: "Incorrect Authorization Header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/api/orders", tt.token, models.CreateOrderRequest{
				Crust: "THIN", Flavour: "HAWAII", Size: "M", TableNo: 1, CustomerID: 1,
			})
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if got := decodeMsg(t, rec); got != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, got)
			}
		})
	}
}

func TestRegisterPerson(t *testing.T) {
	h, _ := newTestHandler()

	person := registerPerson(t, h, "Muster")
	if person.CustomerID == 0 {
		t.Errorf("expected an assigned customer id")
	}
	if person.Name != "Muster" {
		t.Errorf("expected name Muster, got %q", person.Name)
	}
	if person.OrderList == nil || len(person.OrderList) != 0 {
		t.Errorf("expected an empty order list, got %v", person.OrderList)
	}

	rec := doRequest(t, h, http.MethodPost, "/api/register", AuthToken, models.RegisterPersonRequest{Name: ""})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty name, got %d", rec.Code)
	}
}

func TestOrderLifecycle(t *testing.T) {
	h, _ := newTestHandler()
	person := registerPerson(t, h, "Muster")

	// create
	rec := doRequest(t, h, http.MethodPost, "/api/orders", AuthToken, models.CreateOrderRequest{
		Crust: "THIN", Flavour: "REGINA", Size: "L", TableNo: 12, CustomerID: person.CustomerID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var order models.OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("failed to decode order: %v", err)
	}
	if order.OrderID == 0 || order.Timestamp == 0 {
		t.Errorf("expected assigned id and timestamp, got %+v", order)
	}
	if order.CustomerID != person.CustomerID {
		t.Errorf("expected customer id %d, got %d", person.CustomerID, order.CustomerID)
	}

	// list all
	rec = doRequest(t, h, http.MethodGet, "/api/orders", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var orders []models.OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("failed to decode orders: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderID != order.OrderID {
		t.Errorf("expected the created order in the listing, got %v", orders)
	}

	// list for person
	rec = doRequest(t, h, http.MethodGet, fmt.Sprintf("/api/orders/%d", person.CustomerID), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// delete
	rec = doRequest(t, h, http.MethodDelete, fmt.Sprintf("/api/orders/%d", order.OrderID), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	wantMsg := fmt.Sprintf("Successfully deleted order #%d", order.OrderID)
	if got := decodeMsg(t, rec); got != wantMsg {
		t.Errorf("expected message %q, got %q", wantMsg, got)
	}

	// delete again
	rec = doRequest(t, h, http.MethodDelete, fmt.Sprintf("/api/orders/%d", order.OrderID), "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for repeated delete, got %d", rec.Code)
	}
}

func TestCreateOrder_Failures(t *testing.T) {
	h, _ := newTestHandler()

	t.Run("unknown customer", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/orders", AuthToken, models.CreateOrderRequest{
			Crust: "THIN", Flavour: "HAWAII", Size: "M", TableNo: 1, CustomerID: 77,
		})
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("invalid flavour", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/orders", AuthToken, models.CreateOrderRequest{
			Crust: "THIN", Flavour: "margherita", Size: "M", TableNo: 1, CustomerID: 1,
		})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{"))
		req.Header.Set("token", AuthToken)
		rec := httptest.NewRecorder()
		h.SetupRoutes().ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestListOrdersForPerson_Failures(t *testing.T) {
	h, _ := newTestHandler()

	rec := doRequest(t, h, http.MethodGet, "/api/orders/404", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown person, got %d", rec.Code)
	}

	rec = doRequest(t, h, http.MethodGet, "/api/orders/abc", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric person id, got %d", rec.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	h, _ := newTestHandler()

	rec := doRequest(t, h, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode health body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
}

func TestRequestIDCorrelation(t *testing.T) {
	h, _ := newTestHandler()

	var first, second string
	wrapped := h.withLogging(func(w http.ResponseWriter, r *http.Request) {
		first = requestIDFrom(r)
		second = requestIDFrom(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	wrapped(httptest.NewRecorder(), req)

	if first == "" {
		t.Fatal("expected a request id from the middleware")
	}
	if first != second {
		t.Errorf("request id changed within one request: %q vs %q", first, second)
	}
}
