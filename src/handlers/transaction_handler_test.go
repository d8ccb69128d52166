package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"paymill-mirror/src/db"
	"paymill-mirror/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func withTransactionID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("transaction_id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestFilterFromQuery(t *testing.T) {
	query := url.Values{
		"client":     {"client_1"},
		"payment":    {"pay_1"},
		"amount":     {">300"},
		"created_at": {"1000-2000"},
		"status":     {"closed"},
		"order":      {"created_at_asc"},
	}

	filter, order, err := filterFromQuery(query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"client":     "client_1",
		"payment":    "pay_1",
		"amount":     ">300",
		"created_at": "1000-2000",
		"status":     "closed",
	}
	for name, value := range want {
		if got, _ := filter.Get(name); got != value {
			t.Errorf("%s: expected %q, got %q", name, value, got)
		}
	}
	if _, ok := filter.Get("description"); ok {
		t.Errorf("description should not be set")
	}
	if order == nil || order.Type != "created_at" || order.Direction != models.SortAscending {
		t.Errorf("unexpected order %+v", order)
	}
}

func TestFilterFromQuery_PlainAmountAndNoOrder(t *testing.T) {
	filter, order, err := filterFromQuery(url.Values{"amount": {"300"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := filter.Get("amount"); got != "=300" {
		t.Errorf("expected =300, got %q", got)
	}
	if order != nil {
		t.Errorf("expected no order, got %+v", order)
	}
}

func TestFilterFromQuery_Invalid(t *testing.T) {
	for _, query := range []url.Values{
		{"amount": {">abc"}},
		{"created_at": {"yesterday"}},
		{"updated_at": {"1-x"}},
		{"order": {"amount_desc"}},
	} {
		if _, _, err := filterFromQuery(query); !models.IsWrongParams(err) {
			t.Errorf("%v: expected wrong params error, got %v", query, err)
		}
	}
}

func TestUpdateTransaction_RejectsFieldsOutsideWhitelist(t *testing.T) {
	handler := UpdateTransaction(nil)

	for _, body := range []string{`{"amount": 1}`, `{"description": "x", "status": "closed"}`, `{"description": 5}`} {
		req := withTransactionID(httptest.NewRequest(http.MethodPut, "/api/transactions/tran_1", strings.NewReader(body)), "tran_1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestGetTransaction_FromCache(t *testing.T) {
	db.InitCache()
	defer func() { db.Cache = nil }()

	cached := &models.Transaction{ID: "tran_1", Status: models.StatusClosed, Description: "Cart 1138"}
	db.SetTransactionCache(db.TransactionCacheKey("tran_1"), cached)
	db.Cache.Wait()

	req := withTransactionID(httptest.NewRequest(http.MethodGet, "/api/transactions/tran_1", nil), "tran_1")
	rec := httptest.NewRecorder()
	GetTransaction(nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got models.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.ID != "tran_1" || got.Status != models.StatusClosed || got.Description != "Cart 1138" {
		t.Errorf("unexpected transaction %+v", got)
	}
}
