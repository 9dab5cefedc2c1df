package web_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/pagination"
	"github.com/bizstack/backoffice/pkg/web"
)

func TestRespondData(t *testing.T) {
	rec := httptest.NewRecorder()
	web.RespondData(rec, http.StatusCreated, map[string]string{"name": "Main"})

	if rec.Code != http.StatusCreated {
		t.Errorf("Status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Body is not JSON: %v", err)
	}
	if body.Data["name"] != "Main" {
		t.Errorf("data.name = %q, want Main", body.Data["name"])
	}
}

func TestRespondList(t *testing.T) {
	rec := httptest.NewRecorder()
	meta := pagination.NewMeta(pagination.Params{Page: 2, Limit: 10}, 25)
	web.RespondList(rec, []int{1, 2, 3}, meta)

	var body struct {
		Data []int           `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Body is not JSON: %v", err)
	}
	if len(body.Data) != 3 {
		t.Errorf("data = %v, want 3 items", body.Data)
	}
	if body.Meta.TotalPages != 3 || body.Meta.Page != 2 {
		t.Errorf("meta = %+v, want totalPages 3 page 2", body.Meta)
	}
}

func TestRespondError_Classified(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/product/9", nil)
	web.RespondError(rec, req, apperrors.NotfoundData("product not found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rec.Code)
	}
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Body is not JSON: %v", err)
	}
	if body.Code != apperrors.CodeNotfoundData || body.Message != "product not found" {
		t.Errorf("Body = %+v, want NOTFOUND_DATA_ERROR/product not found", body)
	}
}

func TestRespondError_WrappedClassification(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/order", nil)
	wrapped := errors.Join(errors.New("context"), apperrors.InsufficientStock("product 7 at warehouse 2"))
	web.RespondError(rec, req, wrapped)

	if rec.Code != http.StatusConflict {
		t.Errorf("Status = %d, want 409", rec.Code)
	}
}

func TestRespondError_UnclassifiedIsGenericized(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/product", nil)
	web.RespondError(rec, req, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", rec.Code)
	}
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Body is not JSON: %v", err)
	}
	if body.Code != apperrors.CodeInternal {
		t.Errorf("Code = %q, want INTERNAL_SERVER_ERROR", body.Code)
	}
	// The driver error must never leak to the client
	if body.Message != "internal server error" {
		t.Errorf("Message = %q, want generic text", body.Message)
	}
}
