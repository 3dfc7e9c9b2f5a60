package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"cap-core-backend/internal/domain/refdata"
	"cap-core-backend/internal/testutil/refdatamock"
	uc "cap-core-backend/internal/usecase/admin"
)

func TestGetRates_ServesSeedCatalog(t *testing.T) {
	e := echo.New()
	h := NewAdminHandler(uc.NewUsecase(&refdatamock.Store{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/admin/rates", nil)
	rec := httptest.NewRecorder()

	if err := h.GetRates(e.NewContext(req, rec)); err != nil {
		t.Fatalf("GetRates error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []refdata.InterestRate
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got) != len(refdata.DefaultRates()) {
		t.Fatalf("got %d rates, want the full seed catalog", len(got))
	}
}

func TestPutRates_RejectsBadEntry(t *testing.T) {
	e := echo.New()
	saved := false
	h := NewAdminHandler(uc.NewUsecase(&refdatamock.Store{
		SaveRatesFn: func(_ context.Context, _ []refdata.InterestRate) error {
			saved = true
			return nil
		},
	}))

	body := `[{"id":"R1","category":"Consumo Ordinario","rate":-1,"max_term":48}]`
	req := httptest.NewRequest(stdhttp.MethodPut, "/admin/rates", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.PutRates(e.NewContext(req, rec)); err != nil {
		t.Fatalf("PutRates error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body=%s)", rec.Code, rec.Body.String())
	}
	if saved {
		t.Fatal("invalid catalog reached the store")
	}
}

func TestPutRates_SavesValidCatalog(t *testing.T) {
	e := echo.New()
	var saved []refdata.InterestRate
	h := NewAdminHandler(uc.NewUsecase(&refdatamock.Store{
		SaveRatesFn: func(_ context.Context, rates []refdata.InterestRate) error {
			saved = rates
			return nil
		},
	}))

	body := `[{"id":"R1","category":"Consumo Ordinario","rate":15.5,"max_term":48}]`
	req := httptest.NewRequest(stdhttp.MethodPut, "/admin/rates", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.PutRates(e.NewContext(req, rec)); err != nil {
		t.Fatalf("PutRates error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", rec.Code, rec.Body.String())
	}
	if len(saved) != 1 || saved[0].Rate != 15.5 {
		t.Fatalf("unexpected saved catalog: %+v", saved)
	}
}

func TestPutConfig_RejectsInvertedLimits(t *testing.T) {
	e := echo.New()
	h := NewAdminHandler(uc.NewUsecase(&refdatamock.Store{}))

	body := `{"min_loan_amount":5000,"max_loan_amount":100,"max_global_term":120}`
	req := httptest.NewRequest(stdhttp.MethodPut, "/admin/config", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.PutConfig(e.NewContext(req, rec)); err != nil {
		t.Fatalf("PutConfig error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body=%s)", rec.Code, rec.Body.String())
	}
}
