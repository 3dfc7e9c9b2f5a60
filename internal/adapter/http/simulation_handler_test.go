package http

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	memberDomain "cap-core-backend/internal/domain/member"
	"cap-core-backend/internal/testutil/ledgermock"
	"cap-core-backend/internal/testutil/refdatamock"
	uc "cap-core-backend/internal/usecase/simulation"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func newSimUsecase(store *ledgermock.InMemory) *uc.Usecase {
	return uc.NewUsecase(store, &refdatamock.Store{})
}

// -------- tests --------

func TestSimulate_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := NewSimulationHandler(newSimUsecase(ledgermock.NewInMemory(nil)))

	reqBody := map[string]any{
		"principal":   1000,
		"category_id": "R1",
		"term_months": 12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/simulate", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Simulate(c); err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", rec.Code, rec.Body.String())
	}
	var got uc.ScheduleDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.EffectiveTerm != 12 || len(got.Installments) != 12 {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestSimulate_ValidationFailure(t *testing.T) {
	e := newEchoWithValidator()
	h := NewSimulationHandler(newSimUsecase(ledgermock.NewInMemory(nil)))

	reqBody := map[string]any{
		"principal":   1000.001, // more than 2 decimal places
		"category_id": "R1",
		"term_months": 12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/simulate", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Simulate(c); err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(resp.Details) == 0 {
		t.Fatalf("expected field details, got %+v", resp)
	}
}

func TestSimulate_OutOfRangePrincipal(t *testing.T) {
	e := newEchoWithValidator()
	h := NewSimulationHandler(newSimUsecase(ledgermock.NewInMemory(nil)))

	reqBody := map[string]any{
		"principal":   50, // below the configured minimum of 100
		"category_id": "R1",
		"term_months": 12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/simulate", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Simulate(c); err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestSubmitRequest_Success(t *testing.T) {
	e := newEchoWithValidator()
	store := ledgermock.NewInMemory(&memberDomain.Member{
		ID:   "1803000001",
		Name: "Ana Pérez",
		Accounts: []memberDomain.Account{
			{ID: "acc-sav", Type: memberDomain.AccountSavings, Balance: 100, Currency: "USD"},
		},
	})
	h := NewSimulationHandler(newSimUsecase(store))

	reqBody := map[string]any{
		"principal":   1000,
		"category_id": "R1",
		"term_months": 12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/members/1803000001/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/members/:member_id/loans")
	c.SetParamNames("member_id")
	c.SetParamValues("1803000001")

	if err := h.SubmitRequest(c); err != nil {
		t.Fatalf("SubmitRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (body=%s)", rec.Code, rec.Body.String())
	}
	var got uc.LoanDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Status != "requested" || got.Amount != 1000 {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if len(store.Member.Loans) != 1 {
		t.Fatalf("loan not persisted")
	}
}

func TestSubmitRequest_UnknownMemberIs404(t *testing.T) {
	e := newEchoWithValidator()
	h := NewSimulationHandler(newSimUsecase(ledgermock.NewInMemory(nil)))

	reqBody := map[string]any{
		"principal":   1000,
		"category_id": "R1",
		"term_months": 12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/members/nope/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/members/:member_id/loans")
	c.SetParamNames("member_id")
	c.SetParamValues("nope")

	if err := h.SubmitRequest(c); err != nil {
		t.Fatalf("SubmitRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
