package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	loanDomain "cap-core-backend/internal/domain/loan"
	"cap-core-backend/internal/testutil/ledgermock"
	uc "cap-core-backend/internal/usecase/members"
)

func TestGetMember_Success(t *testing.T) {
	e := echo.New()
	h := NewMemberHandler(uc.NewUsecase(ledgermock.NewInMemory(memberWithLoan(loanDomain.StatusActive))))

	req := httptest.NewRequest(stdhttp.MethodGet, "/members/1803000001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/members/:member_id")
	c.SetParamNames("member_id")
	c.SetParamValues("1803000001")

	if err := h.GetMember(c); err != nil {
		t.Fatalf("GetMember error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", rec.Code, rec.Body.String())
	}
	var got uc.MemberDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.ID != "1803000001" || len(got.Loans) != 1 {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestGetMember_NotFound(t *testing.T) {
	e := echo.New()
	h := NewMemberHandler(uc.NewUsecase(ledgermock.NewInMemory(nil)))

	req := httptest.NewRequest(stdhttp.MethodGet, "/members/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/members/:member_id")
	c.SetParamNames("member_id")
	c.SetParamValues("nope")

	if err := h.GetMember(c); err != nil {
		t.Fatalf("GetMember error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetLoan_Success(t *testing.T) {
	e := echo.New()
	h := NewMemberHandler(uc.NewUsecase(ledgermock.NewInMemory(memberWithLoan(loanDomain.StatusActive))))

	req := httptest.NewRequest(stdhttp.MethodGet, "/members/1803000001/loans/"+testLoanID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/members/:member_id/loans/:loan_id")
	c.SetParamNames("member_id", "loan_id")
	c.SetParamValues("1803000001", testLoanID)

	if err := h.GetLoan(c); err != nil {
		t.Fatalf("GetLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", rec.Code, rec.Body.String())
	}
	var got uc.LoanDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.LoanID != testLoanID || got.Status != "active" {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestGetLoan_UnknownLoanIs404(t *testing.T) {
	e := echo.New()
	h := NewMemberHandler(uc.NewUsecase(ledgermock.NewInMemory(memberWithLoan(loanDomain.StatusActive))))

	other := "ffffffffffffffffffffffffffffffff"
	req := httptest.NewRequest(stdhttp.MethodGet, "/members/1803000001/loans/"+other, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/members/:member_id/loans/:loan_id")
	c.SetParamNames("member_id", "loan_id")
	c.SetParamValues("1803000001", other)

	if err := h.GetLoan(c); err != nil {
		t.Fatalf("GetLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
