package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/labstack/echo/v4"

	"sacco-backend/internal/domain/approval"
	savingDomain "sacco-backend/internal/domain/saving"
	"sacco-backend/internal/domain/uow"
	"sacco-backend/internal/testutil/savingmock"
	"sacco-backend/internal/testutil/uowmock"
	approvaluc "sacco-backend/internal/usecase/approval"
)

func TestApproveSaving_OverridesFixedOnCompletion(t *testing.T) {
	s := &savingDomain.Saving{
		SavingID:        "feedfacefeedfacefeedfacefeedface",
		MemberUID:       testMemberUID,
		SubmittedAmount: decimal.NewFromInt(300),
		SubmittedDate:   "2026-02-01",
		Status:          approval.StatusPending,
		Approvals:       approval.ApproverSet{},
	}
	// two votes already in; the caller completes the quorum of three
	s.Approvals.Add("adminadminadminadminadminadmin01")
	s.Approvals.Add("adminadminadminadminadminadmin02")

	var saved *savingDomain.Saving
	repo := &savingmock.Repo{
		GetBySavingIDForUpdateFn: func(ctx context.Context, savingID string) (*savingDomain.Saving, error) {
			return s, nil
		},
		SaveFn: func(ctx context.Context, rec *savingDomain.Saving) error {
			saved = rec
			return nil
		},
	}
	approvals := approvaluc.NewUsecase(uowmock.Passthrough(uow.Repos{Savings: repo}))
	h := NewSavingHandler(nil, approvals)

	body := `{"approved_amount":"280","approved_date":"2026-02-03"}`
	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/savings/:saving_id/approve")
	c.SetParamNames("saving_id")
	c.SetParamValues(s.SavingID)
	c.Set("member_uid", "adminadminadminadminadminadmin03")

	if err := h.ApproveSaving(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Completed bool `json:"completed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Completed {
		t.Fatal("third vote should complete the quorum")
	}
	if saved == nil {
		t.Fatal("record was never saved")
	}
	if !saved.ApprovedAmount.Valid || saved.ApprovedAmount.Decimal.String() != "280" {
		t.Errorf("approved_amount = %+v, want 280", saved.ApprovedAmount)
	}
	if saved.ApprovedDate != "2026-02-03" {
		t.Errorf("approved_date = %q, want 2026-02-03", saved.ApprovedDate)
	}
}

func TestApproveSaving_BadDateRejected(t *testing.T) {
	h := NewSavingHandler(nil, nil)

	body := `{"approved_date":"03/02/2026"}`
	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/savings/:saving_id/approve")
	c.SetParamNames("saving_id")
	c.SetParamValues("feedfacefeedfacefeedfacefeedface")

	if err := h.ApproveSaving(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body %s", rec.Code, rec.Body.String())
	}
}
