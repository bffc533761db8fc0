package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	approvaluc "sacco-backend/internal/usecase/approval"
	savinguc "sacco-backend/internal/usecase/saving"
)

type SavingHandler struct {
	uc        *savinguc.Usecase
	approvals *approvaluc.Usecase
}

func NewSavingHandler(uc *savinguc.Usecase, approvals *approvaluc.Usecase) *SavingHandler {
	return &SavingHandler{uc: uc, approvals: approvals}
}

type createSavingReq struct {
	MemberUID       string          `json:"member_uid"       validate:"required,hex32"`
	MemberName      string          `json:"member_name"      validate:"required"`
	SubmittedAmount decimal.Decimal `json:"submitted_amount" validate:"required"`
	SubmittedDate   string          `json:"submitted_date"   validate:"required,datetime=2006-01-02"`
}

func (h *SavingHandler) CreateSaving(c echo.Context) error {
	var req createSavingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), savinguc.CreateSavingInput(req))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SavingHandler) ListSavings(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type approveSavingReq struct {
	// Optional terms fixed by the approver who completes the quorum.
	ApprovedAmount *decimal.Decimal `json:"approved_amount"`
	ApprovedDate   string           `json:"approved_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *SavingHandler) ApproveSaving(c echo.Context) error {
	savingID := c.Param("saving_id")
	if savingID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing saving_id path param"})
	}
	var req approveSavingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	overrides := &approvaluc.SavingOverrides{
		ApprovedAmount: req.ApprovedAmount,
		ApprovedDate:   req.ApprovedDate,
	}
	dto, completed, err := h.approvals.ApproveSaving(c.Request().Context(), savingID, callerUID(c), overrides)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, approveResp{Record: dto, Completed: completed})
}
