package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	approvaluc "sacco-backend/internal/usecase/approval"
	expuc "sacco-backend/internal/usecase/expenditure"
)

type ExpenditureHandler struct {
	uc        *expuc.Usecase
	approvals *approvaluc.Usecase
}

func NewExpenditureHandler(uc *expuc.Usecase, approvals *approvaluc.Usecase) *ExpenditureHandler {
	return &ExpenditureHandler{uc: uc, approvals: approvals}
}

type createExpenditureReq struct {
	Amount      decimal.Decimal `json:"amount"      validate:"required"`
	Category    string          `json:"category"    validate:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	RecordedBy  string          `json:"recorded_by" validate:"required,hex32"`
}

func (h *ExpenditureHandler) CreateExpenditure(c echo.Context) error {
	var req createExpenditureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), expuc.CreateExpenditureInput(req))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ExpenditureHandler) ListExpenditures(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ExpenditureHandler) ApproveExpenditure(c echo.Context) error {
	expenditureID := c.Param("expenditure_id")
	if expenditureID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing expenditure_id path param"})
	}
	dto, completed, err := h.approvals.ApproveExpenditure(c.Request().Context(), expenditureID, callerUID(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, approveResp{Record: dto, Completed: completed})
}
