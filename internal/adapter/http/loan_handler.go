package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	approvalDomain "sacco-backend/internal/domain/approval"
	approvaluc "sacco-backend/internal/usecase/approval"
	loanuc "sacco-backend/internal/usecase/loan"
)

type LoanHandler struct {
	uc        *loanuc.Usecase
	approvals *approvaluc.Usecase
}

func NewLoanHandler(uc *loanuc.Usecase, approvals *approvaluc.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, approvals: approvals}
}

type createLoanReq struct {
	MemberUID         string          `json:"member_uid"         validate:"required,hex32"`
	Amount            decimal.Decimal `json:"amount"             validate:"required"`
	Purpose           string          `json:"purpose"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	DurationMonths    int             `json:"duration_months"    validate:"required,min=1"`
	RequiredApprovals int             `json:"required_approvals" validate:"omitempty,min=1"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loanuc.CreateLoanInput(req))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	var (
		dtos []loanuc.LoanDTO
		err  error
	)
	if c.QueryParam("status") == string(approvalDomain.StatusPending) {
		dtos, err = h.uc.ListPending(c.Request().Context())
	} else {
		dtos, err = h.uc.List(c.Request().Context())
	}
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type approveResp struct {
	Record    any  `json:"record"`
	Completed bool `json:"completed"`
}

// ApproveLoan casts the caller's vote; the guard middleware has already
// verified the approver capability.
func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	dto, completed, err := h.approvals.ApproveLoan(c.Request().Context(), loanID, callerUID(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, approveResp{Record: dto, Completed: completed})
}
