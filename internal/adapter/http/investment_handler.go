package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	invuc "sacco-backend/internal/usecase/investment"
)

type InvestmentHandler struct{ uc *invuc.Usecase }

func NewInvestmentHandler(uc *invuc.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type createInvestmentReq struct {
	Name           string          `json:"name"            validate:"required"`
	AmountInvested decimal.Decimal `json:"amount_invested" validate:"required"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	StartDate      string          `json:"start_date"      validate:"omitempty,datetime=2006-01-02"`
	MaturityDate   string          `json:"maturity_date"   validate:"omitempty,datetime=2006-01-02"`
}

func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	var req createInvestmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), invuc.CreateInvestmentInput(req))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) ListInvestments(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type resolveInvestmentReq struct {
	ProfitEarned decimal.Decimal `json:"profit_earned" validate:"required"`
	Notes        string          `json:"notes"`
}

// ResolveInvestment performs the single-authorizer active → resolved
// transition; the guard middleware has already verified the capability.
func (h *InvestmentHandler) ResolveInvestment(c echo.Context) error {
	investmentID := c.Param("investment_id")
	if investmentID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing investment_id path param"})
	}
	var req resolveInvestmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Resolve(c.Request().Context(), investmentID, callerUID(c), req.ProfitEarned, req.Notes)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
