package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	approvalDomain "sacco-backend/internal/domain/approval"
	loanDomain "sacco-backend/internal/domain/loan"
	"sacco-backend/pkg/id"
)

type Usecase struct{ repo loanDomain.Repository }

func NewUsecase(r loanDomain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateLoanInput struct {
	MemberUID         string          `json:"member_uid"`
	Amount            decimal.Decimal `json:"amount"`
	Purpose           string          `json:"purpose"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	DurationMonths    int             `json:"duration_months"`
	RequiredApprovals int             `json:"required_approvals"`
}

type LoanDTO struct {
	LoanID               string                `json:"loan_id"`
	MemberUID            string                `json:"member_uid"`
	Amount               decimal.Decimal       `json:"amount"`
	Purpose              string                `json:"purpose"`
	InterestRate         decimal.Decimal       `json:"interest_rate"`
	DurationMonths       int                   `json:"duration_months"`
	MonthlyPayment       decimal.Decimal       `json:"monthly_payment"`
	FinalExpectedPayment decimal.Decimal       `json:"final_expected_payment"`
	Status               approvalDomain.Status `json:"status"`
	Approvals            []string              `json:"approvals"`
	RequiredApprovals    int                   `json:"required_approvals"`
	CreatedAt            time.Time             `json:"created_at"`
}

func toDTO(l *loanDomain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:               l.LoanID,
		MemberUID:            l.MemberUID,
		Amount:               l.Amount,
		Purpose:              l.Purpose,
		InterestRate:         l.InterestRate,
		DurationMonths:       l.DurationMonths,
		MonthlyPayment:       l.MonthlyPayment,
		FinalExpectedPayment: l.FinalExpectedPayment,
		Status:               l.ApprovalStatus(),
		Approvals:            l.Approvals.List(),
		RequiredApprovals:    l.RequiredApprovals,
		CreatedAt:            l.CreatedAt,
	}
}

var oneHundred = decimal.NewFromInt(100)

// PaymentSchedule derives the repayment figures the dashboard shows:
// monthly = amount*(1+rate/100)/duration, final = monthly*duration, both
// rounded to 2 places.
func PaymentSchedule(amount, rate decimal.Decimal, durationMonths int) (monthly, final decimal.Decimal) {
	dur := decimal.NewFromInt(int64(durationMonths))
	gross := amount.Mul(decimal.NewFromInt(1).Add(rate.Div(oneHundred)))
	monthly = gross.Div(dur).Round(2)
	final = monthly.Mul(dur).Round(2)
	return monthly, final
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.MemberUID == "" || len(in.MemberUID) != 32 {
		return nil, fmt.Errorf("%w: member_uid must be 32-char hex", approvalDomain.ErrInvalidInput)
	}
	if in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", approvalDomain.ErrInvalidInput)
	}
	if in.DurationMonths < 1 {
		return nil, fmt.Errorf("%w: duration_months must be at least 1", approvalDomain.ErrInvalidInput)
	}
	quorum := in.RequiredApprovals
	if quorum < 1 {
		quorum = loanDomain.DefaultRequiredApprovals
	}

	monthly, final := PaymentSchedule(in.Amount, in.InterestRate, in.DurationMonths)
	l := &loanDomain.Loan{
		LoanID:               id.NewID32(),
		MemberUID:            in.MemberUID,
		Amount:               in.Amount,
		Purpose:              in.Purpose,
		InterestRate:         in.InterestRate,
		DurationMonths:       in.DurationMonths,
		MonthlyPayment:       monthly,
		FinalExpectedPayment: final,
		Status:               approvalDomain.StatusPending,
		Approvals:            approvalDomain.ApproverSet{},
		RequiredApprovals:    quorum,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) ListPending(ctx context.Context) ([]LoanDTO, error) {
	loans, err := u.repo.ListByStatus(ctx, approvalDomain.StatusPending)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	loans, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

func toDTOs(loans []loanDomain.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out
}
