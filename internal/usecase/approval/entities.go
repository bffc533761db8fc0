package approval

import (
	"time"

	"github.com/shopspring/decimal"

	approvalDomain "sacco-backend/internal/domain/approval"
	expDomain "sacco-backend/internal/domain/expenditure"
	loanDomain "sacco-backend/internal/domain/loan"
	savingDomain "sacco-backend/internal/domain/saving"
)

// SavingOverrides lets the quorum-completing approver fix terms that differ
// from the submission. Nil/empty fields fall back to the submitted values.
type SavingOverrides struct {
	ApprovedAmount *decimal.Decimal
	ApprovedDate   string
}

type LoanDTO struct {
	LoanID            string                `json:"loan_id"`
	MemberUID         string                `json:"member_uid"`
	Amount            decimal.Decimal       `json:"amount"`
	Status            approvalDomain.Status `json:"status"`
	Approvals         []string              `json:"approvals"`
	RequiredApprovals int                   `json:"required_approvals"`
	ApprovedAt        *time.Time            `json:"approved_at,omitempty"`
}

type SavingDTO struct {
	SavingID        string                `json:"saving_id"`
	MemberUID       string                `json:"member_uid"`
	SubmittedAmount decimal.Decimal       `json:"submitted_amount"`
	ApprovedAmount  *decimal.Decimal      `json:"approved_amount,omitempty"`
	ApprovedDate    string                `json:"approved_date,omitempty"`
	Status          approvalDomain.Status `json:"status"`
	Approvals       []string              `json:"approvals"`
	ApprovedAt      *time.Time            `json:"approved_at,omitempty"`
}

type ExpenditureDTO struct {
	ExpenditureID string                `json:"expenditure_id"`
	Amount        decimal.Decimal       `json:"amount"`
	Category      string                `json:"category"`
	Status        approvalDomain.Status `json:"status"`
	Approvals     []string              `json:"approvals"`
	ApprovedAt    *time.Time            `json:"approved_at,omitempty"`
}

func toLoanDTO(l *loanDomain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:            l.LoanID,
		MemberUID:         l.MemberUID,
		Amount:            l.Amount,
		Status:            l.ApprovalStatus(),
		Approvals:         l.Approvals.List(),
		RequiredApprovals: l.RequiredApprovals,
		ApprovedAt:        l.ApprovedAt,
	}
}

func toSavingDTO(s *savingDomain.Saving) *SavingDTO {
	dto := &SavingDTO{
		SavingID:        s.SavingID,
		MemberUID:       s.MemberUID,
		SubmittedAmount: s.SubmittedAmount,
		ApprovedDate:    s.ApprovedDate,
		Status:          s.ApprovalStatus(),
		Approvals:       s.Approvals.List(),
		ApprovedAt:      s.ApprovedAt,
	}
	if s.ApprovedAmount.Valid {
		amt := s.ApprovedAmount.Decimal
		dto.ApprovedAmount = &amt
	}
	return dto
}

func toExpenditureDTO(e *expDomain.Expenditure) *ExpenditureDTO {
	return &ExpenditureDTO{
		ExpenditureID: e.ExpenditureID,
		Amount:        e.Amount,
		Category:      e.Category,
		Status:        e.ApprovalStatus(),
		Approvals:     e.Approvals.List(),
		ApprovedAt:    e.ApprovedAt,
	}
}
