package loan

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sacco-backend/internal/domain/approval"
)

// DefaultRequiredApprovals applies when a request does not set its own
// threshold.
const DefaultRequiredApprovals = 2

type Loan struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	LoanID               string               `gorm:"column:loan_id;size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	MemberUID            string               `gorm:"column:member_uid;size:32;index:idx_loans_member_active" json:"member_uid"`
	Amount               decimal.Decimal      `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	Purpose              string               `gorm:"column:purpose;type:text" json:"purpose"`
	InterestRate         decimal.Decimal      `gorm:"column:interest_rate;type:decimal(6,2)" json:"interest_rate"`
	DurationMonths       int                  `gorm:"column:duration_months" json:"duration_months"`
	MonthlyPayment       decimal.Decimal      `gorm:"column:monthly_payment;type:decimal(18,2)" json:"monthly_payment"`
	FinalExpectedPayment decimal.Decimal      `gorm:"column:final_expected_payment;type:decimal(18,2)" json:"final_expected_payment"`
	Status               approval.Status      `gorm:"column:status;type:enum('pending','approved');default:'pending'" json:"status"`
	Approvals            approval.ApproverSet `gorm:"column:approvals" json:"approvals"`
	RequiredApprovals    int                  `gorm:"column:required_approvals" json:"required_approvals"`
	ApprovedAt           *time.Time           `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CreatedAt            time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt       `gorm:"column:deleted_at;index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

var _ approval.Votable = (*Loan)(nil)

func (l *Loan) ApprovalStatus() approval.Status { return approval.NormalizeStatus(string(l.Status)) }
func (l *Loan) Approvers() approval.ApproverSet { return l.Approvals }
func (l *Loan) Quorum() int                     { return l.RequiredApprovals }

func (l *Loan) RecordApprover(approverID string) bool {
	if l.Approvals == nil {
		l.Approvals = approval.ApproverSet{}
	}
	return l.Approvals.Add(approverID)
}

func (l *Loan) MarkApproved(at time.Time) {
	l.Status = approval.StatusApproved
	t := at.UTC()
	l.ApprovedAt = &t
}
