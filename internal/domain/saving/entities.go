package saving

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sacco-backend/internal/domain/approval"
	"sacco-backend/pkg/timeutil"
)

// RequiredApprovals is fixed for savings deposits.
const RequiredApprovals = 3

type Saving struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	SavingID        string          `gorm:"column:saving_id;size:32;uniqueIndex:ux_savings_saving_id_active" json:"saving_id"`
	MemberUID       string          `gorm:"column:member_uid;size:32;index:idx_savings_member_active" json:"member_uid"`
	MemberName      string          `gorm:"column:member_name;size:128" json:"member_name"`
	SubmittedAmount decimal.Decimal `gorm:"column:submitted_amount;type:decimal(18,2)" json:"submitted_amount"`
	// Date string as submitted on the form (YYYY-MM-DD).
	SubmittedDate string `gorm:"column:submitted_date;size:32" json:"submitted_date"`
	// Legacy timestamp used for time-bucketed statistics; imported rows may
	// carry any of the old store's shapes, or none.
	SubmittedAt timeutil.FlexTime `gorm:"column:submitted_at" json:"submitted_at"`
	// Fixed by the approver who completes the quorum; immutable afterwards.
	ApprovedAmount decimal.NullDecimal  `gorm:"column:approved_amount;type:decimal(18,2)" json:"approved_amount"`
	ApprovedDate   string               `gorm:"column:approved_date;size:32" json:"approved_date,omitempty"`
	Status         approval.Status      `gorm:"column:status;type:enum('pending','approved');default:'pending'" json:"status"`
	Approvals      approval.ApproverSet `gorm:"column:approvals" json:"approvals"`
	ApprovedAt     *time.Time           `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt       `gorm:"column:deleted_at;index" json:"-"`
}

func (Saving) TableName() string { return "savings" }

var _ approval.Votable = (*Saving)(nil)

func (s *Saving) ApprovalStatus() approval.Status { return approval.NormalizeStatus(string(s.Status)) }
func (s *Saving) Approvers() approval.ApproverSet { return s.Approvals }
func (s *Saving) Quorum() int                     { return RequiredApprovals }

func (s *Saving) RecordApprover(approverID string) bool {
	if s.Approvals == nil {
		s.Approvals = approval.ApproverSet{}
	}
	return s.Approvals.Add(approverID)
}

func (s *Saving) MarkApproved(at time.Time) {
	s.Status = approval.StatusApproved
	t := at.UTC()
	s.ApprovedAt = &t
}

// FixApprovedTerms records the final amount/date supplied by the quorum-
// completing approver, falling back to the submitted values.
func (s *Saving) FixApprovedTerms(amount *decimal.Decimal, date string) {
	if amount != nil {
		s.ApprovedAmount = decimal.NewNullDecimal(*amount)
	} else {
		s.ApprovedAmount = decimal.NewNullDecimal(s.SubmittedAmount)
	}
	if date != "" {
		s.ApprovedDate = date
	} else {
		s.ApprovedDate = s.SubmittedDate
	}
}
