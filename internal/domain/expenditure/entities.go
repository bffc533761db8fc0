package expenditure

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sacco-backend/internal/domain/approval"
	"sacco-backend/pkg/timeutil"
)

// RequiredApprovals is fixed for expenditure claims.
const RequiredApprovals = 2

type Expenditure struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	ExpenditureID string          `gorm:"column:expenditure_id;size:32;uniqueIndex:ux_expenditures_id_active" json:"expenditure_id"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	Category      string          `gorm:"column:category;size:64" json:"category"`
	Description   string          `gorm:"column:description;type:text" json:"description"`
	// When the money was spent; legacy rows may carry any of the old
	// store's timestamp shapes.
	SpentAt    timeutil.FlexTime    `gorm:"column:spent_at" json:"date"`
	RecordedBy string               `gorm:"column:recorded_by;size:32;index:idx_expenditures_recorder" json:"recorded_by"`
	Status     approval.Status      `gorm:"column:status;type:enum('pending','approved');default:'pending'" json:"status"`
	Approvals  approval.ApproverSet `gorm:"column:approvals" json:"approvals"`
	ApprovedAt *time.Time           `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CreatedAt  time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt       `gorm:"column:deleted_at;index" json:"-"`
}

func (Expenditure) TableName() string { return "expenditures" }

var _ approval.Votable = (*Expenditure)(nil)

func (e *Expenditure) ApprovalStatus() approval.Status {
	// Imported rows used "Pending"/"Approved"; fold the casing.
	return approval.NormalizeStatus(string(e.Status))
}
func (e *Expenditure) Approvers() approval.ApproverSet { return e.Approvals }
func (e *Expenditure) Quorum() int                     { return RequiredApprovals }

func (e *Expenditure) RecordApprover(approverID string) bool {
	if e.Approvals == nil {
		e.Approvals = approval.ApproverSet{}
	}
	return e.Approvals.Add(approverID)
}

func (e *Expenditure) MarkApproved(at time.Time) {
	e.Status = approval.StatusApproved
	t := at.UTC()
	e.ApprovedAt = &t
}
