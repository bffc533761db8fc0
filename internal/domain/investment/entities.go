package investment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sacco-backend/pkg/timeutil"
)

var ErrAlreadyResolved = errors.New("investment already resolved")

// Status is the investment lifecycle: active → resolved, no quorum involved.
type Status string

const (
	StatusActive   Status = "active"
	StatusResolved Status = "resolved"
)

type Investment struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	InvestmentID   string            `gorm:"column:investment_id;size:32;uniqueIndex:ux_investments_id_active" json:"investment_id"`
	Name           string            `gorm:"column:name;size:128" json:"name"`
	AmountInvested decimal.Decimal   `gorm:"column:amount_invested;type:decimal(18,2)" json:"amount_invested"`
	InterestRate   decimal.Decimal   `gorm:"column:interest_rate;type:decimal(6,2)" json:"interest_rate"`
	StartDate      timeutil.FlexTime `gorm:"column:start_date" json:"start_date"`
	MaturityDate   timeutil.FlexTime `gorm:"column:maturity_date" json:"maturity_date"`
	Status         Status            `gorm:"column:status;type:enum('active','resolved');default:'active'" json:"status"`
	// Set only at resolution, immutable afterwards.
	ProfitEarned    decimal.NullDecimal `gorm:"column:profit_earned;type:decimal(18,2)" json:"profit_earned"`
	ResolutionNotes string              `gorm:"column:resolution_notes;type:text" json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time          `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt      `gorm:"column:deleted_at;index" json:"-"`
}

func (Investment) TableName() string { return "investments" }
