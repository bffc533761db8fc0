package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sacco-backend/internal/domain/approval"
	"sacco-backend/pkg/timeutil"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type loanSQLite struct {
	ID                   uint64               `gorm:"primaryKey;column:id"`
	LoanID               string               `gorm:"size:32;column:loan_id"`
	MemberUID            string               `gorm:"size:32;column:member_uid"`
	Amount               decimal.Decimal      `gorm:"type:numeric;column:amount"`
	Purpose              string               `gorm:"type:text;column:purpose"`
	InterestRate         decimal.Decimal      `gorm:"type:numeric;column:interest_rate"`
	DurationMonths       int                  `gorm:"column:duration_months"`
	MonthlyPayment       decimal.Decimal      `gorm:"type:numeric;column:monthly_payment"`
	FinalExpectedPayment decimal.Decimal      `gorm:"type:numeric;column:final_expected_payment"`
	Status               string               `gorm:"type:text;column:status"` // ← no enum
	Approvals            approval.ApproverSet `gorm:"column:approvals"`
	RequiredApprovals    int                  `gorm:"column:required_approvals"`
	ApprovedAt           *time.Time           `gorm:"column:approved_at"`
	CreatedAt            time.Time            `gorm:"column:created_at"`
	UpdatedAt            time.Time            `gorm:"column:updated_at"`
	DeletedAt            gorm.DeletedAt       `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type savingSQLite struct {
	ID              uint64               `gorm:"primaryKey;column:id"`
	SavingID        string               `gorm:"size:32;column:saving_id"`
	MemberUID       string               `gorm:"size:32;column:member_uid"`
	MemberName      string               `gorm:"column:member_name"`
	SubmittedAmount decimal.Decimal      `gorm:"type:numeric;column:submitted_amount"`
	SubmittedDate   string               `gorm:"column:submitted_date"`
	SubmittedAt     timeutil.FlexTime    `gorm:"column:submitted_at"`
	ApprovedAmount  decimal.NullDecimal  `gorm:"type:numeric;column:approved_amount"`
	ApprovedDate    string               `gorm:"column:approved_date"`
	Status          string               `gorm:"type:text;column:status"`
	Approvals       approval.ApproverSet `gorm:"column:approvals"`
	ApprovedAt      *time.Time           `gorm:"column:approved_at"`
	CreatedAt       time.Time            `gorm:"column:created_at"`
	UpdatedAt       time.Time            `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt       `gorm:"column:deleted_at"`
}

func (savingSQLite) TableName() string { return "savings" }

type expenditureSQLite struct {
	ID            uint64               `gorm:"primaryKey;column:id"`
	ExpenditureID string               `gorm:"size:32;column:expenditure_id"`
	Amount        decimal.Decimal      `gorm:"type:numeric;column:amount"`
	Category      string               `gorm:"column:category"`
	Description   string               `gorm:"type:text;column:description"`
	SpentAt       timeutil.FlexTime    `gorm:"column:spent_at"`
	RecordedBy    string               `gorm:"size:32;column:recorded_by"`
	Status        string               `gorm:"type:text;column:status"`
	Approvals     approval.ApproverSet `gorm:"column:approvals"`
	ApprovedAt    *time.Time           `gorm:"column:approved_at"`
	CreatedAt     time.Time            `gorm:"column:created_at"`
	UpdatedAt     time.Time            `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"column:deleted_at"`
}

func (expenditureSQLite) TableName() string { return "expenditures" }

type investmentSQLite struct {
	ID              uint64              `gorm:"primaryKey;column:id"`
	InvestmentID    string              `gorm:"size:32;column:investment_id"`
	Name            string              `gorm:"column:name"`
	AmountInvested  decimal.Decimal     `gorm:"type:numeric;column:amount_invested"`
	InterestRate    decimal.Decimal     `gorm:"type:numeric;column:interest_rate"`
	StartDate       timeutil.FlexTime   `gorm:"column:start_date"`
	MaturityDate    timeutil.FlexTime   `gorm:"column:maturity_date"`
	Status          string              `gorm:"type:text;column:status"`
	ProfitEarned    decimal.NullDecimal `gorm:"type:numeric;column:profit_earned"`
	ResolutionNotes string              `gorm:"type:text;column:resolution_notes"`
	ResolvedAt      *time.Time          `gorm:"column:resolved_at"`
	CreatedAt       time.Time           `gorm:"column:created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt      `gorm:"column:deleted_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

type memberSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	MemberUID string         `gorm:"size:32;column:member_uid"`
	Name      string         `gorm:"column:name"`
	Email     string         `gorm:"column:email"`
	Role      string         `gorm:"type:text;column:role"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (memberSQLite) TableName() string { return "members" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &savingSQLite{}, &expenditureSQLite{}, &investmentSQLite{}, &memberSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
