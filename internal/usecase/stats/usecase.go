package stats

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	expDomain "sacco-backend/internal/domain/expenditure"
	invDomain "sacco-backend/internal/domain/investment"
	memberDomain "sacco-backend/internal/domain/member"
	savingDomain "sacco-backend/internal/domain/saving"
)

// Usecase computes the fund snapshot. It is a pure read: no writes, and two
// calls with no intervening mutation return identical results. The scan is
// not transactionally consistent across collections; callers accept the
// approximation.
type Usecase struct {
	members      memberDomain.Repository
	savings      savingDomain.Repository
	investments  invDomain.Repository
	expenditures expDomain.Repository
}

func NewUsecase(members memberDomain.Repository, savings savingDomain.Repository, investments invDomain.Repository, expenditures expDomain.Repository) *Usecase {
	return &Usecase{members: members, savings: savings, investments: investments, expenditures: expenditures}
}

// FundSnapshot is derived on every call and never persisted.
type FundSnapshot struct {
	MembersCount         int64           `json:"members_count"`
	TotalSavings         decimal.Decimal `json:"total_savings"`
	TotalProfits         decimal.Decimal `json:"total_profits"`
	TotalExpenditures    decimal.Decimal `json:"total_expenditures"`
	TotalFund            decimal.Decimal `json:"total_fund"`
	MonthlyContributions decimal.Decimal `json:"monthly_contributions"`
	LastYearSavingsTotal decimal.Decimal `json:"last_year_savings_total"`
	AnnualGrowthPercent  decimal.Decimal `json:"annual_growth_percent"`
}

// AnnualGrowth renders the growth figure the way the dashboard expects:
// two decimal places and a trailing percent sign.
func (s FundSnapshot) AnnualGrowth() string {
	return s.AnnualGrowthPercent.StringFixed(2) + "%"
}

// StatisticsDTO is the legacy statistics endpoint shape.
type StatisticsDTO struct {
	MembersCount         int64           `json:"membersCount"`
	TotalFund            decimal.Decimal `json:"totalFund"`
	MonthlyContributions decimal.Decimal `json:"monthlyContributions"`
	AnnualGrowth         string          `json:"annualGrowth"`
}

func (s FundSnapshot) ToStatisticsDTO() StatisticsDTO {
	return StatisticsDTO{
		MembersCount:         s.MembersCount,
		TotalFund:            s.TotalFund,
		MonthlyContributions: s.MonthlyContributions,
		AnnualGrowth:         s.AnnualGrowth(),
	}
}

var oneHundred = decimal.NewFromInt(100)

// Snapshot scans the ledger as of asOf.
//
// Savings and expenditures are summed regardless of approval status,
// matching the dashboard the books were kept with; only resolved investments
// contribute profit. Savings with no resolvable timestamp still count toward
// the total but are excluded from the month/year buckets.
func (u *Usecase) Snapshot(ctx context.Context, asOf time.Time) (*FundSnapshot, error) {
	asOf = asOf.UTC()

	membersCount, err := u.members.Count(ctx)
	if err != nil {
		return nil, err
	}

	savings, err := u.savings.List(ctx)
	if err != nil {
		return nil, err
	}
	var totalSavings, monthly, lastYear decimal.Decimal
	for i := range savings {
		s := &savings[i]
		totalSavings = totalSavings.Add(s.SubmittedAmount)

		at, ok := s.SubmittedAt.Resolve()
		if !ok {
			log.Printf("stats: saving %s has no resolvable timestamp, skipping buckets", s.SavingID)
			continue
		}
		if at.Year() == asOf.Year() && at.Month() == asOf.Month() {
			monthly = monthly.Add(s.SubmittedAmount)
		}
		if at.Year() == asOf.Year()-1 {
			lastYear = lastYear.Add(s.SubmittedAmount)
		}
	}

	resolved, err := u.investments.ListByStatus(ctx, invDomain.StatusResolved)
	if err != nil {
		return nil, err
	}
	var totalProfits decimal.Decimal
	for i := range resolved {
		if resolved[i].ProfitEarned.Valid {
			totalProfits = totalProfits.Add(resolved[i].ProfitEarned.Decimal)
		}
	}

	exps, err := u.expenditures.List(ctx)
	if err != nil {
		return nil, err
	}
	var totalExpenditures decimal.Decimal
	for i := range exps {
		totalExpenditures = totalExpenditures.Add(exps[i].Amount)
	}

	totalFund := totalSavings.Add(totalProfits).Sub(totalExpenditures)

	var growth decimal.Decimal
	if !lastYear.IsZero() {
		growth = totalFund.Sub(lastYear).Div(lastYear).Mul(oneHundred)
	}

	return &FundSnapshot{
		MembersCount:         membersCount,
		TotalSavings:         totalSavings,
		TotalProfits:         totalProfits,
		TotalExpenditures:    totalExpenditures,
		TotalFund:            totalFund,
		MonthlyContributions: monthly,
		LastYearSavingsTotal: lastYear,
		AnnualGrowthPercent:  growth,
	}, nil
}
