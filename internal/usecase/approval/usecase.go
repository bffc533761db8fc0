package approval

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	approvalDomain "sacco-backend/internal/domain/approval"
	"sacco-backend/internal/domain/uow"
)

// Usecase is the quorum engine. Each Approve* call runs the whole
// read-mutate-check-transition sequence inside one row-locked transaction;
// duplicate and late votes are silent no-ops. The caller must already hold
// the approver capability — that check lives at the transport boundary.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type voteResult struct {
	// counted: this call added a new distinct approver.
	counted bool
	// completed: this call pushed the set over the threshold.
	completed bool
}

// castVote applies one approver's vote to any votable record. Approving a
// non-pending record or re-voting changes nothing.
func castVote(v approvalDomain.Votable, approverID string, now time.Time) voteResult {
	if v.ApprovalStatus() != approvalDomain.StatusPending {
		return voteResult{}
	}
	if !v.RecordApprover(approverID) {
		return voteResult{}
	}
	out := voteResult{counted: true}
	if approvalDomain.QuorumMet(v) {
		v.MarkApproved(now)
		out.completed = true
	}
	return out
}

func translateFetchErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return approvalDomain.ErrNotFound
	}
	return err
}

// ApproveLoan records approverID's vote on a loan request. completed reports
// whether this exact call met the quorum, so downstream effects fire once.
func (u *Usecase) ApproveLoan(ctx context.Context, loanID, approverID string) (dto *LoanDTO, completed bool, err error) {
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, ferr := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if ferr != nil {
			return translateFetchErr(ferr)
		}
		res := castVote(l, approverID, time.Now().UTC())
		if res.counted {
			if serr := r.Loans.Save(ctx, l); serr != nil {
				return serr
			}
		}
		dto, completed = toLoanDTO(l), res.completed
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return dto, completed, nil
}

// ApproveSaving records a vote on a savings deposit. The approver that
// completes the quorum fixes approvedAmount/approvedDate, from overrides when
// supplied and from the submission otherwise.
func (u *Usecase) ApproveSaving(ctx context.Context, savingID, approverID string, overrides *SavingOverrides) (dto *SavingDTO, completed bool, err error) {
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, ferr := r.Savings.GetBySavingIDForUpdate(ctx, savingID)
		if ferr != nil {
			return translateFetchErr(ferr)
		}
		res := castVote(s, approverID, time.Now().UTC())
		if res.completed {
			if overrides != nil {
				s.FixApprovedTerms(overrides.ApprovedAmount, overrides.ApprovedDate)
			} else {
				s.FixApprovedTerms(nil, "")
			}
		}
		if res.counted {
			if serr := r.Savings.Save(ctx, s); serr != nil {
				return serr
			}
		}
		dto, completed = toSavingDTO(s), res.completed
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return dto, completed, nil
}

// ApproveExpenditure records a vote on an expenditure claim.
func (u *Usecase) ApproveExpenditure(ctx context.Context, expenditureID, approverID string) (dto *ExpenditureDTO, completed bool, err error) {
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		e, ferr := r.Expenditures.GetByExpenditureIDForUpdate(ctx, expenditureID)
		if ferr != nil {
			return translateFetchErr(ferr)
		}
		res := castVote(e, approverID, time.Now().UTC())
		if res.counted {
			if serr := r.Expenditures.Save(ctx, e); serr != nil {
				return serr
			}
		}
		dto, completed = toExpenditureDTO(e), res.completed
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return dto, completed, nil
}
