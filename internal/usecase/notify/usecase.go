package notify

import (
	"context"

	approvalDomain "sacco-backend/internal/domain/approval"
	expDomain "sacco-backend/internal/domain/expenditure"
	loanDomain "sacco-backend/internal/domain/loan"
	savingDomain "sacco-backend/internal/domain/saving"
)

// SessionStore keeps one observer's last-seen statuses between polls. This
// is per-session state with a short life, not a durable notification log.
type SessionStore interface {
	// Load returns the session's tracked statuses; seen is false when the
	// session has never observed before.
	Load(ctx context.Context, sessionID string) (statuses map[string]approvalDomain.Status, seen bool, err error)
	Store(ctx context.Context, sessionID string, statuses map[string]approvalDomain.Status) error
}

type Usecase struct {
	loans        loanDomain.Repository
	savings      savingDomain.Repository
	expenditures expDomain.Repository
	store        SessionStore
}

func NewUsecase(loans loanDomain.Repository, savings savingDomain.Repository, expenditures expDomain.Repository, store SessionStore) *Usecase {
	return &Usecase{loans: loans, savings: savings, expenditures: expenditures, store: store}
}

// Poll refreshes the session's view and returns the approval events that
// surfaced since its previous poll. A session's first poll seeds the tracker
// and emits nothing, so a fresh observer is not flooded with edges for
// records approved long ago.
func (u *Usecase) Poll(ctx context.Context, sessionID string) ([]Event, error) {
	current, err := u.observe(ctx)
	if err != nil {
		return nil, err
	}

	prev, seen, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var events []Event
	next := prev
	if seen {
		events, next = Diff(prev, current)
	} else {
		_, next = Diff(nil, current)
		events = nil
	}

	if err := u.store.Store(ctx, sessionID, next); err != nil {
		return nil, err
	}
	return events, nil
}

func (u *Usecase) observe(ctx context.Context) ([]Observation, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	savings, err := u.savings.List(ctx)
	if err != nil {
		return nil, err
	}
	exps, err := u.expenditures.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Observation, 0, len(loans)+len(savings)+len(exps))
	for i := range loans {
		out = append(out, Observation{Kind: KindLoan, RecordID: loans[i].LoanID, Status: loans[i].ApprovalStatus()})
	}
	for i := range savings {
		out = append(out, Observation{Kind: KindSaving, RecordID: savings[i].SavingID, Status: savings[i].ApprovalStatus()})
	}
	for i := range exps {
		out = append(out, Observation{Kind: KindExpenditure, RecordID: exps[i].ExpenditureID, Status: exps[i].ApprovalStatus()})
	}
	return out, nil
}
