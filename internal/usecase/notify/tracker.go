package notify

import (
	approvalDomain "sacco-backend/internal/domain/approval"
)

// Kind names the record collection an observation came from.
type Kind string

const (
	KindLoan        Kind = "loan"
	KindSaving      Kind = "saving"
	KindExpenditure Kind = "expenditure"
)

// Observation is one record's current status as seen on a refresh.
type Observation struct {
	Kind     Kind
	RecordID string
	Status   approvalDomain.Status
}

// Event fires exactly once per observed pending→approved edge, from the
// perspective of one observing session.
type Event struct {
	Kind     Kind                  `json:"kind"`
	RecordID string                `json:"record_id"`
	Status   approvalDomain.Status `json:"status"`
}

func trackKey(o Observation) string { return string(o.Kind) + ":" + o.RecordID }

// Diff is the edge detector: an event per record whose status is approved
// now but was not approved in prev (including never seen). next is the full
// replacement state, updated for every record whether or not it fired.
func Diff(prev map[string]approvalDomain.Status, current []Observation) (events []Event, next map[string]approvalDomain.Status) {
	next = make(map[string]approvalDomain.Status, len(current))
	for _, o := range current {
		key := trackKey(o)
		if o.Status == approvalDomain.StatusApproved && prev[key] != approvalDomain.StatusApproved {
			events = append(events, Event{Kind: o.Kind, RecordID: o.RecordID, Status: o.Status})
		}
		next[key] = o.Status
	}
	return events, next
}
