package approval

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrStoreFailure = errors.New("store operation failed")
)

// Status is the shared two-state lifecycle of every approvable record.
// Forward-only: pending → approved, no rejection path.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// NormalizeStatus folds the legacy cased variants ("Pending"/"Approved")
// found in imported expenditure rows into the canonical enum.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(StatusApproved):
		return StatusApproved
	default:
		return StatusPending
	}
}

// ApproverSet is a true set of approver ids. The legacy store held approvals
// as a map-of-booleans for loans and a string array for savings/expenditures;
// both collapse to this. Persisted as a sorted JSON array.
type ApproverSet map[string]struct{}

func NewApproverSet(ids ...string) ApproverSet {
	s := make(ApproverSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s ApproverSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id and reports whether the set changed.
func (s ApproverSet) Add(id string) bool {
	if s.Has(id) {
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s ApproverSet) Count() int { return len(s) }

func (s ApproverSet) List() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s ApproverSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

func (s *ApproverSet) UnmarshalJSON(b []byte) error {
	// Array form first, then the legacy map-of-booleans form.
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*s = NewApproverSet(arr...)
		return nil
	}
	var m map[string]bool
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	out := make(ApproverSet, len(m))
	for id, voted := range m {
		if voted {
			out[id] = struct{}{}
		}
	}
	*s = out
	return nil
}

func (s ApproverSet) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *ApproverSet) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = ApproverSet{}
		return nil
	case []byte:
		return s.UnmarshalJSON(v)
	case string:
		return s.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("approval: cannot scan %T into ApproverSet", src)
	}
}

// GormDataType keeps the column a plain text blob across dialects.
func (ApproverSet) GormDataType() string { return "text" }

// Votable is the trait every quorum-approved record kind exposes to the
// engine. Implementations mutate in memory only; persistence stays with the
// repositories so the engine can run the whole vote inside one row-locked
// transaction.
type Votable interface {
	ApprovalStatus() Status
	Approvers() ApproverSet
	Quorum() int
	// RecordApprover adds the approver to the set; reports false when the
	// approver had already voted.
	RecordApprover(approverID string) bool
	// MarkApproved flips the record to its terminal approved state.
	MarkApproved(at time.Time)
}

// QuorumMet reports whether the record's distinct-approver count has reached
// its threshold.
func QuorumMet(v Votable) bool {
	return v.Approvers().Count() >= v.Quorum()
}
