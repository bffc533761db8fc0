package approval

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestApproverSet_AddCollapsesDuplicates(t *testing.T) {
	s := NewApproverSet()
	if !s.Add("a1") {
		t.Fatal("first Add returned false")
	}
	if s.Add("a1") {
		t.Fatal("duplicate Add returned true")
	}
	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}
	s.Add("b2")
	if got := s.List(); !reflect.DeepEqual(got, []string{"a1", "b2"}) {
		t.Fatalf("List = %v", got)
	}
}

func TestApproverSet_UnmarshalArray(t *testing.T) {
	var s ApproverSet
	if err := json.Unmarshal([]byte(`["x","y","x"]`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Count() != 2 || !s.Has("x") || !s.Has("y") {
		t.Fatalf("set = %v", s.List())
	}
}

func TestApproverSet_UnmarshalLegacyMap(t *testing.T) {
	// loans in the old store kept approvals as {uid: true}
	var s ApproverSet
	if err := json.Unmarshal([]byte(`{"u1":true,"u2":false,"u3":true}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Count() != 2 || !s.Has("u1") || !s.Has("u3") || s.Has("u2") {
		t.Fatalf("set = %v", s.List())
	}
}

func TestApproverSet_ScanValueRoundTrip(t *testing.T) {
	orig := NewApproverSet("c", "a", "b")
	v, err := orig.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var back ApproverSet
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(back.List(), []string{"a", "b", "c"}) {
		t.Fatalf("round trip = %v", back.List())
	}
}

func TestApproverSet_ScanNil(t *testing.T) {
	var s ApproverSet
	if err := s.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if s.Count() != 0 {
		t.Fatalf("Count = %d, want 0", s.Count())
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"pending", StatusPending},
		{"Pending", StatusPending},
		{"approved", StatusApproved},
		{"Approved", StatusApproved},
		{" APPROVED ", StatusApproved},
		{"", StatusPending},
		{"garbage", StatusPending},
	}
	for _, tt := range tests {
		if got := NormalizeStatus(tt.raw); got != tt.want {
			t.Fatalf("NormalizeStatus(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}
