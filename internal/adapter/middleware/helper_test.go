package middleware

import (
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"0123456789abcdef0123456789abcdef", true},
		{"9f2b4a1e-8c3d-4f5a-9b6c-1d2e3f4a5b6c", true},
		{"9F2B4A1E-8C3D-4F5A-9B6C-1D2E3F4A5B6C", true}, // folded to lowercase
		{"short", false},
		{"", false},
		{"0123456789abcdef0123456789abcdeg", false},
	}
	for _, tc := range cases {
		if got := validReqID(tc.id); got != tc.want {
			t.Errorf("validReqID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestParseAxRequestAt(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"epoch seconds", "1736123456", time.Unix(1736123456, 0).UTC(), false},
		{"epoch millis", "1736123456789", time.UnixMilli(1736123456789).UTC(), false},
		{"rfc3339 zulu", "2026-08-28T10:00:00Z", time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), false},
		{"rfc3339 offset", "2026-08-28T17:00:00+07:00", time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), false},
		{"naive local rejected", "2026-08-28T10:00:00", time.Time{}, true},
		{"empty", "", time.Time{}, true},
		{"garbage", "yesterday", time.Time{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseAxRequestAt(tc.raw)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && !got.Equal(tc.want) {
				t.Errorf("parsed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/loans/:loan_id/approve", "0123456789abcdef0123456789abcdef", "req-1")
	want := "idemp:ax:post:/loans/:loan_id/approve:0123456789abcdef0123456789abcdef:req-1"
	if got != want {
		t.Errorf("buildKey = %q, want %q", got, want)
	}
}
