package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	memberDomain "sacco-backend/internal/domain/member"
	"sacco-backend/internal/testutil/membermock"
)

const (
	adminUID  = "adminadminadminadminadminadmin00"
	memberUID = "0123456789abcdef0123456789abcdef"
)

func runGuarded(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if header != "" {
		req.Header.Set("Ax-Member-Id", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	return rec, reached
}

func TestRequireApprover(t *testing.T) {
	members := &membermock.Repo{
		GetByMemberUIDFn: func(ctx context.Context, uid string) (*memberDomain.Member, error) {
			switch uid {
			case adminUID:
				return &memberDomain.Member{MemberUID: uid, Role: memberDomain.RoleAdmin}, nil
			case memberUID:
				return &memberDomain.Member{MemberUID: uid, Role: memberDomain.RoleMember}, nil
			default:
				return nil, gorm.ErrRecordNotFound
			}
		},
	}
	mw := RequireApprover(members)

	cases := []struct {
		name        string
		header      string
		wantCode    int
		wantReached bool
	}{
		{"missing header", "", http.StatusUnauthorized, false},
		{"malformed uid", "not-hex", http.StatusUnauthorized, false},
		{"unknown member", "feedfacefeedfacefeedfacefeedface", http.StatusUnauthorized, false},
		{"plain member forbidden", memberUID, http.StatusForbidden, false},
		{"admin passes", adminUID, http.StatusOK, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, reached := runGuarded(t, mw, tc.header)
			if rec.Code != tc.wantCode {
				t.Errorf("status = %d, want %d; body %s", rec.Code, tc.wantCode, rec.Body.String())
			}
			if reached != tc.wantReached {
				t.Errorf("handler reached = %v, want %v", reached, tc.wantReached)
			}
		})
	}
}

func TestRequireApprover_StashesCallerUID(t *testing.T) {
	members := &membermock.Repo{
		GetByMemberUIDFn: func(ctx context.Context, uid string) (*memberDomain.Member, error) {
			return &memberDomain.Member{MemberUID: uid, Role: memberDomain.RoleAdmin}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Ax-Member-Id", adminUID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	h := RequireApprover(members)(func(c echo.Context) error {
		got, _ = c.Get("member_uid").(string)
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if got != adminUID {
		t.Errorf("member_uid in context = %q, want %q", got, adminUID)
	}
}

func TestRequireMember_AllowsNonAdmins(t *testing.T) {
	members := &membermock.Repo{
		GetByMemberUIDFn: func(ctx context.Context, uid string) (*memberDomain.Member, error) {
			if uid == memberUID {
				return &memberDomain.Member{MemberUID: uid, Role: memberDomain.RoleMember}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	mw := RequireMember(members)

	rec, reached := runGuarded(t, mw, memberUID)
	if rec.Code != http.StatusOK || !reached {
		t.Errorf("known member should pass: code %d reached %v", rec.Code, reached)
	}

	rec, reached = runGuarded(t, mw, "feedfacefeedfacefeedfacefeedface")
	if rec.Code != http.StatusUnauthorized || reached {
		t.Errorf("unknown member should be rejected: code %d reached %v", rec.Code, reached)
	}
}
