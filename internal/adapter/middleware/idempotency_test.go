package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func idempHeaders(req *http.Request, reqID string) {
	req.Header.Set("Ax-Request-Id", reqID)
	req.Header.Set("Ax-Request-At", strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set("Ax-Member-Id", "0123456789abcdef0123456789abcdef")
}

func serveIdemp(t *testing.T, e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_MissingHeaders(t *testing.T) {
	rdb := newTestRedis(t)
	e := echo.New()
	e.Use(IdempotencyMiddleware(rdb, time.Minute))
	e.POST("/loans", func(c echo.Context) error { return c.NoContent(http.StatusCreated) })

	cases := []struct {
		name string
		prep func(*http.Request)
	}{
		{"no request id", func(r *http.Request) {
			r.Header.Set("Ax-Request-At", strconv.FormatInt(time.Now().Unix(), 10))
			r.Header.Set("Ax-Member-Id", "0123456789abcdef0123456789abcdef")
		}},
		{"no request at", func(r *http.Request) {
			r.Header.Set("Ax-Request-Id", "0123456789abcdef0123456789abcdef")
			r.Header.Set("Ax-Member-Id", "0123456789abcdef0123456789abcdef")
		}},
		{"no member id", func(r *http.Request) {
			r.Header.Set("Ax-Request-Id", "0123456789abcdef0123456789abcdef")
			r.Header.Set("Ax-Request-At", strconv.FormatInt(time.Now().Unix(), 10))
		}},
		{"skewed request at", func(r *http.Request) {
			idempHeaders(r, "0123456789abcdef0123456789abcdef")
			r.Header.Set("Ax-Request-At", strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/loans", nil)
			tc.prep(req)
			rec := serveIdemp(t, e, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestIdempotency_SkipsReadRequests(t *testing.T) {
	rdb := newTestRedis(t)
	e := echo.New()
	e.Use(IdempotencyMiddleware(rdb, time.Minute))
	e.GET("/loans", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	// no Ax-* headers at all
	req := httptest.NewRequest(http.MethodGet, "/loans", nil)
	rec := serveIdemp(t, e, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET should bypass the guard: status = %d", rec.Code)
	}
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	rdb := newTestRedis(t)
	var hits int64

	e := echo.New()
	e.Use(IdempotencyMiddleware(rdb, time.Minute))
	e.POST("/loans", func(c echo.Context) error {
		atomic.AddInt64(&hits, 1)
		return c.JSON(http.StatusCreated, map[string]string{"loan_id": "deadbeefdeadbeefdeadbeefdeadbeef"})
	})

	const reqID = "9f2b4a1e-8c3d-4f5a-9b6c-1d2e3f4a5b6c"
	body := `{"amount":"100"}`

	first := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(body))
	first.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	idempHeaders(first, reqID)
	rec1 := serveIdemp(t, e, first)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first call status = %d, want 201", rec1.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(body))
	second.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	idempHeaders(second, reqID)
	rec2 := serveIdemp(t, e, second)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("replay status = %d, want 201; body %s", rec2.Code, rec2.Body.String())
	}
	if rec2.Body.String() != rec1.Body.String() {
		t.Errorf("replayed body differs: %q vs %q", rec2.Body.String(), rec1.Body.String())
	}
	if n := atomic.LoadInt64(&hits); n != 1 {
		t.Errorf("handler ran %d times, want 1", n)
	}
}

func TestIdempotency_RejectsReusedIDWithDifferentBody(t *testing.T) {
	rdb := newTestRedis(t)
	e := echo.New()
	e.Use(IdempotencyMiddleware(rdb, time.Minute))
	e.POST("/savings", func(c echo.Context) error { return c.NoContent(http.StatusCreated) })

	const reqID = "0123456789abcdef0123456789abcdef"

	first := httptest.NewRequest(http.MethodPost, "/savings", strings.NewReader(`{"a":1}`))
	idempHeaders(first, reqID)
	if rec := serveIdemp(t, e, first); rec.Code != http.StatusCreated {
		t.Fatalf("first call status = %d", rec.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/savings", strings.NewReader(`{"a":2}`))
	idempHeaders(second, reqID)
	rec := serveIdemp(t, e, second)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409; body %s", rec.Code, rec.Body.String())
	}
}
