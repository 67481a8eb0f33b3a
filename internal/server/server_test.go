package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	activityHttp "herring/internal/activity/adapters/http/fiber"
	puzzlesHttp "herring/internal/puzzles/adapters/http/fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(ctx context.Context) error {
	return f.err
}

func newTestApp(t *testing.T, db Pinger) (*fiber.App, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return New(logger, db, Options{AllowOrigins: "*"}), &buf
}

func doRequest(t *testing.T, app *fiber.App, method, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, path, nil), -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, body
}

// ------------------------------------------------------------
// HEALTH
// ------------------------------------------------------------

func TestHealthz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{"ok", nil, http.StatusOK, "ok"},
		{"db down", errors.New("connection refused"), http.StatusServiceUnavailable, "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, fakePinger{err: tt.pingErr})
			resp, body := doRequest(t, app, http.MethodGet, "/healthz")

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}

			var out map[string]string
			if err := json.Unmarshal(body, &out); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if out["status"] != tt.wantBody {
				t.Fatalf("expected status %q, got %q", tt.wantBody, out["status"])
			}
		})
	}
}

// ------------------------------------------------------------
// MIDDLEWARE
// ------------------------------------------------------------

func TestRequestIDAndAccessLog(t *testing.T) {
	app, logs := newTestApp(t, fakePinger{})
	resp, _ := doRequest(t, app, http.MethodGet, "/healthz")

	id := resp.Header.Get(fiber.HeaderXRequestID)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid request id, got %q", id)
	}

	var rec map[string]any
	if err := json.Unmarshal(logs.Bytes(), &rec); err != nil {
		t.Fatalf("expected one JSON log record, got %q", logs.String())
	}
	if rec["request_id"] != id || rec["path"] != "/healthz" || rec["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected access log %v", rec)
	}
}

func TestRecoverReturnsJSON500(t *testing.T) {
	app, logs := newTestApp(t, fakePinger{})
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("kaboom")
	})

	resp, body := doRequest(t, app, http.MethodGet, "/boom")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "internal_server_error") {
		t.Fatalf("unexpected body %s", body)
	}
	if !strings.Contains(logs.String(), `"status":500`) {
		t.Fatalf("expected access log with status 500, got %s", logs.String())
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	app, _ := newTestApp(t, fakePinger{})
	resp, body := doRequest(t, app, http.MethodGet, "/nope")

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("expected JSON error body, got %s", body)
	}
	if out["error"] != "http_error" {
		t.Fatalf("unexpected body %v", out)
	}
}

// ------------------------------------------------------------
// ROUTES
// ------------------------------------------------------------

func TestRegister(t *testing.T) {
	app, _ := newTestApp(t, fakePinger{})
	Register(app, Handlers{
		Puzzles:  puzzlesHttp.NewPuzzleHandler(nil, nil, nil, nil, nil, puzzlesHttp.Settings{}),
		Activity: activityHttp.NewActivityHandler(nil, nil, nil),
	})

	want := map[string]bool{
		"GET /puzzles":                 false,
		"POST /puzzles/:id":            false,
		"POST /rounds":                 false,
		"POST /rounds/:id/puzzles":     false,
		"GET /s/:id":                   false,
		"GET /puzzles/:slug/activity":  false,
		"POST /puzzles/:slug/activity": false,
		"POST /puzzles/:slug/members":  false,
		"POST /activity/bulk":          false,
		"GET /healthz":                 false,
	}

	for _, r := range app.GetRoutes(true) {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}

	for route, found := range want {
		if !found {
			t.Errorf("route %s not registered", route)
		}
	}
}
