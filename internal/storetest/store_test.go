package storetest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/clive/todo-tui/internal/task"
)

func serve(s *Store, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestCreateAssignsUUID(t *testing.T) {
	s := New(nil)

	w := serve(s, http.MethodPost, "/api/task", `{"description":"Buy milk"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var created task.Task
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Errorf("id %q is not a UUID: %v", created.ID, err)
	}
	if created.Description != "Buy milk" {
		t.Errorf("description = %q", created.Description)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestRoutes(t *testing.T) {
	s := New(nil)
	s.UseSequentialIDs()
	s.Seed("a", "b")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"bad json", http.MethodPost, "/api/task", `{`, http.StatusBadRequest},
		{"list", http.MethodGet, "/api/tasks", "", http.StatusOK},
		{"delete existing", http.MethodDelete, "/api/task/1", "", http.StatusOK},
		{"delete again", http.MethodDelete, "/api/task/1", "", http.StatusNotFound},
		{"delete all", http.MethodDelete, "/api/tasks", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := serve(s, tt.method, tt.path, tt.body); w.Code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, w.Code, tt.want)
			}
		})
	}

	if len(s.Tasks()) != 0 {
		t.Errorf("tasks left after delete all: %+v", s.Tasks())
	}
}

func TestFailWith(t *testing.T) {
	s := New(nil)
	s.FailWith(RouteList, http.StatusTeapot)

	if w := serve(s, http.MethodGet, "/api/tasks", ""); w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", w.Code)
	}

	s.FailWith(RouteList, 0)
	if w := serve(s, http.MethodGet, "/api/tasks", ""); w.Code != http.StatusOK {
		t.Errorf("status after clear = %d, want 200", w.Code)
	}
}

func TestRecoveryAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel, Formatter: log.LogfmtFormatter})

	h := Logger(logger)(Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	out := buf.String()
	if !strings.Contains(out, "panic recovered") || !strings.Contains(out, "status=500") {
		t.Errorf("log = %q", out)
	}
}
