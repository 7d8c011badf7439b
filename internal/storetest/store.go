// Package storetest runs an in-memory fake of the remote task store behind a
// real HTTP listener, with per-route status injection for failure tests.
package storetest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clive/todo-tui/internal/task"
)

// Route identifies one store endpoint for status injection.
type Route string

const (
	RouteCreate    Route = "POST /api/task"
	RouteList      Route = "GET /api/tasks"
	RouteDeleteOne Route = "DELETE /api/task/{id}"
	RouteDeleteAll Route = "DELETE /api/tasks"
)

// Store is the fake. The zero value is not usable; call New or Start.
type Store struct {
	mu       sync.Mutex
	tasks    []task.Task
	statuses map[Route]int
	requests []string
	nextID   func() string

	logger *log.Logger
	server *httptest.Server
}

// New creates a fake store without a listener. Use Handler to serve it.
func New(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		statuses: make(map[Route]int),
		nextID:   uuid.NewString,
		logger:   logger.WithPrefix("storetest"),
	}
}

// Start creates a fake store listening on a loopback port.
// The caller must Close it.
func Start(logger *log.Logger) *Store {
	s := New(logger)
	s.server = httptest.NewServer(s.Handler())
	return s
}

// URL returns the listener's base URL.
func (s *Store) URL() string {
	if s.server == nil {
		return ""
	}
	return s.server.URL
}

// Close shuts the listener down. Requests made afterwards fail at the
// transport level.
func (s *Store) Close() {
	if s.server != nil {
		s.server.Close()
	}
}

// UseSequentialIDs makes the store assign "1", "2", ... instead of UUIDs.
func (s *Store) UseSequentialIDs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	s.nextID = func() string {
		n++
		return strconv.Itoa(n)
	}
}

// FailWith makes route answer with status until cleared with status 0.
func (s *Store) FailWith(route Route, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.statuses, route)
		return
	}
	s.statuses[route] = status
}

// Seed stores tasks directly, bypassing HTTP, and returns them.
func (s *Store) Seed(descriptions ...string) []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	seeded := make([]task.Task, 0, len(descriptions))
	for _, d := range descriptions {
		t := task.Task{ID: s.nextID(), Description: d}
		s.tasks = append(s.tasks, t)
		seeded = append(seeded, t)
	}
	return seeded
}

// Tasks returns the stored tasks in insertion order.
func (s *Store) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Requests returns "METHOD /path" for every request received, in order.
func (s *Store) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

// Handler returns the chi router serving the store API.
func (s *Store) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(s.logger))
	r.Use(Recovery(s.logger))
	r.Use(s.record)

	r.Route("/api", func(r chi.Router) {
		r.Post("/task", s.inject(RouteCreate, s.create))
		r.Delete("/task/{id}", s.inject(RouteDeleteOne, s.deleteOne))
		r.Get("/tasks", s.inject(RouteList, s.list))
		r.Delete("/tasks", s.inject(RouteDeleteAll, s.deleteAll))
	})

	return r
}

func (s *Store) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.EscapedPath())
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Store) inject(route Route, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, ok := s.statuses[route]
		s.mu.Unlock()
		if ok {
			writeError(w, status, "injected failure")
			return
		}
		h(w, r)
	}
}

// create handles POST /api/task
func (s *Store) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	s.mu.Lock()
	t := task.Task{ID: s.nextID(), Description: req.Description}
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, t)
}

// list handles GET /api/tasks
func (s *Store) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Tasks())
}

// deleteOne handles DELETE /api/task/{id}
func (s *Store) deleteOne(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	removed := false
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if !removed {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}

// deleteAll handles DELETE /api/tasks
func (s *Store) deleteAll(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	n := len(s.tasks)
	s.tasks = nil
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "All tasks deleted successfully",
		"deletedCount": n,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
