package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// TaskServer is an httptest server speaking the /task collection contract.
// IDs are sequential integers starting at 1, encoded as JSON numbers.
type TaskServer struct {
	*httptest.Server

	mu     sync.Mutex
	tasks  []serverTask
	nextID int

	// FailStatus, when non-zero, is returned for every request.
	FailStatus int

	// RawBody, when non-empty, is written as a 200 response instead of
	// the real payload.
	RawBody string

	// Requests records method, content type and decoded title of each
	// request in arrival order.
	Requests []RecordedRequest
}

// RecordedRequest is one request seen by TaskServer.
type RecordedRequest struct {
	Method      string
	ContentType string
	Title       string
}

type serverTask struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// NewTaskServer starts a TaskServer seeded with titles. Close it when done.
func NewTaskServer(titles ...string) *TaskServer {
	s := &TaskServer{nextID: 1}
	for _, title := range titles {
		s.tasks = append(s.tasks, serverTask{ID: s.nextID, Title: title})
		s.nextID++
	}

	r := chi.NewRouter()
	r.Get("/task", s.list)
	r.Post("/task", s.create)
	s.Server = httptest.NewServer(r)
	return s
}

// SetNextID sets the id assigned to the next created task.
func (s *TaskServer) SetNextID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = id
}

// Count returns the number of stored tasks.
func (s *TaskServer) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *TaskServer) intercept(w http.ResponseWriter) bool {
	if s.FailStatus != 0 {
		http.Error(w, http.StatusText(s.FailStatus), s.FailStatus)
		return true
	}
	if s.RawBody != "" {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(s.RawBody))
		return true
	}
	return false
}

func (s *TaskServer) list(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requests = append(s.Requests, RecordedRequest{Method: r.Method})
	if s.intercept(w) {
		return
	}
	tasks := s.tasks
	if tasks == nil {
		tasks = []serverTask{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *TaskServer) create(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var body struct {
		Title string `json:"title"`
	}
	decodeErr := json.NewDecoder(r.Body).Decode(&body)
	s.Requests = append(s.Requests, RecordedRequest{
		Method:      r.Method,
		ContentType: r.Header.Get("Content-Type"),
		Title:       body.Title,
	})
	if s.intercept(w) {
		return
	}
	if decodeErr != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	task := serverTask{ID: s.nextID, Title: body.Title}
	s.nextID++
	s.tasks = append(s.tasks, task)
	writeJSON(w, http.StatusCreated, task)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
