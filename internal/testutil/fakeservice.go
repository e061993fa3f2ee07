// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tasklist/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	tasks []service.Task

	// NextID, when set, supplies the ID of the next created task.
	// Otherwise a random UUID is used.
	NextID func() string

	// Error injection for testing
	ListTasksErr  error
	CreateTaskErr error

	// Calls counts backend calls by method name.
	Calls map[string]int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{Calls: make(map[string]int)}
}

// AddTask seeds a task.
func (f *FakeService) AddTask(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{ID: id, Title: title})
}

// Tasks returns a copy of the backend collection.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// CallCount returns how often method was called.
func (f *FakeService) CallCount(method string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.Calls[method]
}

func (f *FakeService) record(method string) {
	if f.Calls == nil {
		f.Calls = make(map[string]int)
	}
	f.Calls[method]++
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title string) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateTask")
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}

	id := uuid.NewString()
	if f.NextID != nil {
		id = f.NextID()
	}
	task := service.Task{ID: id, Title: title}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// SequentialIDs returns an ID generator yielding start, start+1, ...
func SequentialIDs(start int) func() string {
	n := start
	return func() string {
		id := fmt.Sprint(n)
		n++
		return id
	}
}
