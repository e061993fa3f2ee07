package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/backend/resttask"
	"tasklist/internal/service"
	"tasklist/internal/store"
	"tasklist/internal/tasksync"
	"tasklist/internal/testutil"
)

func TestStore_AddAgainstStubEndpoint(t *testing.T) {
	srv := testutil.NewTaskServer("Buy milk", "Clean house")
	defer srv.Close()

	s := store.New(tasksync.New(resttask.New(srv.URL), nil))
	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Tasks(), 2)

	s.SetInput("Write report")
	task, err := s.Add(context.Background())
	require.NoError(t, err)

	assert.Equal(t, service.Task{ID: "3", Title: "Write report"}, task)
	require.Len(t, s.Tasks(), 3)
	assert.Equal(t, task, s.Tasks()[2])
	assert.Equal(t, "", s.State().Input)
}

func TestStore_AddFailureKeepsInput(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = fmt.Errorf("POST: %w", service.ErrStatus)
	s := store.New(tasksync.New(svc, nil))

	s.SetInput("Write report")
	_, err := s.Add(context.Background())

	require.ErrorIs(t, err, service.ErrStatus)
	assert.Empty(t, s.Tasks())
	assert.Equal(t, "Write report", s.State().Input)
}

func TestStore_LoadFailureKeepsState(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("1", "Buy milk")
	s := store.New(tasksync.New(svc, nil))
	require.NoError(t, s.Load(context.Background()))

	svc.ListTasksErr = fmt.Errorf("GET: %w", service.ErrTransport)
	err := s.Load(context.Background())

	require.ErrorIs(t, err, service.ErrTransport)
	assert.False(t, s.State().Loading)
	assert.Equal(t, []service.Task{{ID: "1", Title: "Buy milk"}}, s.Tasks())
}

func TestStore_RemoveIsLocal(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("1", "Buy milk")
	svc.AddTask("2", "Clean house")
	s := store.New(tasksync.New(svc, nil))
	require.NoError(t, s.Load(context.Background()))

	s.Remove("1")

	assert.Equal(t, []service.Task{{ID: "2", Title: "Clean house"}}, s.Tasks())
	assert.Len(t, svc.Tasks(), 2, "backend must keep the task")
	assert.Equal(t, 1, svc.CallCount("ListTasks"))
	assert.Equal(t, 0, svc.CallCount("CreateTask"))
}
