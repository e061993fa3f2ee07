package resttask_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/backend/resttask"
	"tasklist/internal/service"
	"tasklist/internal/testutil"
)

func TestListTasks(t *testing.T) {
	srv := testutil.NewTaskServer("Buy milk", "Clean house")
	defer srv.Close()

	c := resttask.New(srv.URL)
	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []service.Task{
		{ID: "1", Title: "Buy milk"},
		{ID: "2", Title: "Clean house"},
	}, tasks)
}

func TestListTasks_EmptyCollection(t *testing.T) {
	srv := testutil.NewTaskServer()
	defer srv.Close()

	tasks, err := resttask.New(srv.URL).ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NotNil(t, tasks)
}

func TestCreateTask(t *testing.T) {
	srv := testutil.NewTaskServer("Buy milk", "Clean house")
	defer srv.Close()

	c := resttask.New(srv.URL + "/")
	task, err := c.CreateTask(context.Background(), "Write report")
	require.NoError(t, err)

	assert.Equal(t, service.Task{ID: "3", Title: "Write report"}, task)
	require.Len(t, srv.Requests, 1)
	assert.Equal(t, http.MethodPost, srv.Requests[0].Method)
	assert.Equal(t, "application/json;charset=utf-8", srv.Requests[0].ContentType)
	assert.Equal(t, "Write report", srv.Requests[0].Title)
	assert.Equal(t, 3, srv.Count())
}

func TestCreateTask_NoIdempotency(t *testing.T) {
	srv := testutil.NewTaskServer()
	defer srv.Close()

	c := resttask.New(srv.URL)
	first, err := c.CreateTask(context.Background(), "Same")
	require.NoError(t, err)
	second, err := c.CreateTask(context.Background(), "Same")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, srv.Count())
}

func TestStringIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"a1b2","title":"Alpha"},{"id":7.5,"title":"Beta"}]`))
	}))
	defer srv.Close()

	tasks, err := resttask.New(srv.URL).ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []service.Task{{ID: "a1b2", Title: "Alpha"}, {ID: "7.5", Title: "Beta"}}, tasks)
}

func TestFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*testutil.TaskServer)
		wantErr error
	}{
		{
			name:    "non-2xx status",
			setup:   func(s *testutil.TaskServer) { s.FailStatus = http.StatusInternalServerError },
			wantErr: service.ErrStatus,
		},
		{
			name:    "not found",
			setup:   func(s *testutil.TaskServer) { s.FailStatus = http.StatusNotFound },
			wantErr: service.ErrStatus,
		},
		{
			name:    "malformed body",
			setup:   func(s *testutil.TaskServer) { s.RawBody = `{"id":` },
			wantErr: service.ErrMalformed,
		},
		{
			name:    "wrong shape",
			setup:   func(s *testutil.TaskServer) { s.RawBody = `"hello"` },
			wantErr: service.ErrMalformed,
		},
		{
			name:    "trailing garbage",
			setup:   func(s *testutil.TaskServer) { s.RawBody = `[{"id":1,"title":"a"}] <html>oops</html>` },
			wantErr: service.ErrMalformed,
		},
		{
			name:    "empty body",
			setup:   func(s *testutil.TaskServer) { s.RawBody = " " },
			wantErr: service.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/list", func(t *testing.T) {
			srv := testutil.NewTaskServer("Buy milk")
			defer srv.Close()
			tt.setup(srv)

			_, err := resttask.New(srv.URL).ListTasks(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
		t.Run(tt.name+"/create", func(t *testing.T) {
			srv := testutil.NewTaskServer()
			defer srv.Close()
			tt.setup(srv)

			_, err := resttask.New(srv.URL).CreateTask(context.Background(), "x")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTask_MissingID(t *testing.T) {
	srv := testutil.NewTaskServer()
	defer srv.Close()
	srv.RawBody = `{"title":"no id"}`

	_, err := resttask.New(srv.URL).CreateTask(context.Background(), "no id")
	assert.ErrorIs(t, err, service.ErrMalformed)
}

func TestTransportFailure(t *testing.T) {
	srv := testutil.NewTaskServer()
	url := srv.URL
	srv.Close()

	_, err := resttask.New(url).ListTasks(context.Background())
	assert.ErrorIs(t, err, service.ErrTransport)
}

func TestCancelledContext(t *testing.T) {
	srv := testutil.NewTaskServer("Buy milk")
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resttask.New(srv.URL).ListTasks(ctx)
	assert.ErrorIs(t, err, service.ErrTransport)
}

func TestDefaultEndpoint(t *testing.T) {
	assert.Equal(t, "http://localhost:3005/task", resttask.New("").URL())
	assert.Equal(t, "http://example.test/api/task", resttask.New("http://example.test/api/").URL())
}
