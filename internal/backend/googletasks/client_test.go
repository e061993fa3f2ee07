package googletasks_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"tasklist/internal/backend/googletasks"
	"tasklist/internal/service"
)

// newClient points a Tasks client at handler.
func newClient(t *testing.T, handler http.HandlerFunc) *googletasks.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := googletasks.NewWithHTTPClient(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return c
}

func TestListTasks_FollowsPages(t *testing.T) {
	var pages int
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/tasks"), r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("showCompleted"))

		pages++
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			_, _ = w.Write([]byte(`{"items":[{"id":"a","title":"Buy milk"}],"nextPageToken":"p2"}`))
			return
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"b","title":"Clean house"}]}`))
	})

	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	assert.Equal(t, []service.Task{{ID: "a", Title: "Buy milk"}, {ID: "b", Title: "Clean house"}}, tasks)
}

func TestListTasks_Empty(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestCreateTask(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Write report", body["title"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"xyz","title":"Write report","status":"needsAction"}`))
	})

	task, err := c.CreateTask(context.Background(), "Write report")
	require.NoError(t, err)
	assert.Equal(t, service.Task{ID: "xyz", Title: "Write report"}, task)
}

func TestErrors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
		})
		_, err := c.ListTasks(context.Background())
		assert.ErrorIs(t, err, service.ErrStatus)
	})

	t.Run("malformed", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":`))
		})
		_, err := c.CreateTask(context.Background(), "x")
		assert.ErrorIs(t, err, service.ErrMalformed)
	})

	t.Run("missing id", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title":"x"}`))
		})
		_, err := c.CreateTask(context.Background(), "x")
		assert.ErrorIs(t, err, service.ErrMalformed)
	})
}
