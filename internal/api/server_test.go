package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinemood/cinemood/internal/config"
	"github.com/cinemood/cinemood/internal/logger"
	"github.com/cinemood/cinemood/internal/testutil"
	"github.com/cinemood/cinemood/internal/websocket"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	tdb := testutil.NewTestDB(t)
	t.Cleanup(tdb.Close)

	hub := websocket.NewHub()
	go hub.Run()

	cfg := &config.Config{DeveloperMode: true}

	server, err := NewServer(tdb.Conn, hub, cfg, tdb.Logger, logger.NewStream(10), nil)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return server
}

func TestServer_RunTask(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/system/tasks/recommended-refresh/run", nil)
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusAccepted, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["taskId"] != "recommended-refresh" {
		t.Errorf("taskId = %q, want %q", body["taskId"], "recommended-refresh")
	}
}

func TestServer_RunTask_Unknown(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/system/tasks/no-such-task/run", nil)
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServer_ListTasks(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/tasks", nil)
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Tasks []struct {
			ID string `json:"id"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Tasks) != 1 || body.Tasks[0].ID != "recommended-refresh" {
		t.Errorf("tasks = %+v, want the recommended-refresh task", body.Tasks)
	}
}
