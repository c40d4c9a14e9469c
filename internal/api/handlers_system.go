package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleStatus reports what the server is wired to.
// GET /api/v1/system/status
func (s *Server) handleStatus(c echo.Context) error {
	suggestProvider := ""
	if s.suggester != nil {
		suggestProvider = s.suggester.Name()
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":           "ok",
		"suggestProvider":  suggestProvider,
		"metadataProvider": s.metadataService.ProviderName(),
		"developerMode":    s.cfg.DeveloperMode,
		"wsClients":        s.hub.ClientCount(),
	})
}

// handleLogs returns the recent log entries kept in memory.
// GET /api/v1/system/logs
func (s *Server) handleLogs(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"entries": s.stream.Recent(),
	})
}

// handleTasks lists the background tasks and their schedules.
// GET /api/v1/system/tasks
func (s *Server) handleTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"tasks": s.scheduler.ListTasks(),
	})
}

// handleRunTask manually triggers a task to run.
// POST /api/v1/system/tasks/:id/run
func (s *Server) handleRunTask(c echo.Context) error {
	taskID := c.Param("id")
	if err := s.scheduler.RunNow(taskID); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"message": "Task started",
		"taskId":  taskID,
	})
}
