package watchlist

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Broadcaster pushes live update events to connected clients.
type Broadcaster interface {
	Broadcast(msgType string, payload interface{}) error
}

// Handlers provides HTTP handlers for watchlist operations.
type Handlers struct {
	store *Store
	hub   Broadcaster
}

// NewHandlers creates new watchlist handlers. hub may be nil.
func NewHandlers(store *Store, hub Broadcaster) *Handlers {
	return &Handlers{store: store, hub: hub}
}

// RegisterRoutes registers the watchlist routes.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Add)
	g.DELETE("/:id", h.Remove)
	g.PUT("/order", h.Reorder)
	g.POST("/evaluate", h.Evaluate)
	g.POST("/reorder", h.BeginReorder)
	g.PUT("/reorder/:sessionId", h.MoveOver)
	g.POST("/reorder/:sessionId/commit", h.CommitReorder)
	g.POST("/reorder/:sessionId/cancel", h.CancelReorder)
}

// List returns the watchlist in persisted order plus the ranked display
// view.
// GET /api/v1/watchlist
func (h *Handlers) List(c echo.Context) error {
	items := h.store.Items(c.Request().Context())
	eval := Evaluate(items, nil)

	return c.JSON(http.StatusOK, map[string]any{
		"items":        items,
		"ranked":       Rank(items),
		"count":        len(items),
		"totalMinutes": eval.TotalMinutes,
	})
}

// Add saves a new item at the end of the watchlist.
// POST /api/v1/watchlist
func (h *Handlers) Add(c echo.Context) error {
	var item Item
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if item.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	added, err := h.store.Add(c.Request().Context(), item)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !added {
		return echo.NewHTTPError(http.StatusConflict, "item already in watchlist")
	}

	if h.hub != nil {
		h.hub.Broadcast("watchlist:added", item)
	}
	return c.JSON(http.StatusCreated, item)
}

// Remove deletes an item. Removing an unknown id succeeds with no effect.
// DELETE /api/v1/watchlist/:id
func (h *Handlers) Remove(c echo.Context) error {
	id := c.Param("id")
	if err := h.store.Remove(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if h.hub != nil {
		h.hub.Broadcast("watchlist:removed", map[string]string{"id": id})
	}
	return c.NoContent(http.StatusNoContent)
}

// Reorder replaces the persisted order directly, without a drag session.
// PUT /api/v1/watchlist/order
func (h *Handlers) Reorder(c echo.Context) error {
	var body struct {
		Order []string `json:"order"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.store.Reorder(ctx, body.Order); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := h.store.Items(ctx)
	if h.hub != nil {
		h.hub.Broadcast("watchlist:reordered", items)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// Evaluate computes the budget fit of the persisted order. A missing hours
// field means no constraint has been entered yet.
// POST /api/v1/watchlist/evaluate
func (h *Handlers) Evaluate(c echo.Context) error {
	var body struct {
		Hours *float64 `json:"hours"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var budget *int
	if body.Hours != nil {
		minutes, err := BudgetFromHours(*body.Hours)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		budget = &minutes
	}

	items := h.store.Items(c.Request().Context())
	return c.JSON(http.StatusOK, Evaluate(items, budget))
}

// BeginReorder starts a drag-to-reorder session.
// POST /api/v1/watchlist/reorder
func (h *Handlers) BeginReorder(c echo.Context) error {
	var body struct {
		PickedID string `json:"pickedId"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.store.BeginReorder(c.Request().Context(), body.PickedID)
	if err != nil {
		switch {
		case errors.Is(err, ErrReorderActive):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, ErrItemNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"sessionId":    session.ID,
		"pickedId":     session.PickedID(),
		"workingOrder": session.WorkingOrder(),
	})
}

// MoveOver updates the session's working order. The caller either names the
// target position directly or supplies the pointer coordinate plus the
// drop-zone centers for resolution.
// PUT /api/v1/watchlist/reorder/:sessionId
func (h *Handlers) MoveOver(c echo.Context) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	var body struct {
		Position    *int      `json:"position"`
		PointerY    *float64  `json:"pointerY"`
		ZoneCenters []float64 `json:"zoneCenters"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var position int
	switch {
	case body.Position != nil:
		position = *body.Position
	case body.PointerY != nil:
		position = InsertionIndex(body.ZoneCenters, *body.PointerY)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "position or pointerY is required")
	}

	if err := session.MoveOver(position); err != nil {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"workingOrder": session.WorkingOrder(),
	})
}

// CommitReorder writes the session's working order back to the store.
// POST /api/v1/watchlist/reorder/:sessionId/commit
func (h *Handlers) CommitReorder(c echo.Context) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := session.Commit(ctx); err != nil {
		if errors.Is(err, ErrSessionClosed) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := h.store.Items(ctx)
	if h.hub != nil {
		h.hub.Broadcast("watchlist:reordered", items)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// CancelReorder discards the session; the persisted order is untouched.
// POST /api/v1/watchlist/reorder/:sessionId/cancel
func (h *Handlers) CancelReorder(c echo.Context) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	if err := session.Cancel(); err != nil {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handlers) session(c echo.Context) (*Session, error) {
	session := h.store.ActiveSession()
	if session == nil || session.ID != c.Param("sessionId") {
		return nil, echo.NewHTTPError(http.StatusNotFound, "reorder session not found")
	}
	return session, nil
}
