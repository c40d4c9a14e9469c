package discovery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinemood/cinemood/internal/suggest"
)

// Handlers provides HTTP handlers for discovery operations.
type Handlers struct {
	service *Service
}

// NewHandlers creates new discovery handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the discovery routes.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
	g.GET("/recommended", h.Recommended)
}

// Search runs a mood-based search. A failing suggestion provider yields an
// empty result with a message, not an error status.
// GET /api/v1/search?q=
func (h *Handlers) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	cards, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, suggest.ErrNoSuggestions) {
			return c.JSON(http.StatusOK, map[string]any{
				"results": []Card{},
				"message": "no suggestions available",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{"results": cards})
}

// Recommended returns the current recommendation cards.
// GET /api/v1/recommended
func (h *Handlers) Recommended(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"results": h.service.Recommended(c.Request().Context()),
	})
}
