package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100

	// callerHeader carries the authenticated user id, set by the external
	// identity provider in front of this service.
	callerHeader = "X-User-Id"
)

type Handler struct {
	m   *blogportal.Manager
	log *slog.Logger
}

func NewHandler(m *blogportal.Manager, log *slog.Logger) *Handler {
	return &Handler{
		m:   m,
		log: log,
	}
}

// handleError maps the service error taxonomy onto HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	var notFound blogportal.NotFoundError
	var validation blogportal.ValidationErrors

	switch {
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": notFound.Error()})
	case errors.As(err, &validation):
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": validation})
	case errors.Is(err, blogportal.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"message": "conflicts with an existing resource"})
	case errors.Is(err, blogportal.ErrUnknownAuthor):
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
	}

	h.log.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
}

func (h *Handler) badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": message})
}

// idParam parses the :id path segment.
func idParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// callerID resolves the caller identity header. The article author is always
// taken from here, never from the payload.
func callerID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Request().Header.Get(callerHeader))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
