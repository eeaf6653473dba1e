package rest

import (
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

// Tags handles GET /tags
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} map[string]string
// @Router /tags [get]
func (h *Handler) Tags(c echo.Context) error {
	tags, err := h.m.Tags(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewTags(tags))
}

// TagByID handles GET /tags/:id
// @Summary Get tag by ID
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} rest.Tag
// @Failure 400,404,500 {object} map[string]string
// @Router /tags/{id} [get]
func (h *Handler) TagByID(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	tag, err := h.m.TagByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewTag(*tag))
}

// CreateTag handles POST /tags
// @Summary Create a new tag
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body rest.TagRequest true "Tag payload"
// @Success 201 {object} rest.Tag
// @Failure 400,409,500 {object} map[string]string
// @Router /tags [post]
func (h *Handler) CreateTag(c echo.Context) error {
	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	tag, err := h.m.CreateTag(c.Request().Context(), blogportal.TagInput{Name: req.Name})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewTag(*tag))
}

// ReplaceTag handles PUT /tags/:id
// @Summary Replace a tag
// @Tags tags
// @Accept json
// @Param id path int true "Tag ID"
// @Param tag body rest.TagRequest true "Tag payload"
// @Success 204
// @Failure 400,404,409,500 {object} map[string]string
// @Router /tags/{id} [put]
func (h *Handler) ReplaceTag(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	if err := h.m.ReplaceTag(c.Request().Context(), id, blogportal.TagInput{Name: req.Name}); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteTag handles DELETE /tags/:id
// @Summary Delete a tag
// @Description Detaches the tag from every article before removing it
// @Tags tags
// @Param id path int true "Tag ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /tags/{id} [delete]
func (h *Handler) DeleteTag(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	if err := h.m.DeleteTag(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
