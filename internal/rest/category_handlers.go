package rest

import (
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

// Categories handles GET /categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.m.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// CategoryByID handles GET /categories/:id
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} rest.Category
// @Failure 400,404,500 {object} map[string]string
// @Router /categories/{id} [get]
func (h *Handler) CategoryByID(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	category, err := h.m.CategoryByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// CreateCategory handles POST /categories
// @Summary Create a new category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body rest.CategoryRequest true "Category payload"
// @Success 201 {object} rest.Category
// @Failure 400,409,500 {object} map[string]string
// @Router /categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	category, err := h.m.CreateCategory(c.Request().Context(), blogportal.CategoryInput{Title: req.Title})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewCategory(*category))
}

// ReplaceCategory handles PUT /categories/:id
// @Summary Replace a category
// @Tags categories
// @Accept json
// @Param id path int true "Category ID"
// @Param category body rest.CategoryRequest true "Category payload"
// @Success 204
// @Failure 400,404,409,500 {object} map[string]string
// @Router /categories/{id} [put]
func (h *Handler) ReplaceCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	if err := h.m.ReplaceCategory(c.Request().Context(), id, blogportal.CategoryInput{Title: req.Title}); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteCategory handles DELETE /categories/:id
// @Summary Delete a category
// @Description Fails with 409 when articles still reference the category
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204
// @Failure 400,404,409,500 {object} map[string]string
// @Router /categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	if err := h.m.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
