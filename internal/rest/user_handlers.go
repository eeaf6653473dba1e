package rest

import (
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

// Users handles GET /users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} rest.User
// @Failure 500 {object} map[string]string
// @Router /users [get]
func (h *Handler) Users(c echo.Context) error {
	users, err := h.m.Users(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewUsers(users))
}

// UserByID handles GET /users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} rest.User
// @Failure 400,404,500 {object} map[string]string
// @Router /users/{id} [get]
func (h *Handler) UserByID(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	user, err := h.m.UserByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewUser(*user))
}

// CreateUser handles POST /users
// @Summary Create a new user
// @Description The password is hashed before persistence and never returned
// @Tags users
// @Accept json
// @Produce json
// @Param user body rest.UserRequest true "User payload"
// @Success 201 {object} rest.User
// @Failure 400,409,500 {object} map[string]string
// @Router /users [post]
func (h *Handler) CreateUser(c echo.Context) error {
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	user, err := h.m.CreateUser(c.Request().Context(), blogportal.UserInput{
		FullName: req.FullName,
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewUser(*user))
}

// ReplaceUser handles PUT /users/:id
// @Summary Replace a user
// @Tags users
// @Accept json
// @Param id path int true "User ID"
// @Param user body rest.UserRequest true "User payload"
// @Success 204
// @Failure 400,404,409,500 {object} map[string]string
// @Router /users/{id} [put]
func (h *Handler) ReplaceUser(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	err = h.m.ReplaceUser(c.Request().Context(), id, blogportal.UserInput{
		FullName: req.FullName,
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400,404,409,500 {object} map[string]string
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	if err := h.m.DeleteUser(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
