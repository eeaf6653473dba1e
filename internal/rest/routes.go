package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes builds the echo instance with all resource routes.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(h.loggingMiddleware)

	e.GET("/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/articles", h.Articles)
	e.POST("/articles", h.CreateArticle)
	e.GET("/articles/:id", h.ArticleByID)
	e.PUT("/articles/:id", h.ReplaceArticle)
	e.PATCH("/articles/:id", h.MergeArticle)
	e.DELETE("/articles/:id", h.DeleteArticle)
	e.GET("/articles/:id/tags", h.ArticleCategoryTags)

	e.GET("/categories", h.Categories)
	e.POST("/categories", h.CreateCategory)
	e.GET("/categories/:id", h.CategoryByID)
	e.PUT("/categories/:id", h.ReplaceCategory)
	e.DELETE("/categories/:id", h.DeleteCategory)

	e.GET("/tags", h.Tags)
	e.POST("/tags", h.CreateTag)
	e.GET("/tags/:id", h.TagByID)
	e.PUT("/tags/:id", h.ReplaceTag)
	e.DELETE("/tags/:id", h.DeleteTag)

	e.GET("/users", h.Users)
	e.POST("/users", h.CreateUser)
	e.GET("/users/:id", h.UserByID)
	e.PUT("/users/:id", h.ReplaceUser)
	e.DELETE("/users/:id", h.DeleteUser)

	return e
}

// Health handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)
		return nil
	}
}
