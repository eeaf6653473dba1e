package rest

import (
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

// Articles handles GET /articles
// @Summary List articles
// @Description Retrieves articles with optional filtering by categoryId and tagId, with pagination
// @Tags articles
// @Produce json
// @Param categoryId query int false "Filter by category ID"
// @Param tagId query int false "Filter by tag ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {array} rest.Article
// @Failure 400,500 {object} map[string]string
// @Router /articles [get]
func (h *Handler) Articles(c echo.Context) error {
	var req ArticlesRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "invalid request parameters")
	}

	page := defaultPage
	if req.Page != nil {
		if *req.Page < 1 {
			return h.badRequest(c, "invalid page")
		}
		page = *req.Page
	}

	pageSize := defaultPageSize
	if req.PageSize != nil {
		if *req.PageSize < 1 {
			return h.badRequest(c, "invalid pageSize")
		}
		pageSize = min(*req.PageSize, maxPageSize)
	}

	filter := blogportal.ArticleFilter{
		CategoryID: req.CategoryID,
		TagID:      req.TagID,
	}

	articles, err := h.m.ArticlesByFilter(c.Request().Context(), filter, page, pageSize)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticles(articles))
}

// ArticleByID handles GET /articles/:id
// @Summary Get article by ID
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,404,500 {object} map[string]string
// @Router /articles/{id} [get]
func (h *Handler) ArticleByID(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	article, err := h.m.ArticleByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// CreateArticle handles POST /articles
// @Summary Create a new article
// @Description Creates an article authored by the caller. Category and tags are resolved by id.
// @Tags articles
// @Accept json
// @Produce json
// @Param X-User-Id header int true "Caller user ID"
// @Param article body rest.ArticleRequest true "Article payload"
// @Success 201 {object} rest.Article
// @Failure 400,401,409,500 {object} map[string]string
// @Router /articles [post]
func (h *Handler) CreateArticle(c echo.Context) error {
	authorID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
	}

	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	article, err := h.m.CreateArticle(c.Request().Context(), authorID, blogportal.ArticleInput{
		Title:      req.Title,
		Body:       req.Body,
		Status:     req.Status,
		CategoryID: req.CategoryID,
		TagIDs:     req.Tags,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewArticle(*article))
}

// ReplaceArticle handles PUT /articles/:id
// @Summary Replace an article
// @Description Overwrites the article with the full payload; the caller becomes the author
// @Tags articles
// @Accept json
// @Param X-User-Id header int true "Caller user ID"
// @Param id path int true "Article ID"
// @Param article body rest.ArticleRequest true "Article payload"
// @Success 204
// @Failure 400,401,404,409,500 {object} map[string]string
// @Router /articles/{id} [put]
func (h *Handler) ReplaceArticle(c echo.Context) error {
	authorID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
	}

	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	err = h.m.ReplaceArticle(c.Request().Context(), authorID, id, blogportal.ArticleInput{
		Title:      req.Title,
		Body:       req.Body,
		Status:     req.Status,
		CategoryID: req.CategoryID,
		TagIDs:     req.Tags,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MergeArticle handles PATCH /articles/:id
// @Summary Partially update an article
// @Description Merges only the fields present in the payload into the article
// @Tags articles
// @Accept json
// @Param X-User-Id header int true "Caller user ID"
// @Param id path int true "Article ID"
// @Param article body rest.ArticleMergeRequest true "Partial article payload"
// @Success 204
// @Failure 400,401,404,409,500 {object} map[string]string
// @Router /articles/{id} [patch]
func (h *Handler) MergeArticle(c echo.Context) error {
	authorID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
	}

	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	var req ArticleMergeRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	err = h.m.MergeArticle(c.Request().Context(), authorID, id, blogportal.ArticleMerge{
		Title:      req.Title,
		Body:       req.Body,
		Status:     req.Status,
		CategoryID: req.CategoryID,
		TagIDs:     req.Tags,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteArticle handles DELETE /articles/:id
// @Summary Delete an article
// @Description Removes the article together with its comments; tags are detached, not deleted
// @Tags articles
// @Param X-User-Id header int true "Caller user ID"
// @Param id path int true "Article ID"
// @Success 204
// @Failure 400,401,404,500 {object} map[string]string
// @Router /articles/{id} [delete]
func (h *Handler) DeleteArticle(c echo.Context) error {
	authorID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
	}

	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	if err := h.m.DeleteArticle(c.Request().Context(), authorID, id); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ArticleCategoryTags handles GET /articles/:id/tags
// @Summary List tags used in the article's category
// @Description Resolves the article's category and returns all tags attached to articles in that category
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {array} rest.Tag
// @Failure 400,404,500 {object} map[string]string
// @Router /articles/{id}/tags [get]
func (h *Handler) ArticleCategoryTags(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.badRequest(c, err.Error())
	}

	tags, err := h.m.TagsByArticleCategory(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewTags(tags))
}
