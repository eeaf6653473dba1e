package rpc

import (
	"context"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// BlogService provides read-only RPC access to the blog resources.
type BlogService struct {
	zenrpc.Service
	manager *blogportal.Manager
}

func NewBlogService(manager *blogportal.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// Articles retrieves articles with optional filtering by categoryId and tagId,
// with pagination.
//
//zenrpc:categoryId optional category filter
//zenrpc:tagId optional tag filter
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=10 items per page
//zenrpc:return list of articles
//zenrpc:500 internal server error
func (s *BlogService) Articles(ctx context.Context, filter ArticlesFilter) ([]Article, error) {
	page, pageSize := 1, 10
	if filter.Page != nil && *filter.Page > 0 {
		page = *filter.Page
	}
	if filter.PageSize != nil && *filter.PageSize > 0 {
		pageSize = *filter.PageSize
	}

	articles, err := s.manager.ArticlesByFilter(
		ctx,
		blogportal.ArticleFilter{CategoryID: filter.CategoryID, TagID: filter.TagID},
		page,
		pageSize,
	)
	if err != nil {
		return nil, err
	}

	return NewArticles(articles), nil
}

// ArticleByID retrieves a single article with category, author and tags.
//
//zenrpc:id article numeric ID
//zenrpc:return article
//zenrpc:400 id must be positive
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *BlogService) ArticleByID(ctx context.Context, req ArticleByIDRequest) (*Article, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	article, err := s.manager.ArticleByID(ctx, req.ID)
	if err != nil {
		if _, ok := err.(blogportal.NotFoundError); ok {
			return nil, zenrpc.NewStringError(404, "article not found")
		}
		return nil, err
	}

	result := NewArticle(*article)
	return &result, nil
}

// Categories retrieves all categories ordered by title.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}

// Tags retrieves all tags ordered by name.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context) ([]Tag, error) {
	tags, err := s.manager.Tags(ctx)
	if err != nil {
		return nil, err
	}

	return NewTags(tags), nil
}
