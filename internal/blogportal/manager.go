package blogportal

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Manager implements the resource services against an explicit store handle.
// The store handle lifecycle is owned by the process entry point.
type Manager struct {
	db *db.Repository
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

type ArticleInput struct {
	Title      string
	Body       string
	Status     string
	CategoryID int
	TagIDs     []int
}

// ArticleMerge carries a partial article update. Nil fields are untouched.
type ArticleMerge struct {
	Title      *string
	Body       *string
	Status     *string
	CategoryID *int
	TagIDs     *[]int
}

type CategoryInput struct {
	Title string
}

type TagInput struct {
	Name string
}

type UserInput struct {
	FullName string
	UserName string
	Email    string
	Password string
	Roles    []string
}

// ArticleFilter narrows article listings; nil fields are ignored.
type ArticleFilter struct {
	CategoryID *int
	TagID      *int
}

func (f ArticleFilter) toDB() db.ArticleFilter {
	return db.ArticleFilter{
		CategoryID: f.CategoryID,
		TagID:      f.TagID,
	}
}
