package blogportal

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// ArticlesByFilter retrieves articles with optional category/tag filtering,
// with pagination, including category, author and tags.
func (m *Manager) ArticlesByFilter(ctx context.Context, filter ArticleFilter, page, pageSize int) ([]Article, error) {
	dbArticles, err := m.db.Articles(ctx, filter.toDB(), page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("db get articles: %w", err)
	}

	return NewArticles(dbArticles), nil
}

func (m *Manager) ArticlesCount(ctx context.Context, filter ArticleFilter) (int, error) {
	count, err := m.db.ArticlesCount(ctx, filter.toDB())
	if err != nil {
		return 0, fmt.Errorf("db get articles count: %w", err)
	}

	return count, nil
}

func (m *Manager) ArticleByID(ctx context.Context, id int) (*Article, error) {
	dbArticle, err := m.db.ArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if dbArticle == nil {
		return nil, NotFoundError{Resource: "Article"}
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

// CreateArticle validates the input, resolves the category and tags by id and
// persists a new article authored by the caller. The author is always the
// caller identity, never a payload field.
func (m *Manager) CreateArticle(ctx context.Context, authorID int, in ArticleInput) (*Article, error) {
	if errs := validateArticleInput(in); len(errs) > 0 {
		return nil, errs
	}

	var created *db.Article
	err := m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		author, err := repo.UserByID(ctx, authorID)
		if err != nil {
			return err
		}
		if author == nil {
			return ErrUnknownAuthor
		}

		refErrs, err := resolveArticleRefs(ctx, repo, in.CategoryID, in.TagIDs)
		if err != nil {
			return err
		}
		if len(refErrs) > 0 {
			return refErrs
		}

		slug, err := m.articleSlug(ctx, repo, in.Title, 0)
		if err != nil {
			return err
		}

		status, _ := ParseStatus(in.Status)
		now := time.Now()
		article := &db.Article{
			Title:      in.Title,
			Slug:       slug,
			Body:       in.Body,
			Status:     status,
			CategoryID: in.CategoryID,
			AuthorID:   authorID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := repo.InsertArticle(ctx, article); err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("insert article: %w", ErrConflict)
			}
			return err
		}

		if err := repo.ReplaceArticleTags(ctx, article.ID, uniqueInts(in.TagIDs)); err != nil {
			return err
		}

		created, err = repo.ArticleByID(ctx, article.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	article := NewArticle(created)
	return &article, nil
}

// ReplaceArticle overwrites the article with the full input. The slug is
// regenerated only when the title changed, and the author becomes the caller.
func (m *Manager) ReplaceArticle(ctx context.Context, authorID, id int, in ArticleInput) error {
	if errs := validateArticleInput(in); len(errs) > 0 {
		return errs
	}

	return m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		author, err := repo.UserByID(ctx, authorID)
		if err != nil {
			return err
		}
		if author == nil {
			return ErrUnknownAuthor
		}

		current, err := repo.ArticleByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return NotFoundError{Resource: "Article"}
		}

		refErrs, err := resolveArticleRefs(ctx, repo, in.CategoryID, in.TagIDs)
		if err != nil {
			return err
		}
		if len(refErrs) > 0 {
			return refErrs
		}

		slug := current.Slug
		if in.Title != current.Title {
			slug, err = m.articleSlug(ctx, repo, in.Title, id)
			if err != nil {
				return err
			}
		}

		status, _ := ParseStatus(in.Status)
		updated := &db.Article{
			ID:         id,
			Title:      in.Title,
			Slug:       slug,
			Body:       in.Body,
			Status:     status,
			CategoryID: in.CategoryID,
			AuthorID:   authorID,
			CreatedAt:  current.CreatedAt,
			UpdatedAt:  time.Now(),
		}

		if err := repo.UpdateArticle(ctx, updated); err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("update article: %w", ErrConflict)
			}
			return err
		}

		return repo.ReplaceArticleTags(ctx, id, uniqueInts(in.TagIDs))
	})
}

// MergeArticle applies a partial update: only fields present in the payload
// are validated and merged into the stored article. When the payload touches
// the text fields the caller becomes the author.
func (m *Manager) MergeArticle(ctx context.Context, authorID, id int, in ArticleMerge) error {
	var errs ValidationErrors
	if in.Title != nil {
		errs = validateTitle(*in.Title, errs)
	}
	if in.Body != nil {
		errs = validateBody(*in.Body, errs)
	}
	if in.Status != nil {
		errs = validateStatus(*in.Status, errs)
	}
	if in.CategoryID != nil && *in.CategoryID <= 0 {
		errs = append(errs, FieldError{Field: "categoryId", Message: "must reference a category"})
	}
	if len(errs) > 0 {
		return errs
	}

	return m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		author, err := repo.UserByID(ctx, authorID)
		if err != nil {
			return err
		}
		if author == nil {
			return ErrUnknownAuthor
		}

		current, err := repo.ArticleByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return NotFoundError{Resource: "Article"}
		}

		var refErrs ValidationErrors
		if in.CategoryID != nil {
			category, err := repo.CategoryByID(ctx, *in.CategoryID)
			if err != nil {
				return err
			}
			if category == nil {
				refErrs = append(refErrs, FieldError{Field: "categoryId", Message: "category not found"})
			}
		}
		if in.TagIDs != nil {
			missing, err := missingTagIDs(ctx, repo, *in.TagIDs)
			if err != nil {
				return err
			}
			refErrs = append(refErrs, missing...)
		}
		if len(refErrs) > 0 {
			return refErrs
		}

		updated := &db.Article{
			ID:         id,
			Title:      current.Title,
			Slug:       current.Slug,
			Body:       current.Body,
			Status:     current.Status,
			CategoryID: current.CategoryID,
			AuthorID:   current.AuthorID,
			CreatedAt:  current.CreatedAt,
			UpdatedAt:  time.Now(),
		}

		if in.Title != nil && *in.Title != current.Title {
			updated.Title = *in.Title
			updated.Slug, err = m.articleSlug(ctx, repo, *in.Title, id)
			if err != nil {
				return err
			}
		}
		if in.Body != nil {
			updated.Body = *in.Body
		}
		if in.Status != nil {
			updated.Status, _ = ParseStatus(*in.Status)
		}
		if in.CategoryID != nil {
			updated.CategoryID = *in.CategoryID
		}
		if in.Title != nil || in.Body != nil {
			updated.AuthorID = authorID
		}

		if err := repo.UpdateArticle(ctx, updated); err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("update article: %w", ErrConflict)
			}
			return err
		}

		if in.TagIDs != nil {
			return repo.ReplaceArticleTags(ctx, id, uniqueInts(*in.TagIDs))
		}
		return nil
	})
}

// DeleteArticle removes the article, its comments and its tag references.
// The caller must resolve to an existing user.
func (m *Manager) DeleteArticle(ctx context.Context, authorID, id int) error {
	return m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		author, err := repo.UserByID(ctx, authorID)
		if err != nil {
			return err
		}
		if author == nil {
			return ErrUnknownAuthor
		}

		found, err := repo.DeleteArticle(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return NotFoundError{Resource: "Article"}
		}
		return nil
	})
}

// TagsByArticleCategory resolves the article's category and returns every tag
// attached to articles in that category, ordered by category title descending.
func (m *Manager) TagsByArticleCategory(ctx context.Context, articleID int) ([]Tag, error) {
	article, err := m.db.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	}
	if article == nil {
		return nil, NotFoundError{Resource: "Article"}
	}

	tags, err := m.db.TagsByArticleCategory(ctx, article.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("db get tags by article category: %w", err)
	}

	return NewTags(tags), nil
}

// DetachComment clears a comment's article reference without deleting it.
func (m *Manager) DetachComment(ctx context.Context, commentID int) error {
	return m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		found, err := repo.DetachComment(ctx, commentID)
		if err != nil {
			return err
		}
		if !found {
			return NotFoundError{Resource: "Comment"}
		}
		return nil
	})
}

func (m *Manager) articleSlug(ctx context.Context, repo *db.Repository, title string, excludeID int) (string, error) {
	base := makeSlug(title)
	taken, err := repo.ArticleSlugs(ctx, base, excludeID)
	if err != nil {
		return "", err
	}
	return uniqueSlug(base, taken), nil
}

func resolveArticleRefs(ctx context.Context, repo *db.Repository, categoryID int, tagIDs []int) (ValidationErrors, error) {
	var errs ValidationErrors

	category, err := repo.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		errs = append(errs, FieldError{Field: "categoryId", Message: "category not found"})
	}

	missing, err := missingTagIDs(ctx, repo, tagIDs)
	if err != nil {
		return nil, err
	}
	errs = append(errs, missing...)

	return errs, nil
}

func missingTagIDs(ctx context.Context, repo *db.Repository, tagIDs []int) (ValidationErrors, error) {
	ids := uniqueInts(tagIDs)
	tags, err := repo.TagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(tags) == len(ids) {
		return nil, nil
	}

	found := make(map[int]struct{}, len(tags))
	for _, t := range tags {
		found[t.ID] = struct{}{}
	}

	var errs ValidationErrors
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			errs = append(errs, FieldError{Field: "tags", Message: fmt.Sprintf("tag %d not found", id)})
		}
	}
	return errs, nil
}

func uniqueInts(list []int) []int {
	seen := make(map[int]struct{}, len(list))
	result := make([]int, 0, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
