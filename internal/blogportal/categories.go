package blogportal

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *Manager) CategoryByID(ctx context.Context, id int) (*Category, error) {
	dbCategory, err := m.db.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if dbCategory == nil {
		return nil, NotFoundError{Resource: "Category"}
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

func (m *Manager) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	if errs := validateCategoryInput(in); len(errs) > 0 {
		return nil, errs
	}

	var created *db.Category
	err := m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		slug, err := m.categorySlug(ctx, repo, in.Title, 0)
		if err != nil {
			return err
		}

		now := time.Now()
		created = &db.Category{
			Title:     in.Title,
			Slug:      slug,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := repo.InsertCategory(ctx, created); err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("insert category: %w", ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	category := NewCategory(created)
	return &category, nil
}

func (m *Manager) ReplaceCategory(ctx context.Context, id int, in CategoryInput) error {
	if errs := validateCategoryInput(in); len(errs) > 0 {
		return errs
	}

	return m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		current, err := repo.CategoryByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return NotFoundError{Resource: "Category"}
		}

		slug := current.Slug
		if in.Title != current.Title {
			slug, err = m.categorySlug(ctx, repo, in.Title, id)
			if err != nil {
				return err
			}
		}

		updated := &db.Category{
			ID:        id,
			Title:     in.Title,
			Slug:      slug,
			CreatedAt: current.CreatedAt,
			UpdatedAt: time.Now(),
		}

		if err := repo.UpdateCategory(ctx, updated); err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("update category: %w", ErrConflict)
			}
			return err
		}
		return nil
	})
}

// DeleteCategory removes the category. Categories referenced by articles are
// protected by the store's RESTRICT foreign key and surface as Conflict.
func (m *Manager) DeleteCategory(ctx context.Context, id int) error {
	return m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		found, err := repo.DeleteCategory(ctx, id)
		if err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("delete category: %w", ErrConflict)
			}
			return err
		}
		if !found {
			return NotFoundError{Resource: "Category"}
		}
		return nil
	})
}

func (m *Manager) categorySlug(ctx context.Context, repo *db.Repository, title string, excludeID int) (string, error) {
	base := makeSlug(title)
	taken, err := repo.CategorySlugs(ctx, base, excludeID)
	if err != nil {
		return "", err
	}
	return uniqueSlug(base, taken), nil
}
