package blogportal

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

func (m *Manager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTags(list), nil
}

func (m *Manager) TagByID(ctx context.Context, id int) (*Tag, error) {
	dbTag, err := m.db.TagByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get tag by id: %w", err)
	} else if dbTag == nil {
		return nil, NotFoundError{Resource: "Tag"}
	}

	tag := NewTag(dbTag)
	return &tag, nil
}

func (m *Manager) CreateTag(ctx context.Context, in TagInput) (*Tag, error) {
	if errs := validateTagInput(in); len(errs) > 0 {
		return nil, errs
	}

	var created *db.Tag
	err := m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		slug, err := m.tagSlug(ctx, repo, in.Name, 0)
		if err != nil {
			return err
		}

		now := time.Now()
		created = &db.Tag{
			Name:      in.Name,
			Slug:      slug,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := repo.InsertTag(ctx, created); err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("insert tag: %w", ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tag := NewTag(created)
	return &tag, nil
}

func (m *Manager) ReplaceTag(ctx context.Context, id int, in TagInput) error {
	if errs := validateTagInput(in); len(errs) > 0 {
		return errs
	}

	return m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		current, err := repo.TagByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return NotFoundError{Resource: "Tag"}
		}

		slug := current.Slug
		if in.Name != current.Name {
			slug, err = m.tagSlug(ctx, repo, in.Name, id)
			if err != nil {
				return err
			}
		}

		updated := &db.Tag{
			ID:        id,
			Name:      in.Name,
			Slug:      slug,
			CreatedAt: current.CreatedAt,
			UpdatedAt: time.Now(),
		}

		if err := repo.UpdateTag(ctx, updated); err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("update tag: %w", ErrConflict)
			}
			return err
		}
		return nil
	})
}

// DeleteTag detaches the tag from every article and removes it. Articles
// that referenced the tag are left in place.
func (m *Manager) DeleteTag(ctx context.Context, id int) error {
	return m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		found, err := repo.DeleteTag(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return NotFoundError{Resource: "Tag"}
		}
		return nil
	})
}

func (m *Manager) tagSlug(ctx context.Context, repo *db.Repository, name string, excludeID int) (string, error) {
	base := makeSlug(name)
	taken, err := repo.TagSlugs(ctx, base, excludeID)
	if err != nil {
		return "", err
	}
	return uniqueSlug(base, taken), nil
}
