package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagByID(ctx context.Context, id int) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}

	return tag, nil
}

func (r *Repository) TagsByIDs(ctx context.Context, tagIDs []int) ([]Tag, error) {
	if len(tagIDs) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"t"."id" IN (?)`, pg.In(tagIDs)).
		OrderExpr(`"t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

// TagsByArticleCategory returns every tag attached to articles in the given
// category, ordered by category title descending. This is the one query that
// composes two relations instead of a per-row lookup.
func (r *Repository) TagsByArticleCategory(ctx context.Context, categoryID int) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		ColumnExpr(`DISTINCT "t".*, c.title`).
		Join(`JOIN article_tags AS at ON at.tag_id = "t"."id"`).
		Join(`JOIN articles AS a ON a.id = at.article_id`).
		Join(`JOIN categories AS c ON c.id = a.category_id`).
		Where(`a.category_id = ?`, categoryID).
		OrderExpr(`c.title DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags by article category: %w", err)
	}

	return tags, nil
}

func (r *Repository) InsertTag(ctx context.Context, tag *Tag) error {
	if _, err := r.db.ModelContext(ctx, tag).Insert(); err != nil {
		return fmt.Errorf("failed to insert tag: %w", err)
	}

	return nil
}

func (r *Repository) UpdateTag(ctx context.Context, tag *Tag) error {
	if _, err := r.db.ModelContext(ctx, tag).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update tag: %w", err)
	}

	return nil
}

// DeleteTag detaches the tag from every article, then removes the row.
// Articles referencing the tag survive.
func (r *Repository) DeleteTag(ctx context.Context, id int) (bool, error) {
	_, err := r.db.ModelContext(ctx, (*ArticleTag)(nil)).
		Where(`"at"."tag_id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to detach tag from articles: %w", err)
	}

	res, err := r.db.ModelContext(ctx, &Tag{ID: id}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete tag: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) TagSlugs(ctx context.Context, prefix string, excludeID int) ([]string, error) {
	var slugs []string
	err := r.db.ModelContext(ctx, (*Tag)(nil)).
		Column("slug").
		Where(`"t"."slug" LIKE ?`, prefix+"%").
		Where(`"t"."id" != ?`, excludeID).
		Select(&slugs)
	if err != nil {
		return nil, fmt.Errorf("failed to query tag slugs: %w", err)
	}

	return slugs, nil
}
