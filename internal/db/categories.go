package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."title" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, id int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) InsertCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// DeleteCategory removes the category row. Articles keep a RESTRICT foreign
// key on category_id, so deleting a referenced category fails with an
// integrity violation surfaced by IsConflict.
func (r *Repository) DeleteCategory(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Category{ID: id}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) CategorySlugs(ctx context.Context, prefix string, excludeID int) ([]string, error) {
	var slugs []string
	err := r.db.ModelContext(ctx, (*Category)(nil)).
		Column("slug").
		Where(`"t"."slug" LIKE ?`, prefix+"%").
		Where(`"t"."id" != ?`, excludeID).
		Select(&slugs)
	if err != nil {
		return nil, fmt.Errorf("failed to query category slugs: %w", err)
	}

	return slugs, nil
}
