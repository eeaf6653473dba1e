package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) CommentByID(ctx context.Context, id int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *Repository) CommentsByArticleID(ctx context.Context, articleID int) ([]Comment, error) {
	var comments []Comment
	err := r.db.ModelContext(ctx, &comments).
		Relation("Author").
		Where(`"t"."article_id" = ?`, articleID).
		OrderExpr(`"t"."published_at" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments by article: %w", err)
	}

	return comments, nil
}

func (r *Repository) InsertComment(ctx context.Context, comment *Comment) error {
	if _, err := r.db.ModelContext(ctx, comment).Insert(); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// DetachComment clears the comment's article reference. The comment row
// itself is never deleted by a detach.
func (r *Repository) DetachComment(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Set(`article_id = NULL`).
		Where(`"t"."id" = ?`, id).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to detach comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
