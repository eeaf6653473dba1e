package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// ArticleFilter narrows article listings. Nil fields are ignored.
type ArticleFilter struct {
	CategoryID *int
	TagID      *int
}

func tagsByID(q *orm.Query) (*orm.Query, error) {
	return q.OrderExpr(`"t"."id" ASC`), nil
}

// Articles retrieves articles with optional category/tag filtering, with pagination.
// Category, author and tags are loaded; tags come back in id order.
func (r *Repository) Articles(ctx context.Context, filter ArticleFilter, page, pageSize int) ([]Article, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var articles []Article
	query := r.db.ModelContext(ctx, &articles).
		Relation("Category").
		Relation("Author").
		Relation("Tags", tagsByID)

	if filter.CategoryID != nil {
		query = query.Where(`"t"."category_id" = ?`, *filter.CategoryID)
	}

	if filter.TagID != nil {
		query = query.Where(
			`EXISTS (SELECT 1 FROM article_tags AS at WHERE at.article_id = "t"."id" AND at.tag_id = ?)`,
			*filter.TagID,
		)
	}

	err := query.
		OrderExpr(`"t"."id" ASC`).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) ArticlesCount(ctx context.Context, filter ArticleFilter) (int, error) {
	query := r.db.ModelContext(ctx, (*Article)(nil))

	if filter.CategoryID != nil {
		query = query.Where(`"t"."category_id" = ?`, *filter.CategoryID)
	}

	if filter.TagID != nil {
		query = query.Where(
			`EXISTS (SELECT 1 FROM article_tags AS at WHERE at.article_id = "t"."id" AND at.tag_id = ?)`,
			*filter.TagID,
		)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get articles count: %w", err)
	}

	return count, nil
}

// ArticleByID returns the article with its category, author and tags,
// or nil when no row has that id.
func (r *Repository) ArticleByID(ctx context.Context, id int) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Author").
		Relation("Tags", tagsByID).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (r *Repository) InsertArticle(ctx context.Context, article *Article) error {
	if _, err := r.db.ModelContext(ctx, article).Insert(); err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

func (r *Repository) UpdateArticle(ctx context.Context, article *Article) error {
	if _, err := r.db.ModelContext(ctx, article).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	return nil
}

// ReplaceArticleTags rewrites the article_tags join rows for one article.
func (r *Repository) ReplaceArticleTags(ctx context.Context, articleID int, tagIDs []int) error {
	_, err := r.db.ModelContext(ctx, (*ArticleTag)(nil)).
		Where(`"at"."article_id" = ?`, articleID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to clear article tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]ArticleTag, len(tagIDs))
	for i, tagID := range tagIDs {
		rows[i] = ArticleTag{ArticleID: articleID, TagID: tagID}
	}

	if _, err := r.db.ModelContext(ctx, &rows).Insert(); err != nil {
		return fmt.Errorf("failed to insert article tags: %w", err)
	}

	return nil
}

// DeleteArticle removes the article together with its comments and tag
// references. Comments are owned by the article; tags are shared and only
// detached. Reports whether a row was deleted.
func (r *Repository) DeleteArticle(ctx context.Context, id int) (bool, error) {
	_, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."article_id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete article comments: %w", err)
	}

	_, err = r.db.ModelContext(ctx, (*ArticleTag)(nil)).
		Where(`"at"."article_id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to detach article tags: %w", err)
	}

	res, err := r.db.ModelContext(ctx, &Article{ID: id}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete article: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// ArticleSlugs returns existing article slugs starting with prefix,
// excluding the given article id (0 to exclude nothing).
func (r *Repository) ArticleSlugs(ctx context.Context, prefix string, excludeID int) ([]string, error) {
	var slugs []string
	err := r.db.ModelContext(ctx, (*Article)(nil)).
		Column("slug").
		Where(`"t"."slug" LIKE ?`, prefix+"%").
		Where(`"t"."id" != ?`, excludeID).
		Select(&slugs)
	if err != nil {
		return nil, fmt.Errorf("failed to query article slugs: %w", err)
	}

	return slugs, nil
}
