package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

// Article status values as stored in the articles.status column.
const (
	StatusDraft   = 0
	StatusPending = 1
	StatusPublish = 2
)

func init() {
	// Required for the Article.Tags many2many relation.
	orm.RegisterTable((*ArticleTag)(nil))
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"id,pk"`
	FullName     string    `pg:"full_name,use_zero"`
	UserName     string    `pg:"user_name,use_zero"`
	Email        string    `pg:"email,use_zero"`
	PasswordHash string    `pg:"password_hash,use_zero"`
	Roles        []string  `pg:"roles,array,use_zero"`
	CreatedAt    time.Time `pg:"created_at,use_zero"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	Title     string    `pg:"title,use_zero"`
	Slug      string    `pg:"slug,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
	UpdatedAt time.Time `pg:"updated_at,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	Name      string    `pg:"name,use_zero"`
	Slug      string    `pg:"slug,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
	UpdatedAt time.Time `pg:"updated_at,use_zero"`
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID         int       `pg:"id,pk"`
	Title      string    `pg:"title,use_zero"`
	Slug       string    `pg:"slug,use_zero"`
	Body       string    `pg:"body,use_zero"`
	Status     int       `pg:"status,use_zero"`
	CategoryID int       `pg:"category_id,use_zero"`
	AuthorID   int       `pg:"author_id,use_zero"`
	CreatedAt  time.Time `pg:"created_at,use_zero"`
	UpdatedAt  time.Time `pg:"updated_at,use_zero"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
	Author   *User     `pg:"fk:author_id,rel:has-one"`
	Tags     []Tag     `pg:"many2many:article_tags"`
	Comments []Comment `pg:"rel:has-many"`
}

// ArticleTag is the join table behind the Article<->Tag many-to-many relation.
type ArticleTag struct {
	tableName struct{} `pg:"article_tags,alias:at"`

	ArticleID int `pg:"article_id,pk"`
	TagID     int `pg:"tag_id,pk"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	Content     string    `pg:"content,use_zero"`
	PublishedAt time.Time `pg:"published_at,use_zero"`
	ArticleID   *int      `pg:"article_id"`
	AuthorID    int       `pg:"author_id,use_zero"`

	Author *User `pg:"fk:author_id,rel:has-one"`
}
