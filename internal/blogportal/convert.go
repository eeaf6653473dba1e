package blogportal

import "github.com/daniilsolovey/blog-portal/internal/db"

func NewUser(u *db.User) User {
	return User{User: *u}
}

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewComment(c *db.Comment) Comment {
	return Comment{Comment: *c}
}

func NewArticle(a *db.Article) Article {
	article := Article{Article: *a}

	if a.Category != nil {
		article.Category = NewCategory(a.Category)
	}

	if a.Author != nil {
		article.Author = NewUser(a.Author)
	}

	article.Tags = make([]Tag, len(a.Tags))
	for i := range a.Tags {
		article.Tags[i] = NewTag(&a.Tags[i])
	}

	return article
}
