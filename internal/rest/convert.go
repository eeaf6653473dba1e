package rest

import (
	"strings"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticle(a blogportal.Article) Article {
	return Article{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Body:      a.Body,
		Status:    blogportal.StatusName(a.Status),
		Category:  a.Category.Title,
		Tags:      joinTagNames(a.Tags),
		Author:    a.Author.FullName,
		CreatedAt: a.CreatedAt,
	}
}

func NewCategory(c blogportal.Category) Category {
	return Category{
		ID:        c.ID,
		Title:     c.Title,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewTag(t blogportal.Tag) Tag {
	return Tag{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func NewUser(u blogportal.User) User {
	return User{
		ID:        u.ID,
		FullName:  u.FullName,
		UserName:  u.UserName,
		Email:     u.Email,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
	}
}

func NewArticles(list []blogportal.Article) []Article {
	return Map(list, NewArticle)
}

func NewCategories(list []blogportal.Category) []Category {
	return Map(list, NewCategory)
}

func NewTags(list []blogportal.Tag) []Tag {
	return Map(list, NewTag)
}

func NewUsers(list []blogportal.User) []User {
	return Map(list, NewUser)
}

// joinTagNames joins tag names with a bare comma, empty string for no tags.
func joinTagNames(tags []blogportal.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	names := make([]string, len(tags))
	for i := range tags {
		names[i] = tags[i].Name
	}
	return strings.Join(names, ",")
}
