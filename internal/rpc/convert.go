package rpc

import "github.com/daniilsolovey/blog-portal/internal/blogportal"

func NewArticle(a blogportal.Article) Article {
	return Article{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Body:      a.Body,
		Status:    blogportal.StatusName(a.Status),
		Category:  NewCategory(a.Category),
		Author:    a.Author.FullName,
		Tags:      NewTags(a.Tags),
		CreatedAt: a.CreatedAt,
	}
}

func NewCategory(c blogportal.Category) Category {
	return Category{
		ID:    c.ID,
		Title: c.Title,
		Slug:  c.Slug,
	}
}

func NewTag(t blogportal.Tag) Tag {
	return Tag{
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

func NewArticles(list []blogportal.Article) []Article {
	result := make([]Article, len(list))
	for i := range list {
		result[i] = NewArticle(list[i])
	}
	return result
}

func NewCategories(list []blogportal.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(list[i])
	}
	return result
}

func NewTags(list []blogportal.Tag) []Tag {
	result := make([]Tag, len(list))
	for i := range list {
		result[i] = NewTag(list[i])
	}
	return result
}
