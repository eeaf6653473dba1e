package blogportal

import "github.com/daniilsolovey/blog-portal/internal/db"

func mapList[From, To any](list []From, converter func(*From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(&list[i])
	}
	return result
}

func NewUsers(list []db.User) []User {
	return mapList(list, NewUser)
}

func NewCategories(list []db.Category) []Category {
	return mapList(list, NewCategory)
}

func NewTags(list []db.Tag) []Tag {
	return mapList(list, NewTag)
}

func NewArticles(list []db.Article) []Article {
	return mapList(list, NewArticle)
}
