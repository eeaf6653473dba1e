package rpc

import "time"

type ArticlesFilter struct {
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//tagId optional tag filter
	TagID *int `json:"tagId,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

type ArticleByIDRequest struct {
	//id article numeric ID
	ID int `json:"id"`
}

type Category struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Article struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	Category  Category  `json:"category"`
	Author    string    `json:"author"`
	Tags      []Tag     `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}
