package rest

import "time"

// View records: explicit allow-list projections, never full-object dumps.

type Article struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	Category  string    `json:"category"`
	Tags      string    `json:"tags"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type Category struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type User struct {
	ID        int       `json:"id"`
	FullName  string    `json:"fullName"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// Request payloads.

type ArticlesRequest struct {
	CategoryID *int `query:"categoryId"`
	TagID      *int `query:"tagId"`
	Page       *int `query:"page"`
	PageSize   *int `query:"pageSize"`
}

type ArticleRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Status     string `json:"status"`
	CategoryID int    `json:"categoryId"`
	Tags       []int  `json:"tags"`
}

type ArticleMergeRequest struct {
	Title      *string `json:"title"`
	Body       *string `json:"body"`
	Status     *string `json:"status"`
	CategoryID *int    `json:"categoryId"`
	Tags       *[]int  `json:"tags"`
}

type CategoryRequest struct {
	Title string `json:"title"`
}

type TagRequest struct {
	Name string `json:"name"`
}

type UserRequest struct {
	FullName string   `json:"fullName"`
	UserName string   `json:"userName"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}
