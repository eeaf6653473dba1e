package blogportal

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Article statuses as exposed to API clients.
const (
	StatusDraft   = "Draft"
	StatusPending = "Pending"
	StatusPublish = "Publish"
)

var statusNames = map[int]string{
	db.StatusDraft:   StatusDraft,
	db.StatusPending: StatusPending,
	db.StatusPublish: StatusPublish,
}

var statusValues = map[string]int{
	StatusDraft:   db.StatusDraft,
	StatusPending: db.StatusPending,
	StatusPublish: db.StatusPublish,
}

// StatusName converts a stored status value to its API name.
func StatusName(status int) string {
	return statusNames[status]
}

// ParseStatus converts an API status name to its stored value.
func ParseStatus(name string) (int, bool) {
	v, ok := statusValues[name]
	return v, ok
}

type User struct {
	db.User
}

type Category struct {
	db.Category
}

type Tag struct {
	db.Tag
}

type Article struct {
	db.Article
	Category Category
	Author   User
	Tags     []Tag
}

type Comment struct {
	db.Comment
}
