package rpc

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func TestBlogService_Articles_FailedQueryReturnsNoResult(t *testing.T) {
	unreachable := pg.Connect(&pg.Options{Addr: "localhost:1", User: "nobody", Database: "nowhere"})
	defer unreachable.Close()

	service := NewBlogService(blogportal.NewManager(db.New(unreachable)))

	articles, err := service.Articles(context.Background(), ArticlesFilter{})
	if err == nil {
		t.Fatalf("expected an error from the unreachable database")
	}
	if articles != nil {
		t.Fatalf("expected no result alongside the error, got %v", articles)
	}
}
