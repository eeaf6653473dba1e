package blogportal

import (
	"errors"
	"testing"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

func TestManager_ArticlesByFilter_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	t.Run("WithoutFiltersReturnsAllArticles", func(t *testing.T) {
		articles, err := manager.ArticlesByFilter(ctx, ArticleFilter{}, 1, 10)
		if err != nil {
			t.Fatalf("ArticlesByFilter: %v", err)
		}
		if len(articles) != 5 {
			t.Fatalf("expected 5 articles, got %d", len(articles))
		}
		for i := range articles {
			assertArticleBasic(t, &articles[i])
		}
	})

	t.Run("WithCategoryFilterReturnsFilteredArticles", func(t *testing.T) {
		articles, err := manager.ArticlesByFilter(ctx, ArticleFilter{CategoryID: intPtr(2)}, 1, 10)
		if err != nil {
			t.Fatalf("ArticlesByFilter: %v", err)
		}
		if len(articles) != 2 {
			t.Fatalf("expected 2 articles in category 2, got %d", len(articles))
		}
		for _, a := range articles {
			if a.CategoryID != 2 {
				t.Errorf("expected categoryID 2, got %d", a.CategoryID)
			}
		}
	})

	t.Run("WithTagFilterReturnsFilteredArticles", func(t *testing.T) {
		articles, err := manager.ArticlesByFilter(ctx, ArticleFilter{TagID: intPtr(4)}, 1, 10)
		if err != nil {
			t.Fatalf("ArticlesByFilter: %v", err)
		}
		if len(articles) != 3 {
			t.Fatalf("expected 3 articles with tag 4, got %d", len(articles))
		}
		for _, a := range articles {
			hasTag := false
			for _, tag := range a.Tags {
				if tag.ID == 4 {
					hasTag = true
					break
				}
			}
			if !hasTag {
				t.Errorf("article %d (%s) does not have tag 4", a.ID, a.Title)
			}
		}
	})

	t.Run("WithPaginationReturnsDistinctPages", func(t *testing.T) {
		page1, err := manager.ArticlesByFilter(ctx, ArticleFilter{}, 1, 2)
		if err != nil {
			t.Fatalf("ArticlesByFilter page1: %v", err)
		}
		page2, err := manager.ArticlesByFilter(ctx, ArticleFilter{}, 2, 2)
		if err != nil {
			t.Fatalf("ArticlesByFilter page2: %v", err)
		}
		if len(page1) != 2 || len(page2) != 2 {
			t.Fatalf("expected 2 items per page, got %d and %d", len(page1), len(page2))
		}

		seen := make(map[int]struct{}, 4)
		for _, a := range page1 {
			seen[a.ID] = struct{}{}
		}
		for _, a := range page2 {
			if _, ok := seen[a.ID]; ok {
				t.Fatalf("article %d appears on both pages", a.ID)
			}
		}
	})
}

func TestManager_ArticlesCount_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	tests := []struct {
		name   string
		filter ArticleFilter
		want   int
	}{
		{"WithoutFilters", ArticleFilter{}, 5},
		{"WithCategoryFilter", ArticleFilter{CategoryID: intPtr(1)}, 2},
		{"WithTagFilter", ArticleFilter{TagID: intPtr(4)}, 3},
		{"WithBothFilters", ArticleFilter{CategoryID: intPtr(1), TagID: intPtr(3)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := manager.ArticlesCount(ctx, tt.filter)
			if err != nil {
				t.Fatalf("ArticlesCount: %v", err)
			}
			if count != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, count)
			}
		})
	}
}

func TestManager_ArticleByID_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	t.Run("WithValidIDReturnsArticle", func(t *testing.T) {
		article, err := manager.ArticleByID(ctx, 1)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		assertArticleBasic(t, article)
		if article.Category.Title != "Technology" {
			t.Errorf("expected category Technology, got %q", article.Category.Title)
		}
		if article.Author.FullName != "Test Author1" {
			t.Errorf("expected author Test Author1, got %q", article.Author.FullName)
		}
		if len(article.Tags) != 2 {
			t.Errorf("expected 2 tags, got %d", len(article.Tags))
		}
	})

	t.Run("WithUnknownIDReturnsNotFound", func(t *testing.T) {
		_, err := manager.ArticleByID(ctx, 99999)
		var notFound NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got: %v", err)
		}
		if notFound.Error() != "Article not found" {
			t.Errorf("expected 'Article not found', got %q", notFound.Error())
		}
	})
}

func TestManager_CreateArticle_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	t.Run("Success", func(t *testing.T) {
		article, err := manager.CreateArticle(ctx, 3, ArticleInput{
			Title:      "Robotics in Modern Manufacturing",
			Body:       "Industrial robots now handle most repetitive assembly steps.",
			Status:     StatusPending,
			CategoryID: 1,
			TagIDs:     []int{3, 1},
		})
		if err != nil {
			t.Fatalf("CreateArticle: %v", err)
		}
		assertArticleBasic(t, article)
		if article.Slug != "robotics-in-modern-manufacturing" {
			t.Errorf("expected generated slug, got %q", article.Slug)
		}
		if article.Status != db.StatusPending {
			t.Errorf("expected status %d, got %d", db.StatusPending, article.Status)
		}
		if article.AuthorID != 3 {
			t.Errorf("expected author taken from caller, got %d", article.AuthorID)
		}
		if len(article.Tags) != 2 {
			t.Errorf("expected 2 tags, got %d", len(article.Tags))
		}
		if article.CreatedAt.IsZero() {
			t.Errorf("expected createdAt to be set")
		}
	})

	t.Run("DuplicateTitleGetsNumberedSlug", func(t *testing.T) {
		first, err := manager.CreateArticle(ctx, 3, ArticleInput{
			Title:      "Weekly News Roundup",
			Body:       "A short digest of everything that happened this week.",
			Status:     StatusDraft,
			CategoryID: 1,
		})
		if err != nil {
			t.Fatalf("CreateArticle first: %v", err)
		}
		if first.Slug != "weekly-news-roundup" {
			t.Fatalf("expected base slug, got %q", first.Slug)
		}

		second, err := manager.CreateArticle(ctx, 3, ArticleInput{
			Title:      "Weekly News Roundup",
			Body:       "A short digest of everything that happened this week.",
			Status:     StatusDraft,
			CategoryID: 1,
		})
		if err != nil {
			t.Fatalf("CreateArticle second: %v", err)
		}
		if second.Slug != "weekly-news-roundup-1" {
			t.Fatalf("expected numbered slug, got %q", second.Slug)
		}
	})

	t.Run("InvalidInputReportsAllFields", func(t *testing.T) {
		_, err := manager.CreateArticle(ctx, 3, ArticleInput{
			Title:  "",
			Body:   "short",
			Status: "Published",
		})
		var errs ValidationErrors
		if !errors.As(err, &errs) {
			t.Fatalf("expected ValidationErrors, got: %v", err)
		}
		for _, field := range []string{"title", "body", "status", "categoryId"} {
			if !hasFieldError(errs, field) {
				t.Errorf("expected field error for %q, got %v", field, errs)
			}
		}
	})

	t.Run("UnknownAuthorIsRejected", func(t *testing.T) {
		_, err := manager.CreateArticle(ctx, 99999, ArticleInput{
			Title:      "Ghost Written Piece",
			Body:       "This text should never be persisted anywhere.",
			Status:     StatusDraft,
			CategoryID: 1,
		})
		if !errors.Is(err, ErrUnknownAuthor) {
			t.Fatalf("expected ErrUnknownAuthor, got: %v", err)
		}
	})

	t.Run("UnknownCategoryAndTagsAreFieldErrors", func(t *testing.T) {
		_, err := manager.CreateArticle(ctx, 3, ArticleInput{
			Title:      "Dangling References",
			Body:       "References to rows that do not exist must be rejected.",
			Status:     StatusDraft,
			CategoryID: 99999,
			TagIDs:     []int{1, 99998},
		})
		var errs ValidationErrors
		if !errors.As(err, &errs) {
			t.Fatalf("expected ValidationErrors, got: %v", err)
		}
		if !hasFieldError(errs, "categoryId") {
			t.Errorf("expected categoryId error, got %v", errs)
		}
		if !hasFieldError(errs, "tags") {
			t.Errorf("expected tags error, got %v", errs)
		}
	})
}

func TestManager_ReplaceArticle_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	t.Run("OverwritesAllFields", func(t *testing.T) {
		before, err := manager.ArticleByID(ctx, 1)
		if err != nil {
			t.Fatalf("ArticleByID before: %v", err)
		}

		err = manager.ReplaceArticle(ctx, 1, 1, ArticleInput{
			Title:      "AI Breakthrough Revisited",
			Body:       "A closer look at the models behind the recent breakthrough.",
			Status:     StatusPending,
			CategoryID: 2,
			TagIDs:     []int{3},
		})
		if err != nil {
			t.Fatalf("ReplaceArticle: %v", err)
		}

		after, err := manager.ArticleByID(ctx, 1)
		if err != nil {
			t.Fatalf("ArticleByID after: %v", err)
		}
		if after.Title != "AI Breakthrough Revisited" {
			t.Errorf("title not replaced: %q", after.Title)
		}
		if after.Slug != "ai-breakthrough-revisited" {
			t.Errorf("expected regenerated slug, got %q", after.Slug)
		}
		if after.Status != db.StatusPending {
			t.Errorf("status not replaced: %d", after.Status)
		}
		if after.CategoryID != 2 {
			t.Errorf("category not replaced: %d", after.CategoryID)
		}
		if len(after.Tags) != 1 || after.Tags[0].ID != 3 {
			t.Errorf("tags not replaced: %+v", after.Tags)
		}
		if before.AuthorID != 3 {
			t.Fatalf("fixture author changed: %d", before.AuthorID)
		}
		if after.AuthorID != 1 {
			t.Errorf("author must follow the editor: got %d", after.AuthorID)
		}
		if !after.CreatedAt.Equal(before.CreatedAt) {
			t.Errorf("createdAt must be preserved")
		}
	})

	t.Run("SameTitleKeepsSlug", func(t *testing.T) {
		before, err := manager.ArticleByID(ctx, 2)
		if err != nil {
			t.Fatalf("ArticleByID before: %v", err)
		}

		err = manager.ReplaceArticle(ctx, 3, 2, ArticleInput{
			Title:      before.Title,
			Body:       "Rewritten body with the exact same title as before.",
			Status:     StatusPublish,
			CategoryID: before.CategoryID,
		})
		if err != nil {
			t.Fatalf("ReplaceArticle: %v", err)
		}

		after, err := manager.ArticleByID(ctx, 2)
		if err != nil {
			t.Fatalf("ArticleByID after: %v", err)
		}
		if after.Slug != before.Slug {
			t.Errorf("slug must not change for unchanged title: got %q want %q", after.Slug, before.Slug)
		}
	})

	t.Run("InvalidInputLeavesArticleUntouched", func(t *testing.T) {
		before, err := manager.ArticleByID(ctx, 3)
		if err != nil {
			t.Fatalf("ArticleByID before: %v", err)
		}

		err = manager.ReplaceArticle(ctx, 3, 3, ArticleInput{Title: "", Body: "x", Status: "nope"})
		var errs ValidationErrors
		if !errors.As(err, &errs) {
			t.Fatalf("expected ValidationErrors, got: %v", err)
		}

		after, err := manager.ArticleByID(ctx, 3)
		if err != nil {
			t.Fatalf("ArticleByID after: %v", err)
		}
		if after.Title != before.Title || after.Body != before.Body || after.Status != before.Status {
			t.Errorf("article mutated by rejected replace")
		}
	})

	t.Run("UnknownIDReturnsNotFound", func(t *testing.T) {
		err := manager.ReplaceArticle(ctx, 1, 99999, ArticleInput{
			Title:      "Nobody Home",
			Body:       "There is no article with this identifier.",
			Status:     StatusDraft,
			CategoryID: 1,
		})
		var notFound NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got: %v", err)
		}
	})

	t.Run("UnknownCallerIsRejected", func(t *testing.T) {
		err := manager.ReplaceArticle(ctx, 99999, 2, ArticleInput{
			Title:      "Orphaned Edit",
			Body:       "An edit from a caller that does not resolve to a user.",
			Status:     StatusDraft,
			CategoryID: 1,
		})
		if !errors.Is(err, ErrUnknownAuthor) {
			t.Fatalf("expected ErrUnknownAuthor, got: %v", err)
		}
	})
}

func TestManager_MergeArticle_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	t.Run("BodyOnlyLeavesTitleAndSlug", func(t *testing.T) {
		before, err := manager.ArticleByID(ctx, 1)
		if err != nil {
			t.Fatalf("ArticleByID before: %v", err)
		}

		err = manager.MergeArticle(ctx, 1, 1, ArticleMerge{
			Body: strPtr("Only the body changes in this partial update."),
		})
		if err != nil {
			t.Fatalf("MergeArticle: %v", err)
		}

		after, err := manager.ArticleByID(ctx, 1)
		if err != nil {
			t.Fatalf("ArticleByID after: %v", err)
		}
		if after.Body != "Only the body changes in this partial update." {
			t.Errorf("body not merged: %q", after.Body)
		}
		if after.Title != before.Title || after.Slug != before.Slug {
			t.Errorf("title/slug must be untouched")
		}
		if len(after.Tags) != len(before.Tags) {
			t.Errorf("tags must be untouched when absent from payload")
		}
		if after.AuthorID != 1 {
			t.Errorf("author must follow the editor on a body change: got %d", after.AuthorID)
		}
	})

	t.Run("TitleChangeRegeneratesSlug", func(t *testing.T) {
		err := manager.MergeArticle(ctx, 3, 2, ArticleMerge{
			Title: strPtr("Quantum Leap Forward"),
		})
		if err != nil {
			t.Fatalf("MergeArticle: %v", err)
		}

		after, err := manager.ArticleByID(ctx, 2)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if after.Slug != "quantum-leap-forward" {
			t.Errorf("expected regenerated slug, got %q", after.Slug)
		}
	})

	t.Run("TagsPresentReplacesTags", func(t *testing.T) {
		err := manager.MergeArticle(ctx, 1, 3, ArticleMerge{
			TagIDs: intsPtr([]int{1, 5}),
		})
		if err != nil {
			t.Fatalf("MergeArticle: %v", err)
		}

		after, err := manager.ArticleByID(ctx, 3)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if len(after.Tags) != 2 || after.Tags[0].ID != 1 || after.Tags[1].ID != 5 {
			t.Errorf("tags not replaced: %+v", after.Tags)
		}
		if after.AuthorID != 3 {
			t.Errorf("tag-only merge must not reassign the author: got %d", after.AuthorID)
		}
	})

	t.Run("EmptyTagListClearsTags", func(t *testing.T) {
		err := manager.MergeArticle(ctx, 1, 5, ArticleMerge{
			TagIDs: intsPtr([]int{}),
		})
		if err != nil {
			t.Fatalf("MergeArticle: %v", err)
		}

		after, err := manager.ArticleByID(ctx, 5)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if len(after.Tags) != 0 {
			t.Errorf("expected tags cleared, got %+v", after.Tags)
		}
	})

	t.Run("StatusOnly", func(t *testing.T) {
		err := manager.MergeArticle(ctx, 3, 4, ArticleMerge{
			Status: strPtr(StatusPublish),
		})
		if err != nil {
			t.Fatalf("MergeArticle: %v", err)
		}

		after, err := manager.ArticleByID(ctx, 4)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if after.Status != db.StatusPublish {
			t.Errorf("status not merged: %d", after.Status)
		}
		if after.AuthorID != 1 {
			t.Errorf("status-only merge must not reassign the author: got %d", after.AuthorID)
		}
	})

	t.Run("InvalidPresentFieldIsRejected", func(t *testing.T) {
		err := manager.MergeArticle(ctx, 3, 1, ArticleMerge{
			Status: strPtr("Published"),
		})
		var errs ValidationErrors
		if !errors.As(err, &errs) {
			t.Fatalf("expected ValidationErrors, got: %v", err)
		}
		if !hasFieldError(errs, "status") {
			t.Errorf("expected status error, got %v", errs)
		}
	})

	t.Run("UnknownIDReturnsNotFound", func(t *testing.T) {
		err := manager.MergeArticle(ctx, 1, 99999, ArticleMerge{Body: strPtr("does not matter here")})
		var notFound NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got: %v", err)
		}
	})

	t.Run("UnknownCallerIsRejected", func(t *testing.T) {
		err := manager.MergeArticle(ctx, 99999, 1, ArticleMerge{Body: strPtr("edit from nobody")})
		if !errors.Is(err, ErrUnknownAuthor) {
			t.Fatalf("expected ErrUnknownAuthor, got: %v", err)
		}
	})
}

func TestManager_DeleteArticle_Integration(t *testing.T) {
	tx, ctx, manager := withTx(t)

	t.Run("UnknownCallerIsRejected", func(t *testing.T) {
		err := manager.DeleteArticle(ctx, 99999, 1)
		if !errors.Is(err, ErrUnknownAuthor) {
			t.Fatalf("expected ErrUnknownAuthor, got: %v", err)
		}
	})

	t.Run("RemovesArticleAndComments", func(t *testing.T) {
		if err := manager.DeleteArticle(ctx, 1, 1); err != nil {
			t.Fatalf("DeleteArticle: %v", err)
		}

		_, err := manager.ArticleByID(ctx, 1)
		var notFound NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError after delete, got: %v", err)
		}

		repo := db.New(tx)
		comments, err := repo.CommentsByArticleID(ctx, 1)
		if err != nil {
			t.Fatalf("CommentsByArticleID: %v", err)
		}
		if len(comments) != 0 {
			t.Fatalf("expected comments deleted with article, got %d", len(comments))
		}
	})

	t.Run("UnknownIDReturnsNotFound", func(t *testing.T) {
		err := manager.DeleteArticle(ctx, 1, 99999)
		var notFound NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got: %v", err)
		}
	})
}

func TestManager_TagsByArticleCategory_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	t.Run("ReturnsDistinctTagsOfCategory", func(t *testing.T) {
		tags, err := manager.TagsByArticleCategory(ctx, 1)
		if err != nil {
			t.Fatalf("TagsByArticleCategory: %v", err)
		}
		want := map[int]bool{1: true, 2: true, 3: true, 4: true}
		if len(tags) != len(want) {
			t.Fatalf("expected %d tags, got %d", len(want), len(tags))
		}
		for _, tag := range tags {
			if !want[tag.ID] {
				t.Errorf("unexpected tag %d", tag.ID)
			}
		}
	})

	t.Run("UnknownArticleReturnsNotFound", func(t *testing.T) {
		_, err := manager.TagsByArticleCategory(ctx, 99999)
		var notFound NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got: %v", err)
		}
	})
}

func TestManager_DetachComment_Integration(t *testing.T) {
	tx, ctx, manager := withTx(t)

	t.Run("ClearsArticleReference", func(t *testing.T) {
		if err := manager.DetachComment(ctx, 1); err != nil {
			t.Fatalf("DetachComment: %v", err)
		}

		repo := db.New(tx)
		comment, err := repo.CommentByID(ctx, 1)
		if err != nil {
			t.Fatalf("CommentByID: %v", err)
		}
		if comment == nil {
			t.Fatalf("expected comment to survive detach")
		}
		if comment.ArticleID != nil {
			t.Fatalf("expected nil ArticleID, got %d", *comment.ArticleID)
		}
	})

	t.Run("UnknownCommentReturnsNotFound", func(t *testing.T) {
		err := manager.DetachComment(ctx, 99999)
		var notFound NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got: %v", err)
		}
	})
}
