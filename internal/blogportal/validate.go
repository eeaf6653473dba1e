package blogportal

import (
	"net/mail"
	"strings"
)

// Explicit per-field validators. Each entity validator returns the full list
// of violated constraints so clients always see every offending field.

const (
	maxTitleLen = 255
	maxNameLen  = 64
	minBodyLen  = 10
)

func validateTitle(title string, errs ValidationErrors) ValidationErrors {
	if strings.TrimSpace(title) == "" {
		return append(errs, FieldError{Field: "title", Message: "must not be blank"})
	}
	if len(title) > maxTitleLen {
		return append(errs, FieldError{Field: "title", Message: "must be at most 255 characters"})
	}
	return errs
}

func validateBody(body string, errs ValidationErrors) ValidationErrors {
	if strings.TrimSpace(body) == "" {
		return append(errs, FieldError{Field: "body", Message: "must not be blank"})
	}
	if len(body) < minBodyLen {
		return append(errs, FieldError{Field: "body", Message: "must be at least 10 characters"})
	}
	return errs
}

func validateStatus(status string, errs ValidationErrors) ValidationErrors {
	if _, ok := ParseStatus(status); !ok {
		return append(errs, FieldError{Field: "status", Message: "must be one of Draft, Pending, Publish"})
	}
	return errs
}

func validateArticleInput(in ArticleInput) ValidationErrors {
	var errs ValidationErrors
	errs = validateTitle(in.Title, errs)
	errs = validateBody(in.Body, errs)
	errs = validateStatus(in.Status, errs)
	if in.CategoryID <= 0 {
		errs = append(errs, FieldError{Field: "categoryId", Message: "must reference a category"})
	}
	return errs
}

func validateCategoryInput(in CategoryInput) ValidationErrors {
	var errs ValidationErrors
	errs = validateTitle(in.Title, errs)
	return errs
}

func validateTagInput(in TagInput) ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "must not be blank"})
	} else if len(in.Name) > maxTitleLen {
		errs = append(errs, FieldError{Field: "name", Message: "must be at most 255 characters"})
	}
	return errs
}

func validateUserInput(in UserInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(in.FullName) == "" {
		errs = append(errs, FieldError{Field: "fullName", Message: "must not be blank"})
	} else if len(in.FullName) > maxNameLen {
		errs = append(errs, FieldError{Field: "fullName", Message: "must be at most 64 characters"})
	}

	if strings.TrimSpace(in.UserName) == "" {
		errs = append(errs, FieldError{Field: "userName", Message: "must not be blank"})
	} else if len(in.UserName) > maxNameLen {
		errs = append(errs, FieldError{Field: "userName", Message: "must be at most 64 characters"})
	}

	if in.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "must not be blank"})
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	} else if len(in.Email) > maxNameLen {
		errs = append(errs, FieldError{Field: "email", Message: "must be at most 64 characters"})
	}

	if in.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "must not be blank"})
	}

	if len(in.Roles) == 0 {
		errs = append(errs, FieldError{Field: "roles", Message: "must not be empty"})
	}

	return errs
}
