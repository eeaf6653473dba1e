package blogportal

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func (m *Manager) Users(ctx context.Context) ([]User, error) {
	list, err := m.db.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get users: %w", err)
	}

	return NewUsers(list), nil
}

func (m *Manager) UserByID(ctx context.Context, id int) (*User, error) {
	dbUser, err := m.db.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	} else if dbUser == nil {
		return nil, NotFoundError{Resource: "User"}
	}

	user := NewUser(dbUser)
	return &user, nil
}

func (m *Manager) CreateUser(ctx context.Context, in UserInput) (*User, error) {
	if errs := validateUserInput(in); len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *db.User
	err = m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		created = &db.User{
			FullName:     in.FullName,
			UserName:     in.UserName,
			Email:        in.Email,
			PasswordHash: string(hash),
			Roles:        in.Roles,
			CreatedAt:    time.Now(),
		}

		if err := repo.InsertUser(ctx, created); err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("insert user: %w", ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	user := NewUser(created)
	return &user, nil
}

func (m *Manager) ReplaceUser(ctx context.Context, id int, in UserInput) error {
	if errs := validateUserInput(in); len(errs) > 0 {
		return errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		current, err := repo.UserByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return NotFoundError{Resource: "User"}
		}

		updated := &db.User{
			ID:           id,
			FullName:     in.FullName,
			UserName:     in.UserName,
			Email:        in.Email,
			PasswordHash: string(hash),
			Roles:        in.Roles,
			CreatedAt:    current.CreatedAt,
		}

		if err := repo.UpdateUser(ctx, updated); err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("update user: %w", ErrConflict)
			}
			return err
		}
		return nil
	})
}

// DeleteUser removes the user. Users still referenced as article or comment
// authors are protected by the store's RESTRICT foreign keys and surface as
// Conflict.
func (m *Manager) DeleteUser(ctx context.Context, id int) error {
	return m.db.WithTransaction(ctx, func(repo *db.Repository) error {
		found, err := repo.DeleteUser(ctx, id)
		if err != nil {
			if db.IsConflict(err) {
				return fmt.Errorf("delete user: %w", ErrConflict)
			}
			return err
		}
		if !found {
			return NotFoundError{Resource: "User"}
		}
		return nil
	})
}
