package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Users(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.ModelContext(ctx, &users).
		OrderExpr(`"t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return users, nil
}

func (r *Repository) UserByID(ctx context.Context, id int) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) InsertUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &User{ID: id}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
