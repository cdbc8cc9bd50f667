package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yunxiao-dev/teachboard/internal/domain"
)

// RoleRepository implements domain.RoleRepository using SQLite.
type RoleRepository struct {
	db *sql.DB
}

// NewRoleRepository creates a new SQLite-backed RoleRepository.
func NewRoleRepository(db *DB) *RoleRepository {
	return &RoleRepository{db: db.SqlDB}
}

func (r *RoleRepository) Get(ctx context.Context, userID int64) (string, error) {
	var role string
	err := r.db.QueryRowContext(ctx,
		"SELECT role FROM user_roles WHERE user_id = ?", userID,
	).Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("query role: %w", err)
	}
	return role, nil
}

// Assign sets the role for a user, replacing any existing mapping.
func (r *RoleRepository) Assign(ctx context.Context, userID int64, role string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET role = excluded.role`,
		userID, role,
	)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}
