package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yunxiao-dev/teachboard/internal/domain"
	"github.com/yunxiao-dev/teachboard/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection and hands out repository implementations.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

// Users returns the user repository backed by this database.
func (d *DB) Users() domain.UserRepository {
	return NewUserRepository(d)
}

// Roles returns the role repository backed by this database.
func (d *DB) Roles() domain.RoleRepository {
	return NewRoleRepository(d)
}

// Activities returns the activity repository backed by this database.
func (d *DB) Activities() domain.ActivityRepository {
	return NewActivityRepository(d)
}
