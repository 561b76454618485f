package repository

import (
	"context"
	"fmt"
)

var schema = map[Dialect][]string{
	DialectSQLite: {
		`CREATE TABLE IF NOT EXISTS users (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			name     VARCHAR(100) NOT NULL,
			email    VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    INTEGER NOT NULL,
			rating     INTEGER,
			comment    TEXT NOT NULL,
			sentiment  VARCHAR(50),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	DialectPostgres: {
		`CREATE TABLE IF NOT EXISTS users (
			id       BIGSERIAL PRIMARY KEY,
			name     VARCHAR(100) NOT NULL,
			email    VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL,
			rating     INTEGER,
			comment    TEXT NOT NULL,
			sentiment  VARCHAR(50),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	DialectMySQL: {
		`CREATE TABLE IF NOT EXISTS users (
			id       BIGINT AUTO_INCREMENT PRIMARY KEY,
			name     VARCHAR(100) NOT NULL,
			email    VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id         BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id    BIGINT NOT NULL,
			rating     INT,
			comment    TEXT NOT NULL,
			sentiment  VARCHAR(50),
			created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
}

// Migrate creates the users and feedback tables when they do not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	stmts, ok := schema[db.dialect]
	if !ok {
		return fmt.Errorf("no schema for dialect %q", db.dialect)
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrating %s schema: %w", db.dialect, err)
		}
	}
	return nil
}
