// Package database implements the durable deploy-history store on SQLite.
package database

import (
	"database/sql"
	"fmt"
	"time"

	"gigawall/internal/database/migrations"
	"gigawall/internal/gigawall"
	"gigawall/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteDatabase implements the HistoryDB interface using SQLite.
type SQLiteDatabase struct {
	db   *sql.DB
	path string
}

// NewSQLiteDatabase opens a SQLite history database at path and brings its
// schema up to date. path can be a file path or ":memory:".
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating history database: %w", err)
	}

	return &SQLiteDatabase{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite connection with appropriate
// PRAGMAs. Exported for tools and tests that need a raw connection.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Foreign keys default to OFF in SQLite for backward compatibility.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// CreateDeployOperation inserts a new running operation row.
func (s *SQLiteDatabase) CreateDeployOperation(operation, parameters string) (*model.DeployOperation, error) {
	startedAt := time.Now().UTC()

	res, err := s.db.Exec(
		`INSERT INTO deploy_operations (operation, parameters, started_at, status) VALUES (?, ?, ?, ?)`,
		operation, parameters, startedAt, model.DeployRunning,
	)
	if err != nil {
		return nil, fmt.Errorf("creating deploy operation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading deploy operation id: %w", err)
	}

	return &model.DeployOperation{
		ID:         id,
		Operation:  operation,
		Parameters: parameters,
		StartedAt:  startedAt,
		Status:     model.DeployRunning,
	}, nil
}

// FinishDeployOperation stamps the finish time, status and upload count.
func (s *SQLiteDatabase) FinishDeployOperation(id int64, status string, filesUploaded int) error {
	res, err := s.db.Exec(
		`UPDATE deploy_operations SET finished_at = ?, status = ?, files_uploaded = ? WHERE id = ?`,
		time.Now().UTC(), status, filesUploaded, id,
	)
	if err != nil {
		return fmt.Errorf("finishing deploy operation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finishing deploy operation: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("deploy operation not found: %d", id)
	}
	return nil
}

// RecentDeployOperations returns up to limit operations, newest first.
func (s *SQLiteDatabase) RecentDeployOperations(limit int) ([]*model.DeployOperation, error) {
	rows, err := s.db.Query(
		`SELECT id, operation, parameters, started_at, finished_at, status, files_uploaded
		 FROM deploy_operations ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing deploy operations: %w", err)
	}
	defer rows.Close()

	var ops []*model.DeployOperation
	for rows.Next() {
		var op model.DeployOperation
		var finishedAt sql.NullTime
		if err := rows.Scan(&op.ID, &op.Operation, &op.Parameters, &op.StartedAt, &finishedAt, &op.Status, &op.FilesUploaded); err != nil {
			return nil, fmt.Errorf("scanning deploy operation: %w", err)
		}
		if finishedAt.Valid {
			t := finishedAt.Time
			op.FinishedAt = &t
		}
		ops = append(ops, &op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing deploy operations: %w", err)
	}
	return ops, nil
}

// Close closes the database connection.
func (s *SQLiteDatabase) Close() error {
	return s.db.Close()
}

// Compile-time check that SQLiteDatabase implements the HistoryDB interface.
var _ gigawall.HistoryDB = (*SQLiteDatabase)(nil)
