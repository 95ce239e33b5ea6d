// Package progress persists how far a reader has scrolled through a document.
package progress

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Position is a saved reading position within a document.
type Position struct {
	Section   int
	YOffset   int
	UpdatedAt time.Time
}

// IsZero reports whether nothing has been saved.
func (p Position) IsZero() bool {
	return p.Section == 0 && p.YOffset == 0 && p.UpdatedAt.IsZero()
}

// Store is a sqlite-backed reading position store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies migrations.
// Migration output goes to logger.
func Open(path string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	goose.SetLogger(&gooseLogger{logger})
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the saved position for documentID, or the zero Position if
// none has been saved.
func (s *Store) Load(ctx context.Context, documentID string) (Position, error) {
	var (
		pos     Position
		updated int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT section_index, y_offset, updated_at
		FROM reading_positions
		WHERE document_id = ?
	`, documentID).Scan(&pos.Section, &pos.YOffset, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, nil
	}
	if err != nil {
		return Position{}, fmt.Errorf("load position for %q: %w", documentID, err)
	}
	if updated > 0 {
		pos.UpdatedAt = time.Unix(updated, 0)
	}
	return pos, nil
}

// Save stores pos for documentID, replacing any earlier position.
// A zero UpdatedAt is stamped with the current time.
func (s *Store) Save(ctx context.Context, documentID string, pos Position) error {
	if pos.UpdatedAt.IsZero() {
		pos.UpdatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reading_positions (document_id, section_index, y_offset, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(document_id) DO UPDATE SET
			section_index = excluded.section_index,
			y_offset = excluded.y_offset,
			updated_at = excluded.updated_at
	`, documentID, pos.Section, pos.YOffset, pos.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("save position for %q: %w", documentID, err)
	}
	return nil
}
