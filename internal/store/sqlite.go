package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pitchdeck-ai/platform/internal/model"
)

// SQLiteStore persists decks, slide collections, and version collections
// as JSON blobs in an embedded sqlite database. Each table is a keyed
// blob store; the deck record and its slide collection are written inside
// one transaction.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and ensures
// the schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			tenant_id TEXT NOT NULL DEFAULT '',
			data TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS deck_slides (
			deck_id TEXT PRIMARY KEY,
			data TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS slide_versions (
			slide_id TEXT PRIMARY KEY,
			data TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_decks_tenant ON decks(tenant_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// ListDecks returns decks in creation order.
func (s *SQLiteStore) ListDecks(ctx context.Context, tenantID string) ([]model.Deck, error) {
	query := `SELECT data FROM decks ORDER BY rowid`
	args := []any{}
	if tenantID != "" {
		query = `SELECT data FROM decks WHERE tenant_id = ? ORDER BY rowid`
		args = append(args, tenantID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	defer rows.Close()

	var decks []model.Deck
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		var deck model.Deck
		if err := json.Unmarshal([]byte(raw), &deck); err != nil {
			return nil, fmt.Errorf("failed to decode deck: %w", err)
		}
		decks = append(decks, deck)
	}
	return decks, rows.Err()
}

// GetDeck retrieves a deck by id.
func (s *SQLiteStore) GetDeck(ctx context.Context, id string) (*model.Deck, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM decks WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	var deck model.Deck
	if err := json.Unmarshal([]byte(raw), &deck); err != nil {
		return nil, fmt.Errorf("failed to decode deck: %w", err)
	}
	return &deck, nil
}

// PutDeck writes the deck record and its slide collection in one
// transaction.
func (s *SQLiteStore) PutDeck(ctx context.Context, deck *model.Deck, slides []model.Slide) error {
	deckData, err := json.Marshal(deck)
	if err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}
	slideData, err := json.Marshal(slides)
	if err != nil {
		return fmt.Errorf("failed to encode slides: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO decks (id, tenant_id, data) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET tenant_id = excluded.tenant_id, data = excluded.data`,
		deck.ID, deck.TenantID, string(deckData),
	); err != nil {
		return fmt.Errorf("failed to write deck: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO deck_slides (deck_id, data) VALUES (?, ?)
		 ON CONFLICT(deck_id) DO UPDATE SET data = excluded.data`,
		deck.ID, string(slideData),
	); err != nil {
		return fmt.Errorf("failed to write slides: %w", err)
	}

	return tx.Commit()
}

// DeleteDeck removes the deck, its slide collection, and every slide's
// version collection in one transaction.
func (s *SQLiteStore) DeleteDeck(ctx context.Context, id string) error {
	slides, err := s.GetSlides(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM deck_slides WHERE deck_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete slides: %w", err)
	}
	for _, slide := range slides {
		if _, err := tx.ExecContext(ctx, `DELETE FROM slide_versions WHERE slide_id = ?`, slide.ID); err != nil {
			return fmt.Errorf("failed to delete slide versions: %w", err)
		}
	}

	return tx.Commit()
}

// GetSlides returns the slide collection for a deck.
func (s *SQLiteStore) GetSlides(ctx context.Context, deckID string) ([]model.Slide, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM deck_slides WHERE deck_id = ?`, deckID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slides: %w", err)
	}

	var slides []model.Slide
	if err := json.Unmarshal([]byte(raw), &slides); err != nil {
		return nil, fmt.Errorf("failed to decode slides: %w", err)
	}
	return slides, nil
}

// PutSlides replaces the slide collection for a deck.
func (s *SQLiteStore) PutSlides(ctx context.Context, deckID string, slides []model.Slide) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM decks WHERE id = ?`, deckID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check deck: %w", err)
	}

	data, err := json.Marshal(slides)
	if err != nil {
		return fmt.Errorf("failed to encode slides: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO deck_slides (deck_id, data) VALUES (?, ?)
		 ON CONFLICT(deck_id) DO UPDATE SET data = excluded.data`,
		deckID, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write slides: %w", err)
	}
	return nil
}

// GetVersions returns the version collection for a slide. A slide with no
// saved versions yields an empty collection.
func (s *SQLiteStore) GetVersions(ctx context.Context, slideID string) ([]model.SlideVersion, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM slide_versions WHERE slide_id = ?`, slideID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.SlideVersion{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get versions: %w", err)
	}

	var versions []model.SlideVersion
	if err := json.Unmarshal([]byte(raw), &versions); err != nil {
		return nil, fmt.Errorf("failed to decode versions: %w", err)
	}
	return versions, nil
}

// PutVersions replaces the version collection for a slide.
func (s *SQLiteStore) PutVersions(ctx context.Context, slideID string, versions []model.SlideVersion) error {
	data, err := json.Marshal(versions)
	if err != nil {
		return fmt.Errorf("failed to encode versions: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO slide_versions (slide_id, data) VALUES (?, ?)
		 ON CONFLICT(slide_id) DO UPDATE SET data = excluded.data`,
		slideID, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write versions: %w", err)
	}
	return nil
}

// DeleteVersions drops the version collection for a slide.
func (s *SQLiteStore) DeleteVersions(ctx context.Context, slideID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM slide_versions WHERE slide_id = ?`, slideID)
	if err != nil {
		return fmt.Errorf("failed to delete versions: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
