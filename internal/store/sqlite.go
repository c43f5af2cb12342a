package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/sir/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore keeps the collection in the review_topics table of
// <dataDir>/storage.db. The connection is opened for each Load or Save and
// closed before returning.
type SQLiteStore struct {
	dataDir string
}

// NewSQLiteStore returns a store rooted at dataDir.
func NewSQLiteStore(dataDir string) *SQLiteStore {
	return &SQLiteStore{dataDir: dataDir}
}

// Path returns the location of storage.db.
func (s *SQLiteStore) Path() string {
	return filepath.Join(s.dataDir, sqliteFileName)
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}

// Load reads every row in position order. A missing database file yields an
// empty collection and is not created.
func (s *SQLiteStore) Load() (*types.Collection, error) {
	if _, err := os.Stat(s.Path()); errors.Is(err, os.ErrNotExist) {
		return &types.Collection{}, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrCorruptStorage, s.Path(), err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT topic_name, last_reviewed, next_review_gap
		FROM review_topics ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query review topics: %w", err)
	}
	defer rows.Close()

	var topics []types.ReviewTopic
	for rows.Next() {
		var name, lastReviewed, gap string
		if err := rows.Scan(&name, &lastReviewed, &gap); err != nil {
			return nil, fmt.Errorf("failed to scan review topic row: %w", err)
		}
		tier, err := types.ParseGapTier(gap)
		if err != nil {
			return nil, fmt.Errorf("%w: topic %q: %w", types.ErrCorruptStorage, name, err)
		}
		topic, err := parseTopic(name, lastReviewed, tier)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read review topics: %w", err)
	}

	return buildCollection(topics)
}

// Save replaces the table contents with c in a single transaction.
func (s *SQLiteStore) Save(c *types.Collection) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM review_topics`); err != nil {
		return fmt.Errorf("failed to clear review topics: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO review_topics (position, topic_name, last_reviewed, next_review_gap)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range c.All() {
		rec := toTopicJSON(t)
		if _, err := stmt.Exec(i, rec.TopicName, rec.LastReviewed, t.GapTier.String()); err != nil {
			return fmt.Errorf("failed to insert topic %q: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}
