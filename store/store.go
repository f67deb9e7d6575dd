// Package store keeps explored board states and the parent/child links
// between them in a sqlite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/LIAMBB/chess-movegen/components"
)

const schema = `
	CREATE TABLE IF NOT EXISTS board_states (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		state TEXT NOT NULL UNIQUE
	);
	CREATE TABLE IF NOT EXISTS node_relations (
		parent_id INTEGER,
		child_id INTEGER,
		FOREIGN KEY(parent_id) REFERENCES board_states(id),
		FOREIGN KEY(child_id) REFERENCES board_states(id),
		PRIMARY KEY(parent_id, child_id)
	);
	CREATE INDEX IF NOT EXISTS idx_node_relations_parent
	ON node_relations(parent_id);
`

type Store struct {
	db  *sql.DB
	log *logrus.Entry
}

// Open creates or opens the database at path in WAL mode and applies the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// A single connection serialises writers and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=10000;
		PRAGMA temp_store=MEMORY;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create tables: %w", err)
	}

	s := &Store{db: db, log: logrus.WithFields(logrus.Fields{"component": "store", "path": path})}
	s.log.Debug("database ready")
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBoard stores board and returns its id. A board that is already stored
// keeps its original id.
func (s *Store) SaveBoard(ctx context.Context, board *components.ChessBoard) (int64, error) {
	ids, err := s.SaveBoards(ctx, []*components.ChessBoard{board})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// SaveBoards stores all boards in one transaction. The returned ids line up
// with boards.
func (s *Store) SaveBoards(ctx context.Context, boards []*components.ChessBoard) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("store: begin transaction: %w", err)
	}
	defer tx.Rollback() // Will be ignored if transaction is committed

	insert, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO board_states (state) VALUES (?)")
	if err != nil {
		return nil, fmt.Errorf("store: prepare insert: %w", err)
	}
	defer insert.Close()

	lookup, err := tx.PrepareContext(ctx, "SELECT id FROM board_states WHERE state = ?")
	if err != nil {
		return nil, fmt.Errorf("store: prepare lookup: %w", err)
	}
	defer lookup.Close()

	ids := make([]int64, 0, len(boards))
	for _, board := range boards {
		state := board.Encode()
		if _, err := insert.ExecContext(ctx, state); err != nil {
			return nil, fmt.Errorf("store: insert %q: %w", state, err)
		}
		var id int64
		if err := lookup.QueryRowContext(ctx, state).Scan(&id); err != nil {
			return nil, fmt.Errorf("store: lookup %q: %w", state, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("store: commit: %w", err)
	}
	return ids, nil
}

func (s *Store) LoadBoard(ctx context.Context, id int64) (*components.ChessBoard, error) {
	var state string
	err := s.db.QueryRowContext(ctx, "SELECT state FROM board_states WHERE id = ?", id).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: query state %d: %w", id, err)
	}

	board, err := components.ParseBoard(state)
	if err != nil {
		return nil, fmt.Errorf("store: decode state %d: %w", id, err)
	}
	return board, nil
}

// AddRelations records parent -> child links. Duplicates are ignored.
func (s *Store) AddRelations(ctx context.Context, parentID int64, childIDs []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO node_relations (parent_id, child_id)
		VALUES (?, ?)
	`)
	if err != nil {
		return fmt.Errorf("store: prepare relation insert: %w", err)
	}
	defer stmt.Close()

	for _, childID := range childIDs {
		if _, err := stmt.ExecContext(ctx, parentID, childID); err != nil {
			return fmt.Errorf("store: relation %d -> %d: %w", parentID, childID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit relations: %w", err)
	}
	return nil
}

func (s *Store) Children(ctx context.Context, parentID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT child_id
		FROM node_relations
		WHERE parent_id = ?
		ORDER BY child_id
	`, parentID)
	if err != nil {
		return nil, fmt.Errorf("store: query children of %d: %w", parentID, err)
	}
	defer rows.Close()

	var childIDs []int64
	for rows.Next() {
		var childID int64
		if err := rows.Scan(&childID); err != nil {
			return nil, fmt.Errorf("store: scan child id: %w", err)
		}
		childIDs = append(childIDs, childID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate children: %w", err)
	}

	return childIDs, nil
}

func (s *Store) CountStates(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM board_states").Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count states: %w", err)
	}
	return n, nil
}

// Size reports the main database file size after folding the WAL back in.
func (s *Store) Size(ctx context.Context) (int64, error) {
	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return 0, fmt.Errorf("store: checkpoint: %w", err)
	}

	var size int64
	err := s.db.QueryRowContext(ctx, "SELECT page_count * page_size FROM pragma_page_count, pragma_page_size").Scan(&size)
	if err != nil {
		return 0, fmt.Errorf("store: database size: %w", err)
	}
	return size, nil
}

// ExceedsSize reports whether the database has reached 90% of maxSizeBytes.
func (s *Store) ExceedsSize(ctx context.Context, maxSizeBytes int64) (bool, error) {
	size, err := s.Size(ctx)
	if err != nil {
		return false, err
	}

	margin := int64(float64(maxSizeBytes) * 0.9)
	exceeded := size >= margin
	if exceeded {
		s.log.WithFields(logrus.Fields{
			"size_gb":  float64(size) / 1024 / 1024 / 1024,
			"limit_gb": float64(maxSizeBytes) / 1024 / 1024 / 1024,
		}).Warn("database size limit reached")
	}
	return exceeded, nil
}
