package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"svw.info/exactcover/internal/domain"
)

// SQLite persists puzzles in a single-file database. The board is
// stored in its 81-character line form; metadata lives in columns so
// List never has to decode boards.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		seed INTEGER NOT NULL DEFAULT 0,
		difficulty INTEGER NOT NULL DEFAULT 1,
		board TEXT NOT NULL,
		fixed TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_difficulty ON puzzles(difficulty);
	CREATE INDEX IF NOT EXISTS idx_puzzles_created ON puzzles(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// fixedMask packs Fixed into 81 characters of '0'/'1', row-major.
func fixedMask(b *domain.Board) string {
	mask := make([]byte, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Fixed[r][c] {
				mask[r*9+c] = '1'
			} else {
				mask[r*9+c] = '0'
			}
		}
	}
	return string(mask)
}

func applyFixedMask(b *domain.Board, mask string) {
	if len(mask) != 81 {
		return
	}
	for i := 0; i < 81; i++ {
		b.Fixed[i/9][i%9] = mask[i] == '1'
	}
}

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, name, notes, seed, difficulty, board, fixed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			notes = excluded.notes,
			seed = excluded.seed,
			difficulty = excluded.difficulty,
			board = excluded.board,
			fixed = excluded.fixed`,
		p.ID, p.Name, p.Notes, p.Seed, int(p.Difficulty), p.Board.Line(), fixedMask(&p.Board), p.CreatedAt)
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, notes, seed, difficulty, board, fixed, created_at
		FROM puzzles WHERE id = ?`, id)

	var p domain.Puzzle
	var diff int
	var board, fixed string
	err := row.Scan(&p.ID, &p.Name, &p.Notes, &p.Seed, &diff, &board, &fixed, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	b, err := domain.ParseLine(board)
	if err != nil {
		return nil, fmt.Errorf("stored board for %s: %w", id, err)
	}
	applyFixedMask(b, fixed)
	p.Difficulty = domain.Difficulty(diff)
	p.Board = *b
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, difficulty, created_at
		FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		var diff int
		if err := rows.Scan(&m.ID, &m.Name, &diff, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Difficulty = domain.Difficulty(diff)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error { return s.db.Close() }
