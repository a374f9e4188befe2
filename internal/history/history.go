// Package history persists completed analysis results in a local SQLite
// database so past runs can be listed later.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/fitscope/fitscope/internal/analysis"
)

const previewRunes = 160

// Entry is one stored analysis run.
type Entry struct {
	ID        string           `json:"id"`
	JDPreview string           `json:"jdPreview"`
	Score     int              `json:"score"`
	CreatedAt time.Time        `json:"createdAt"`
	Result    *analysis.Result `json:"result"`
}

// Store keeps analysis results in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and prepares
// the schema. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) ensureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS analyses (
  id TEXT PRIMARY KEY,
  jd_preview TEXT NOT NULL,
  score INTEGER NOT NULL,
  result_json TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return fmt.Errorf("create history schema: %w", err)
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);`); err != nil {
		return fmt.Errorf("create history index: %w", err)
	}
	return nil
}

// Save stores a completed analysis and returns the generated entry id.
func (s *Store) Save(jdText string, result *analysis.Result) (string, error) {
	if result == nil {
		return "", fmt.Errorf("nil result")
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode analysis result: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(`
INSERT INTO analyses (id, jd_preview, score, result_json, created_at)
VALUES (?, ?, ?, ?, ?)
`,
		id, preview(jdText), result.OverallFit.Score, string(resultJSON), time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("save analysis: %w", err)
	}
	return id, nil
}

// ListRecent returns up to limit entries, newest first.
func (s *Store) ListRecent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
SELECT id, jd_preview, score, result_json, created_at
FROM analyses
ORDER BY created_at DESC, id
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var resultJSON string
		if err := rows.Scan(&e.ID, &e.JDPreview, &e.Score, &resultJSON, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis row: %w", err)
		}
		if err := json.Unmarshal([]byte(resultJSON), &e.Result); err != nil {
			return nil, fmt.Errorf("decode stored result %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// preview collapses the job description into a short single-line excerpt.
func preview(jdText string) string {
	jdText = strings.Join(strings.Fields(jdText), " ")
	if utf8.RuneCountInString(jdText) <= previewRunes {
		return jdText
	}
	return string([]rune(jdText)[:previewRunes]) + "..."
}
