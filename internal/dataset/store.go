// Package dataset loads tabular data into a SQLite-backed cell store and
// watches the source file for changes. It is the demo host's row provider;
// the sizing library only sees it through the ValueSource interface.
package dataset

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/sqlite"
)

// Store is a SQLite-backed table of cells addressed by (row, col).
type Store struct {
	db       *sql.DB
	rowCount int
	colCount int
}

// Open opens the store at dbPath, creating tables if needed.
// Use ":memory:" for an ephemeral store.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.refreshCounts(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS headers (
		col INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cells (
		row INTEGER NOT NULL,
		col INTEGER NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (row, col)
	);

	CREATE INDEX IF NOT EXISTS idx_cells_col ON cells(col, row);
	`

	_, err := s.db.Exec(query)
	return err
}

// Replace swaps the store contents for the given table in one transaction.
func (s *Store) Replace(headers []string, rows [][]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cells"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM headers"); err != nil {
		return err
	}

	for col, name := range headers {
		if _, err := tx.Exec("INSERT INTO headers (col, name) VALUES (?, ?)", col, name); err != nil {
			return err
		}
	}

	for row, fields := range rows {
		for col, value := range fields {
			if _, err := tx.Exec("INSERT INTO cells (row, col, value) VALUES (?, ?, ?)", row, col, value); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return s.refreshCounts()
}

// refreshCounts recomputes the cached row and column counts.
func (s *Store) refreshCounts() error {
	if err := s.db.QueryRow("SELECT COUNT(*) FROM headers").Scan(&s.colCount); err != nil {
		return err
	}

	var maxRow sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(row) FROM cells").Scan(&maxRow); err != nil {
		return err
	}
	if maxRow.Valid {
		s.rowCount = int(maxRow.Int64) + 1
	} else {
		s.rowCount = 0
	}

	return nil
}

// Value returns the cell at (row, col). Absent cells, including ones a
// short source row never populated, report ok == false. Query failures
// degrade to an absent cell rather than surfacing an error; the sizing
// estimator treats both the same way.
func (s *Store) Value(row, col int) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM cells WHERE row = ? AND col = ?", row, col).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Header returns the column name for col.
func (s *Store) Header(col int) (string, bool) {
	var name string
	err := s.db.QueryRow("SELECT name FROM headers WHERE col = ?", col).Scan(&name)
	if err != nil {
		return "", false
	}
	return name, true
}

// RowCount returns the number of data rows.
func (s *Store) RowCount() int {
	return s.rowCount
}

// ColCount returns the number of columns.
func (s *Store) ColCount() int {
	return s.colCount
}

// LoadFile parses the CSV at path and replaces the store contents with it.
func (s *Store) LoadFile(path string) error {
	table, err := ParseFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return s.Replace(table.Headers, table.Rows)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
