package client

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS favorites (
			code TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		);
	`)

	return err
}

func (s *SQLiteStorage) Add(code string) error {
	code = strings.ToUpper(code)

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM favorites WHERE code = ?)", code).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check favorite: %w", err)
	}
	if exists {
		return nil
	}

	_, err = s.db.Exec(`
		INSERT INTO favorites (code, position)
		VALUES (?, COALESCE((SELECT MAX(position) FROM favorites), 0) + 1)
	`, code)
	if err != nil {
		return fmt.Errorf("save favorite: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Remove(code string) error {
	_, err := s.db.Exec("DELETE FROM favorites WHERE code = ?", strings.ToUpper(code))
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Has(code string) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM favorites WHERE code = ?)", strings.ToUpper(code)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}

	return exists, nil
}

func (s *SQLiteStorage) List() ([]string, error) {
	rows, err := s.db.Query("SELECT code FROM favorites ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		codes = append(codes, code)
	}

	return codes, rows.Err()
}

// Replace swaps the whole set atomically, preserving the order of codes.
func (s *SQLiteStorage) Replace(codes []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM favorites"); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}

	for i, code := range codes {
		if _, err := tx.Exec("INSERT INTO favorites (code, position) VALUES (?, ?)",
			strings.ToUpper(code), i+1); err != nil {
			return fmt.Errorf("save favorite: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) Clear() error {
	_, err := s.db.Exec("DELETE FROM favorites")
	if err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
