// Package storage keeps SQLite-backed usage history: every tool invocation
// and dispatch outcome, so the CLI can show what the assistant has been doing.
// Recording is best-effort: a storage failure is logged by the caller, never
// surfaced into a dispatch result.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// UsageStore persists tool and dispatch history
type UsageStore struct {
	db   *sql.DB
	path string
}

// ToolUsage is one recorded tool invocation
type ToolUsage struct {
	ID        int64         `json:"id"`
	Tool      string        `json:"tool"`
	Query     string        `json:"query"`
	Success   bool          `json:"success"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// DispatchRecord is one recorded dispatch outcome
type DispatchRecord struct {
	ID            int64     `json:"id"`
	Query         string    `json:"query"`
	Success       bool      `json:"success"`
	Method        string    `json:"method"`
	ErrorCode     string    `json:"error_code,omitempty"`
	ExecutionTime float64   `json:"execution_time"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewUsageStore opens (or creates) the usage database at dbPath
func NewUsageStore(dbPath string) (*UsageStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &UsageStore{db: db, path: dbPath}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *UsageStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tool_usage (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tool TEXT NOT NULL,
		query TEXT NOT NULL,
		success INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_tool_usage_tool ON tool_usage(tool);

	CREATE TABLE IF NOT EXISTS dispatch_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		success INTEGER NOT NULL,
		method TEXT,
		error_code TEXT,
		execution_time REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_dispatch_history_created ON dispatch_history(created_at);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// RecordToolUse stores one tool invocation. Implements the orchestrator's
// usage recorder contract.
func (s *UsageStore) RecordToolUse(tool, query string, success bool, duration time.Duration) {
	_, _ = s.db.Exec(
		`INSERT INTO tool_usage (tool, query, success, duration_ms) VALUES (?, ?, ?, ?)`,
		tool, query, boolToInt(success), duration.Milliseconds())
}

// RecordDispatch stores one dispatch outcome
func (s *UsageStore) RecordDispatch(query string, success bool, method, errorCode string, executionTime float64) error {
	_, err := s.db.Exec(
		`INSERT INTO dispatch_history (query, success, method, error_code, execution_time) VALUES (?, ?, ?, ?, ?)`,
		query, boolToInt(success), method, errorCode, executionTime)
	if err != nil {
		return fmt.Errorf("failed to record dispatch: %w", err)
	}
	return nil
}

// RecentToolUsage returns the latest tool invocations, newest first
func (s *UsageStore) RecentToolUsage(limit int) ([]ToolUsage, error) {
	rows, err := s.db.Query(
		`SELECT id, tool, query, success, duration_ms, created_at
		 FROM tool_usage ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tool usage: %w", err)
	}
	defer rows.Close()

	var usages []ToolUsage
	for rows.Next() {
		var u ToolUsage
		var success int
		var durationMs int64
		if err := rows.Scan(&u.ID, &u.Tool, &u.Query, &success, &durationMs, &u.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan tool usage: %w", err)
		}
		u.Success = success != 0
		u.Duration = time.Duration(durationMs) * time.Millisecond
		usages = append(usages, u)
	}
	return usages, rows.Err()
}

// RecentDispatches returns the latest dispatch outcomes, newest first
func (s *UsageStore) RecentDispatches(limit int) ([]DispatchRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, query, success, method, error_code, execution_time, created_at
		 FROM dispatch_history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query dispatch history: %w", err)
	}
	defer rows.Close()

	var records []DispatchRecord
	for rows.Next() {
		var r DispatchRecord
		var success int
		if err := rows.Scan(&r.ID, &r.Query, &success, &r.Method, &r.ErrorCode, &r.ExecutionTime, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan dispatch record: %w", err)
		}
		r.Success = success != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the database connection
func (s *UsageStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
