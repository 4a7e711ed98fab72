package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenMySQL connects to MySQL using a driver DSN and verifies the connection.
func OpenMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql dsn is empty")
	}
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// A single document needs very few connections.
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

const createSlotTable = `CREATE TABLE IF NOT EXISTS trip_slots (
	slot_key   VARCHAR(191) NOT NULL PRIMARY KEY,
	payload    LONGTEXT     NOT NULL,
	updated_at DATETIME     NOT NULL
) CHARACTER SET utf8mb4`

// SQLSlot stores the document as one row of the trip_slots table.
type SQLSlot struct {
	DB  *sql.DB
	Key string
}

// EnsureTable creates the slot table if it does not exist yet.
func (s *SQLSlot) EnsureTable(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, createSlotTable); err != nil {
		return fmt.Errorf("create trip_slots: %w", err)
	}
	return nil
}

// Read returns the payload column of the slot row.
func (s *SQLSlot) Read(ctx context.Context) ([]byte, error) {
	var payload string
	err := s.DB.QueryRowContext(ctx,
		`SELECT payload FROM trip_slots WHERE slot_key = ?`, s.Key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("select slot %q: %w", s.Key, err)
	}
	if payload == "" {
		return nil, ErrSlotEmpty
	}
	return []byte(payload), nil
}

// Write inserts or replaces the slot row.
func (s *SQLSlot) Write(ctx context.Context, payload []byte) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO trip_slots (slot_key, payload, updated_at) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = VALUES(updated_at)`,
		s.Key, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert slot %q: %w", s.Key, err)
	}
	return nil
}
