// Package local holds the device-scoped staff store. Unlike every other
// entity, staff records deliberately do not go through the shared gateway;
// the distinction is kept explicit through this separate package.
package local

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson/primitive"
	_ "modernc.org/sqlite"

	"github.com/seogestao/condogest/internal/domain/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS staff (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	role TEXT NOT NULL,
	contact TEXT NOT NULL DEFAULT '',
	contract_end TEXT NOT NULL DEFAULT ''
);`

// StaffStore persists staff records in a local SQLite file.
type StaffStore struct {
	db *sql.DB
}

// NewStaffStore opens (creating if needed) the staff database at dbPath.
func NewStaffStore(dbPath string) (*StaffStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create staff db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open staff database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping staff database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create staff schema: %w", err)
	}

	return &StaffStore{db: db}, nil
}

// Close releases the database handle.
func (s *StaffStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// List returns all staff records ordered by name.
func (s *StaffStore) List(ctx context.Context) ([]models.Staff, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, role, contact, contract_end FROM staff ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var out []models.Staff
	for rows.Next() {
		var st models.Staff
		if err := rows.Scan(&st.ID, &st.Name, &st.Role, &st.Contact, &st.ContractEnd); err != nil {
			return nil, fmt.Errorf("scan staff row: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff rows: %w", err)
	}
	return out, nil
}

// Create inserts a staff record and returns it with its assigned id.
func (s *StaffStore) Create(ctx context.Context, st models.Staff) (models.Staff, error) {
	st.ID = primitive.NewObjectID().Hex()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO staff (id, name, role, contact, contract_end) VALUES (?, ?, ?, ?, ?)`,
		st.ID, st.Name, st.Role, st.Contact, st.ContractEnd)
	if err != nil {
		return models.Staff{}, fmt.Errorf("insert staff: %w", err)
	}
	return st, nil
}

// Update overwrites a staff record's fields.
func (s *StaffStore) Update(ctx context.Context, id string, st models.Staff) (models.Staff, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE staff SET name = ?, role = ?, contact = ?, contract_end = ? WHERE id = ?`,
		st.Name, st.Role, st.Contact, st.ContractEnd, id)
	if err != nil {
		return models.Staff{}, fmt.Errorf("update staff %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Staff{}, fmt.Errorf("update staff %s: %w", id, sql.ErrNoRows)
	}
	st.ID = id
	return st, nil
}

// Delete removes a staff record.
func (s *StaffStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete staff %s: %w", id, err)
	}
	return nil
}
