package db

import (
	"database/sql"
	"fmt"
)

// schema is the full local database schema. The session table is the
// client-side analog of browser storage: a handful of keys that are always
// written and cleared together.
const schema = `
CREATE TABLE IF NOT EXISTS session (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates the schema if it does not exist (idempotent).
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
