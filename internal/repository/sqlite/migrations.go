package sqlite

import (
	"database/sql"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    hourly BOOLEAN NOT NULL,
    wage INTEGER NOT NULL,
    owed INTEGER NOT NULL DEFAULT 0,
    paid INTEGER NOT NULL DEFAULT 0
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createEmployeesTable); err != nil {
		return err
	}
	return nil
}
