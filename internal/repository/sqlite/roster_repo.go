// Package sqlite keeps the roster snapshot in a SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"

	"payroll-bot/internal/domain"
	"payroll-bot/internal/model"
)

// RosterRepo is a domain.RosterStore. Rows are the roster in insertion order.
type RosterRepo struct {
	db *sql.DB
}

func NewRosterRepo(db *sql.DB) *RosterRepo {
	return &RosterRepo{db: db}
}

// Save replaces the stored snapshot in one transaction, so a failed save keeps the previous one.
func (r *RosterRepo) Save(roster *domain.Roster) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin: %w", domain.ErrIOFailure, err)
	}
	if err := replaceAll(tx, roster.Record()); err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: %w", domain.ErrIOFailure, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", domain.ErrIOFailure, err)
	}
	return nil
}

func (r *RosterRepo) Load() (*domain.Roster, error) {
	rows, err := r.db.Query(`SELECT name, hourly, wage, owed, paid FROM employees ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIOFailure, err)
	}
	defer rows.Close()

	rec := model.RosterRecord{Employees: []model.EmployeeRecord{}}
	for rows.Next() {
		var e model.EmployeeRecord
		if err := rows.Scan(&e.Name, &e.Hourly, &e.Wage, &e.Owed, &e.TotalPaid); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedData, err)
		}
		rec.Employees = append(rec.Employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIOFailure, err)
	}
	roster, _ := domain.RestoreRoster(rec)
	return roster, nil
}

func replaceAll(tx *sql.Tx, rec model.RosterRecord) error {
	if _, err := tx.Exec(`DELETE FROM employees`); err != nil {
		return fmt.Errorf("clear employees: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO employees (position, name, hourly, wage, owed, paid) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, e := range rec.Employees {
		if _, err := stmt.Exec(i, e.Name, e.Hourly, e.Wage, e.Owed, e.TotalPaid); err != nil {
			return fmt.Errorf("insert %q: %w", e.Name, err)
		}
	}
	return nil
}
