// Package jsonfile stores a roster as a single JSON document on disk.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"payroll-bot/internal/domain"
	"payroll-bot/internal/model"
)

// The document is decoded through pointer fields so that a missing key can be told
// apart from a zero value.
type rawEmployee struct {
	Name      *string `json:"name"`
	Hourly    *bool   `json:"hourlyStatus"`
	Wage      *int    `json:"wage"`
	Owed      *int    `json:"currentOwnedToEmployee"`
	TotalPaid *int    `json:"totalPaidToEmployee"`
}

type rawRoster struct {
	Employees *[]rawEmployee `json:"employees"`
}

// Write serializes the roster to path. The file is opened, written and closed in
// that order; there is no rename, so a crash mid-write can leave a partial file.
func Write(r *domain.Roster, path string) error {
	data, err := marshal(r)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", domain.ErrIOFailure, path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", domain.ErrIOFailure, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrIOFailure, path, err)
	}
	return nil
}

// Read loads a roster from path. Repeated names after the first are dropped.
func Read(path string) (*domain.Roster, error) {
	r, _, err := readFile(path)
	return r, err
}

// Encode writes the roster document to w.
func Encode(w io.Writer, r *domain.Roster) error {
	data, err := marshal(r)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIOFailure, err)
	}
	return nil
}

// Decode reads a roster document from rd.
func Decode(rd io.Reader) (*domain.Roster, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIOFailure, err)
	}
	r, _, err := unmarshal(data)
	return r, err
}

func readFile(path string) (*domain.Roster, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read %s: %w", domain.ErrIOFailure, path, err)
	}
	r, skipped, err := unmarshal(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return r, skipped, nil
}

func marshal(r *domain.Roster) ([]byte, error) {
	data, err := json.Marshal(r.Record())
	if err != nil {
		return nil, fmt.Errorf("encode roster: %w", err)
	}
	return data, nil
}

func unmarshal(data []byte) (*domain.Roster, int, error) {
	var raw rawRoster
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrMalformedData, err)
	}
	if raw.Employees == nil {
		return nil, 0, fmt.Errorf("%w: missing \"employees\"", domain.ErrMalformedData)
	}
	recs := make([]model.EmployeeRecord, 0, len(*raw.Employees))
	for i, re := range *raw.Employees {
		rec, err := re.record()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: employee %d: %w", domain.ErrMalformedData, i, err)
		}
		recs = append(recs, rec)
	}
	r, skipped := domain.RestoreRoster(model.RosterRecord{Employees: recs})
	return r, skipped, nil
}

func (re rawEmployee) record() (model.EmployeeRecord, error) {
	switch {
	case re.Name == nil:
		return model.EmployeeRecord{}, errMissing("name")
	case re.Hourly == nil:
		return model.EmployeeRecord{}, errMissing("hourlyStatus")
	case re.Wage == nil:
		return model.EmployeeRecord{}, errMissing("wage")
	case re.Owed == nil:
		return model.EmployeeRecord{}, errMissing("currentOwnedToEmployee")
	case re.TotalPaid == nil:
		return model.EmployeeRecord{}, errMissing("totalPaidToEmployee")
	}
	return model.EmployeeRecord{
		Name:      *re.Name,
		Hourly:    *re.Hourly,
		Wage:      *re.Wage,
		Owed:      *re.Owed,
		TotalPaid: *re.TotalPaid,
	}, nil
}

func errMissing(field string) error {
	return fmt.Errorf("missing field %q", field)
}
