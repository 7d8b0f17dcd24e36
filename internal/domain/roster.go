package domain

import "payroll-bot/internal/model"

// Roster is an ordered collection of employees with unique names.
//
// A Roster owns its employees. It is not safe for concurrent use.
type Roster struct {
	employees []*Employee
}

func NewRoster() *Roster {
	return &Roster{}
}

// RestoreRoster builds a roster from a stored snapshot in document order.
// Later entries that repeat a name are dropped; the number dropped is returned.
func RestoreRoster(rec model.RosterRecord) (*Roster, int) {
	r := NewRoster()
	skipped := 0
	for _, er := range rec.Employees {
		if err := r.Add(RestoreEmployee(er)); err != nil {
			skipped++
		}
	}
	return r, skipped
}

// All returns the employees in insertion order.
//
// The returned slice is a copy but its elements are the roster's own employees:
// calling a mutator on one of them changes the roster. Callers must not rename an
// employee this way to a name that is already taken.
func (r *Roster) All() []*Employee {
	out := make([]*Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

// Find returns the employee with the given name. If duplicates were ever injected
// the last one wins.
func (r *Roster) Find(name string) (*Employee, error) {
	var found *Employee
	for _, e := range r.employees {
		if e.Key() == name {
			found = e
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *Roster) Contains(e *Employee) bool {
	return r.indexOf(e) >= 0
}

func (r *Roster) Count() int {
	return len(r.employees)
}

// Add appends e unless an employee with the same name is present.
func (r *Roster) Add(e *Employee) error {
	if r.Contains(e) {
		return ErrDuplicate
	}
	r.employees = append(r.employees, e)
	return nil
}

// Delete removes the first employee sharing e's name.
func (r *Roster) Delete(e *Employee) error {
	i := r.indexOf(e)
	if i < 0 {
		return ErrNotFound
	}
	r.employees = append(r.employees[:i], r.employees[i+1:]...)
	return nil
}

// Record snapshots the roster in order. An empty roster yields an empty, non-nil list.
func (r *Roster) Record() model.RosterRecord {
	recs := make([]model.EmployeeRecord, 0, len(r.employees))
	for _, e := range r.employees {
		recs = append(recs, e.Record())
	}
	return model.RosterRecord{Employees: recs}
}

func (r *Roster) indexOf(e *Employee) int {
	if e == nil {
		return -1
	}
	for i, cur := range r.employees {
		if cur.SameAs(e) {
			return i
		}
	}
	return -1
}
