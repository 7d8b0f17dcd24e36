package domain

import "payroll-bot/internal/model"

const (
	// HoursPerYear is the full-time year used when converting between hourly and salaried wages.
	HoursPerYear = 2080
	// DaysPerYear turns an annual salary into a daily rate.
	DaysPerYear = 365
)

// PayType names the two wage interpretations.
type PayType string

const (
	PayTypeHourly PayType = "Hourly"
	PayTypeSalary PayType = "Salary"
)

// Employee holds one person's wage terms and balances.
//
// The zero value is not useful; use NewEmployee or RestoreEmployee.
type Employee struct {
	name      string
	hourly    bool
	wage      int
	owed      int
	totalPaid int
}

// NewEmployee returns an employee with nothing owed and nothing paid.
// name must be non-empty and wage positive; the caller checks both.
func NewEmployee(name string, hourly bool, wage int) *Employee {
	return &Employee{name: name, hourly: hourly, wage: wage}
}

// RestoreEmployee rebuilds an employee from a stored snapshot, balances included.
func RestoreEmployee(rec model.EmployeeRecord) *Employee {
	return &Employee{
		name:      rec.Name,
		hourly:    rec.Hourly,
		wage:      rec.Wage,
		owed:      rec.Owed,
		totalPaid: rec.TotalPaid,
	}
}

func (e *Employee) Name() string   { return e.name }
func (e *Employee) Hourly() bool   { return e.hourly }
func (e *Employee) Wage() int      { return e.wage }
func (e *Employee) Owed() int      { return e.owed }
func (e *Employee) TotalPaid() int { return e.totalPaid }

func (e *Employee) PayType() PayType {
	if e.hourly {
		return PayTypeHourly
	}
	return PayTypeSalary
}

// Key is the identity used by the roster. Two employees with the same key are the same
// employee regardless of wage or balances.
func (e *Employee) Key() string { return e.name }

// SameAs reports whether e and other share a key.
func (e *Employee) SameAs(other *Employee) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Key() == other.Key()
}

// ChangeName replaces the name. Uniqueness is the roster's concern.
func (e *Employee) ChangeName(newName string) {
	e.name = newName
}

func (e *Employee) ChangeWage(newWage int) {
	e.wage = newWage
}

// ChangeType flips between hourly and salaried and converts the wage over a
// HoursPerYear year. Salaried to hourly truncates, so the conversion is lossy.
func (e *Employee) ChangeType() PayType {
	if e.hourly {
		e.hourly = false
		e.wage = e.wage * HoursPerYear
		return PayTypeSalary
	}
	e.hourly = true
	e.wage = e.wage / HoursPerYear
	return PayTypeHourly
}

// RecordWork accrues pay for amount hours (hourly) or days (salaried).
//
// The salaried daily rate is truncated before multiplying, so each call can lose
// up to a day's remainder.
func (e *Employee) RecordWork(amount int) {
	if e.hourly {
		e.owed += e.wage * amount
		return
	}
	e.owed += e.wage / DaysPerYear * amount
}

// Pay settles the owed balance and returns the amount paid out.
func (e *Employee) Pay() int {
	paid := e.owed
	e.totalPaid += paid
	e.owed = 0
	return paid
}

// Reset overwrites name, pay type and wage, leaving balances untouched.
func (e *Employee) Reset(name string, hourly bool, wage int) {
	e.name = name
	e.hourly = hourly
	e.wage = wage
}

// Record returns a snapshot of every field.
func (e *Employee) Record() model.EmployeeRecord {
	return model.EmployeeRecord{
		Name:      e.name,
		Hourly:    e.hourly,
		Wage:      e.wage,
		Owed:      e.owed,
		TotalPaid: e.totalPaid,
	}
}
