package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"payroll-bot/internal/domain"
	"payroll-bot/internal/model"
)

// PayrollService owns the current roster and serializes every call on it.
// Employees are addressed by name; callers only ever see snapshots.
type PayrollService struct {
	Store domain.RosterStore
	Log   zerolog.Logger

	mu     sync.Mutex
	roster *domain.Roster
}

type Summary struct {
	Employees int
	TotalOwed int
	TotalPaid int
}

func NewPayrollService(store domain.RosterStore, log zerolog.Logger) *PayrollService {
	return &PayrollService{Store: store, Log: log, roster: domain.NewRoster()}
}

func (s *PayrollService) Hire(name string, hourly bool, wage int) (model.EmployeeRecord, error) {
	name = strings.TrimSpace(name)
	if err := validate(name, wage); err != nil {
		return model.EmployeeRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e := domain.NewEmployee(name, hourly, wage)
	if err := s.roster.Add(e); err != nil {
		return model.EmployeeRecord{}, fmt.Errorf("hire %q: %w", name, err)
	}
	s.Log.Info().Str("employee", name).Str("pay_type", string(e.PayType())).Int("wage", wage).Msg("employee hired")
	return e.Record(), nil
}

func (s *PayrollService) Fire(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.find(name)
	if err != nil {
		return err
	}
	if err := s.roster.Delete(e); err != nil {
		return fmt.Errorf("fire %q: %w", name, err)
	}
	s.Log.Info().Str("employee", name).Int("owed", e.Owed()).Msg("employee removed")
	return nil
}

// Rename changes an employee's name, refusing a name that is already taken.
func (s *PayrollService) Rename(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.find(oldName)
	if err != nil {
		return err
	}
	if err := s.checkNameFree(e, newName); err != nil {
		return err
	}
	e.ChangeName(newName)
	s.Log.Info().Str("from", oldName).Str("to", newName).Msg("employee renamed")
	return nil
}

func (s *PayrollService) ChangeWage(name string, wage int) (model.EmployeeRecord, error) {
	if wage <= 0 {
		return model.EmployeeRecord{}, fmt.Errorf("%w: wage must be positive", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.find(name)
	if err != nil {
		return model.EmployeeRecord{}, err
	}
	e.ChangeWage(wage)
	s.Log.Info().Str("employee", name).Int("wage", wage).Msg("wage changed")
	return e.Record(), nil
}

// ToggleType flips hourly and salaried, converting the wage.
func (s *PayrollService) ToggleType(name string) (model.EmployeeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.find(name)
	if err != nil {
		return model.EmployeeRecord{}, err
	}
	pt := e.ChangeType()
	s.Log.Info().Str("employee", name).Str("pay_type", string(pt)).Int("wage", e.Wage()).Msg("pay type changed")
	return e.Record(), nil
}

// Edit overwrites name, pay type and wage in place, keeping balances.
func (s *PayrollService) Edit(name, newName string, hourly bool, wage int) (model.EmployeeRecord, error) {
	newName = strings.TrimSpace(newName)
	if err := validate(newName, wage); err != nil {
		return model.EmployeeRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.find(name)
	if err != nil {
		return model.EmployeeRecord{}, err
	}
	if err := s.checkNameFree(e, newName); err != nil {
		return model.EmployeeRecord{}, err
	}
	e.Reset(newName, hourly, wage)
	s.Log.Info().Str("employee", name).Str("name", newName).Bool("hourly", hourly).Int("wage", wage).Msg("employee edited")
	return e.Record(), nil
}

// RecordWork accrues amount hours (hourly) or days (salaried).
func (s *PayrollService) RecordWork(name string, amount int) (model.EmployeeRecord, error) {
	if amount < 0 {
		return model.EmployeeRecord{}, fmt.Errorf("%w: work amount must not be negative", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.find(name)
	if err != nil {
		return model.EmployeeRecord{}, err
	}
	e.RecordWork(amount)
	s.Log.Info().Str("employee", name).Int("amount", amount).Int("owed", e.Owed()).Msg("work recorded")
	return e.Record(), nil
}

// Pay settles one employee and returns the amount paid.
func (s *PayrollService) Pay(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.find(name)
	if err != nil {
		return 0, err
	}
	paid := e.Pay()
	s.Log.Info().Str("employee", name).Int("paid", paid).Int("total_paid", e.TotalPaid()).Msg("employee paid")
	return paid, nil
}

// PayAll settles every employee and returns the sum paid.
func (s *PayrollService) PayAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, e := range s.roster.All() {
		total += e.Pay()
	}
	s.Log.Info().Int("employees", s.roster.Count()).Int("paid", total).Msg("payroll run")
	return total
}

func (s *PayrollService) Get(name string) (model.EmployeeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.find(name)
	if err != nil {
		return model.EmployeeRecord{}, err
	}
	return e.Record(), nil
}

// List returns snapshots in roster order.
func (s *PayrollService) List() []model.EmployeeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Record().Employees
}

func (s *PayrollService) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.roster.All()
	names := make([]string, 0, len(all))
	for _, e := range all {
		names = append(names, e.Name())
	}
	return names
}

func (s *PayrollService) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := Summary{Employees: s.roster.Count()}
	for _, e := range s.roster.All() {
		sum.TotalOwed += e.Owed()
		sum.TotalPaid += e.TotalPaid()
	}
	return sum
}

func (s *PayrollService) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Store.Save(s.roster); err != nil {
		s.Log.Error().Err(err).Msg("save roster")
		return err
	}
	s.Log.Info().Int("employees", s.roster.Count()).Msg("roster saved")
	return nil
}

// Load replaces the current roster with the stored one. On error the current
// roster is kept as it was.
func (s *PayrollService) Load() error {
	r, err := s.Store.Load()
	if err != nil {
		s.Log.Error().Err(err).Msg("load roster")
		return err
	}

	s.mu.Lock()
	s.roster = r
	s.mu.Unlock()
	s.Log.Info().Int("employees", r.Count()).Msg("roster loaded")
	return nil
}

func (s *PayrollService) find(name string) (*domain.Employee, error) {
	e, err := s.roster.Find(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}
	return e, nil
}

func (s *PayrollService) checkNameFree(self *domain.Employee, name string) error {
	other, err := s.roster.Find(name)
	if err == nil && other != self {
		return fmt.Errorf("%q: %w", name, domain.ErrDuplicate)
	}
	return nil
}

func validate(name string, wage int) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidInput)
	}
	if wage <= 0 {
		return fmt.Errorf("%w: wage must be positive", domain.ErrInvalidInput)
	}
	return nil
}
