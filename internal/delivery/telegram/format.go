package telegram

import (
	"errors"
	"fmt"
	"strings"

	"payroll-bot/internal/app/service"
	"payroll-bot/internal/domain"
	"payroll-bot/internal/model"
)

func payPeriod(hourly bool) string {
	if hourly {
		return "hour"
	}
	return "year"
}

func workUnit(hourly bool) string {
	if hourly {
		return "hours"
	}
	return "days"
}

func formatEmployee(rec model.EmployeeRecord) string {
	kind := "salaried"
	if rec.Hourly {
		kind = "hourly"
	}
	return fmt.Sprintf("%s (%s)\nWage: $%d per %s\nOwed: $%d\nPaid to date: $%d",
		rec.Name, kind, rec.Wage, payPeriod(rec.Hourly), rec.Owed, rec.TotalPaid)
}

func formatRoster(recs []model.EmployeeRecord, sum service.Summary) string {
	if len(recs) == 0 {
		return "The employee list is empty. Start with /hire."
	}
	var b strings.Builder
	b.WriteString("Employees:\n")
	for _, rec := range recs {
		fmt.Fprintf(&b, "%s | $%d per %s | owed $%d\n", rec.Name, rec.Wage, payPeriod(rec.Hourly), rec.Owed)
	}
	fmt.Fprintf(&b, "\n%d employees, $%d owed, $%d paid to date", sum.Employees, sum.TotalOwed, sum.TotalPaid)
	return b.String()
}

// errorText turns a service error into a reply.
func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return "An employee with that name already exists."
	case errors.Is(err, domain.ErrNotFound):
		return "No such employee."
	case errors.Is(err, domain.ErrInvalidInput):
		return "Not accepted: " + strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ") + "."
	case errors.Is(err, domain.ErrMalformedData):
		return "The saved employee list is damaged; nothing was loaded."
	case errors.Is(err, domain.ErrIOFailure):
		return "Storage is unavailable; nothing was changed."
	}
	return "Something went wrong."
}

const helpText = `Commands:
/list - all employees
/show <name> - one employee
/hire <name> <hourly|salary> <wage>
/fire <name>
/rename <old> <new> (or <old> | <new>)
/edit <old> | <new> <hourly|salary> <wage>
/wage <name> <wage>
/type <name> - switch hourly/salaried
/work [<name> <hours or days>]
/pay [<name>]
/payall - pay everyone
/save, /load - store or restore the list`
