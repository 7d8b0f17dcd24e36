package flows

import (
	"errors"
	"fmt"

	"gopkg.in/telebot.v3"

	"payroll-bot/internal/app/service"
	"payroll-bot/internal/delivery/telegram/middleware"
	"payroll-bot/internal/delivery/telegram/router"
	"payroll-bot/internal/domain"
)

const (
	KeyPayPick       = "pay_pick"
	KeyWorkPick      = "work_pick"
	KeyTypePick      = "type_pick"
	KeyPayAllConfirm = "payall_confirm"
	KeyCancel        = "cancel"
)

// RegisterPayroll wires the employee picker callbacks.
func RegisterPayroll(r *router.CallbackRouter, payroll *service.PayrollService, pending *PendingWork) {
	r.Register(KeyPayPick, func(c telebot.Context, name string) error {
		paid, err := payroll.Pay(name)
		if err != nil {
			return middleware.EditOrSend(c, failure(err), nil)
		}
		return middleware.EditOrSend(c, fmt.Sprintf("%s has been paid $%d.", name, paid), nil)
	})

	r.Register(KeyWorkPick, func(c telebot.Context, name string) error {
		rec, err := payroll.Get(name)
		if err != nil {
			return middleware.EditOrSend(c, failure(err), nil)
		}
		pending.Set(c.Chat().ID, rec.Name)
		unit := "days"
		if rec.Hourly {
			unit = "hours"
		}
		return middleware.EditOrSend(c, fmt.Sprintf("How many %s did %s work?", unit, rec.Name), nil)
	})

	r.Register(KeyTypePick, func(c telebot.Context, name string) error {
		rec, err := payroll.ToggleType(name)
		if err != nil {
			return middleware.EditOrSend(c, failure(err), nil)
		}
		kind := "salaried"
		if rec.Hourly {
			kind = "hourly"
		}
		return middleware.EditOrSend(c, fmt.Sprintf("%s is now %s, wage $%d.", rec.Name, kind, rec.Wage), nil)
	})

	r.Register(KeyPayAllConfirm, func(c telebot.Context, _ string) error {
		total := payroll.PayAll()
		return middleware.EditOrSend(c, fmt.Sprintf("Payroll done: $%d paid out.", total), nil)
	})

	r.Register(KeyCancel, func(c telebot.Context, _ string) error {
		pending.Clear(c.Chat().ID)
		return middleware.EditOrSend(c, "Cancelled.", nil)
	})
}

func failure(err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		return "That employee is no longer on the list."
	}
	return "Could not complete that: " + err.Error()
}
