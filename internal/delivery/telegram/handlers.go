package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/telebot.v3"

	"payroll-bot/internal/app/service"
	"payroll-bot/internal/delivery/telegram/flows"
	"payroll-bot/internal/delivery/telegram/keyboards"
	"payroll-bot/internal/delivery/telegram/router"
	"payroll-bot/internal/logger"
)

type Handler struct {
	Bot     *telebot.Bot
	Payroll *service.PayrollService
	Async   *service.AsyncService
	Log     zerolog.Logger
	// Ctx bounds storage work started from chat commands.
	Ctx context.Context

	router  *router.CallbackRouter
	pending *flows.PendingWork
}

var (
	btnList   = telebot.Btn{Text: "📋 Employees"}
	btnWork   = telebot.Btn{Text: "⏱ Record work"}
	btnPay    = telebot.Btn{Text: "💸 Pay"}
	btnPayAll = telebot.Btn{Text: "💰 Pay everyone"}
)

func (h *Handler) Register() {
	if h.Ctx == nil {
		h.Ctx = context.Background()
	}
	h.pending = flows.NewPendingWork()
	h.router = router.New(h.Log)
	flows.RegisterPayroll(h.router, h.Payroll, h.pending)
	h.router.Attach(h.Bot)

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/help", h.handleHelp)
	h.Bot.Handle("/list", h.handleList)
	h.Bot.Handle("/show", h.handleShow)
	h.Bot.Handle("/hire", h.handleHire)
	h.Bot.Handle("/fire", h.handleFire)
	h.Bot.Handle("/rename", h.handleRename)
	h.Bot.Handle("/edit", h.handleEdit)
	h.Bot.Handle("/wage", h.handleWage)
	h.Bot.Handle("/type", h.handleType)
	h.Bot.Handle("/work", h.handleWork)
	h.Bot.Handle("/pay", h.handlePay)
	h.Bot.Handle("/payall", h.handlePayAll)
	h.Bot.Handle("/save", h.handleSave)
	h.Bot.Handle("/load", h.handleLoad)
	h.Bot.Handle(telebot.OnText, h.handleText)
}

func (h *Handler) handleStart(c telebot.Context) error {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(btnList.Text), markup.Text(btnWork.Text)),
		markup.Row(markup.Text(btnPay.Text), markup.Text(btnPayAll.Text)),
	)
	return c.Send("Welcome to the payroll bot.\n\n"+helpText, markup)
}

func (h *Handler) handleHelp(c telebot.Context) error {
	return c.Send(helpText)
}

func (h *Handler) handleList(c telebot.Context) error {
	return c.Send(formatRoster(h.Payroll.List(), h.Payroll.Summary()))
}

func (h *Handler) handleShow(c telebot.Context) error {
	name := strings.TrimSpace(c.Message().Payload)
	if name == "" {
		return c.Send("Usage: /show <name>")
	}
	rec, err := h.Payroll.Get(name)
	if err != nil {
		return c.Send(errorText(err))
	}
	return c.Send(formatEmployee(rec))
}

func (h *Handler) handleHire(c telebot.Context) error {
	name, hourly, wage, err := parseHireArgs(c.Args())
	if err != nil {
		return c.Send("Usage: /hire <name> <hourly|salary> <wage>")
	}
	rec, err := h.Payroll.Hire(name, hourly, wage)
	if err != nil {
		return c.Send(errorText(err))
	}
	return c.Send(fmt.Sprintf("%s has been added at $%d per %s.", rec.Name, rec.Wage, payPeriod(rec.Hourly)))
}

func (h *Handler) handleFire(c telebot.Context) error {
	name := strings.TrimSpace(c.Message().Payload)
	if name == "" {
		return c.Send("Usage: /fire <name>")
	}
	if err := h.Payroll.Fire(name); err != nil {
		return c.Send(errorText(err))
	}
	return c.Send(name + " has been removed.")
}

func (h *Handler) handleRename(c telebot.Context) error {
	oldName, newName, err := parseRenameArgs(c.Message().Payload)
	if err != nil {
		return c.Send("Usage: /rename <old> <new>  or  /rename <old name> | <new name>")
	}
	if err := h.Payroll.Rename(oldName, newName); err != nil {
		return c.Send(errorText(err))
	}
	return c.Send(fmt.Sprintf("%s is now %s.", oldName, newName))
}

func (h *Handler) handleEdit(c telebot.Context) error {
	oldName, newName, hourly, wage, err := parseEditArgs(c.Message().Payload)
	if err != nil {
		return c.Send("Usage: /edit <old> | <new> <hourly|salary> <wage>")
	}
	rec, err := h.Payroll.Edit(oldName, newName, hourly, wage)
	if err != nil {
		return c.Send(errorText(err))
	}
	return c.Send("Updated.\n\n" + formatEmployee(rec))
}

func (h *Handler) handleWage(c telebot.Context) error {
	name, wage, err := parseNameAmount(c.Args())
	if err != nil {
		return c.Send("Usage: /wage <name> <wage>")
	}
	rec, err := h.Payroll.ChangeWage(name, wage)
	if err != nil {
		return c.Send(errorText(err))
	}
	return c.Send(fmt.Sprintf("%s now makes $%d per %s.", rec.Name, rec.Wage, payPeriod(rec.Hourly)))
}

func (h *Handler) handleType(c telebot.Context) error {
	name := strings.TrimSpace(c.Message().Payload)
	if name == "" {
		return h.sendPicker(c, flows.KeyTypePick, "Whose pay type should change?")
	}
	rec, err := h.Payroll.ToggleType(name)
	if err != nil {
		return c.Send(errorText(err))
	}
	return c.Send(fmt.Sprintf("%s is now paid per %s at $%d.", rec.Name, payPeriod(rec.Hourly), rec.Wage))
}

func (h *Handler) handleWork(c telebot.Context) error {
	if len(c.Args()) == 0 {
		return h.sendPicker(c, flows.KeyWorkPick, "Record work for whom?")
	}
	name, amount, err := parseNameAmount(c.Args())
	if err != nil {
		return c.Send("Usage: /work <name> <hours or days>")
	}
	return h.recordWork(c, name, amount)
}

func (h *Handler) handlePay(c telebot.Context) error {
	name := strings.TrimSpace(c.Message().Payload)
	if name == "" {
		return h.sendPicker(c, flows.KeyPayPick, "Pay whom?")
	}
	paid, err := h.Payroll.Pay(name)
	if err != nil {
		return c.Send(errorText(err))
	}
	return c.Send(fmt.Sprintf("%s has been paid $%d.", name, paid))
}

func (h *Handler) handlePayAll(c telebot.Context) error {
	sum := h.Payroll.Summary()
	if sum.TotalOwed == 0 {
		return c.Send("Nobody is owed anything.")
	}
	text := fmt.Sprintf("Pay $%d to %d employees?", sum.TotalOwed, sum.Employees)
	return c.Send(text, keyboards.BuildConfirmKeyboard(flows.KeyPayAllConfirm, ""))
}

func (h *Handler) handleSave(c telebot.Context) error {
	ctx := h.chatContext(c)
	if err := h.Async.Run(ctx, h.Payroll.Save); err != nil {
		logger.From(ctx).Error().Err(err).Msg("save from chat failed")
		return c.Send(errorText(err))
	}
	return c.Send("Employee list saved.")
}

func (h *Handler) handleLoad(c telebot.Context) error {
	ctx := h.chatContext(c)
	if err := h.Async.Run(ctx, h.Payroll.Load); err != nil {
		logger.From(ctx).Error().Err(err).Msg("load from chat failed")
		return c.Send(errorText(err))
	}
	logger.From(ctx).Info().Msg("roster reloaded from chat")
	return c.Send(fmt.Sprintf("Employee list loaded: %d employees.", h.Payroll.Summary().Employees))
}

func (h *Handler) chatContext(c telebot.Context) context.Context {
	fields := map[string]interface{}{}
	if chat := c.Chat(); chat != nil {
		fields["chat"] = chat.ID
	}
	return logger.WithFields(h.Ctx, h.Log, fields)
}

// handleText takes the amount for a pending /work pick, or a reply keyboard button.
// A button press abandons the pending pick.
func (h *Handler) handleText(c telebot.Context) error {
	chatID := c.Chat().ID
	if name, ok := h.pending.Take(chatID); ok && !isMenuButton(c.Text()) {
		amount, err := parseAmount(c.Text())
		if err != nil {
			h.pending.Set(chatID, name)
			return c.Send("Please send a whole number, or /work to start over.")
		}
		return h.recordWork(c, name, amount)
	}

	switch c.Text() {
	case btnList.Text:
		return h.handleList(c)
	case btnWork.Text:
		return h.sendPicker(c, flows.KeyWorkPick, "Record work for whom?")
	case btnPay.Text:
		return h.sendPicker(c, flows.KeyPayPick, "Pay whom?")
	case btnPayAll.Text:
		return h.handlePayAll(c)
	}
	return nil
}

func isMenuButton(text string) bool {
	switch text {
	case btnList.Text, btnWork.Text, btnPay.Text, btnPayAll.Text:
		return true
	}
	return false
}

func (h *Handler) recordWork(c telebot.Context, name string, amount int) error {
	rec, err := h.Payroll.RecordWork(name, amount)
	if err != nil {
		return c.Send(errorText(err))
	}
	return c.Send(fmt.Sprintf("Recorded %d %s for %s. Owed: $%d.", amount, workUnit(rec.Hourly), rec.Name, rec.Owed))
}

func (h *Handler) sendPicker(c telebot.Context, key, prompt string) error {
	names := h.Payroll.Names()
	if len(names) == 0 {
		return c.Send("The employee list is empty. Start with /hire.")
	}
	return c.Send(prompt, keyboards.BuildEmployeeKeyboard(key, names))
}
