package telegram

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"

	"payroll-bot/internal/app/service"
	"payroll-bot/internal/delivery/telegram/flows"
	"payroll-bot/internal/repository/jsonfile"
	"payroll-bot/pkg/workerpool"
)

// msgContext is a telebot.Context for one incoming message that records replies.
type msgContext struct {
	telebot.Context
	msg  *telebot.Message
	sent []string
}

func newMessage(chatID int64, text, payload string) *msgContext {
	return &msgContext{msg: &telebot.Message{
		Chat:    &telebot.Chat{ID: chatID},
		Text:    text,
		Payload: payload,
	}}
}

func (c *msgContext) Chat() *telebot.Chat       { return c.msg.Chat }
func (c *msgContext) Message() *telebot.Message { return c.msg }
func (c *msgContext) Text() string              { return c.msg.Text }
func (c *msgContext) Args() []string            { return strings.Fields(c.msg.Payload) }

func (c *msgContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, fmt.Sprint(what))
	return nil
}

func (c *msgContext) lastReply() string {
	if len(c.sent) == 0 {
		return ""
	}
	return c.sent[len(c.sent)-1]
}

func newTestHandler(t *testing.T, log zerolog.Logger) *Handler {
	t.Helper()
	pool := workerpool.NewWorkerPool(1, 1)
	t.Cleanup(pool.Close)
	store := jsonfile.NewRepo(filepath.Join(t.TempDir(), "employees.json"), zerolog.Nop())
	return &Handler{
		Payroll: service.NewPayrollService(store, zerolog.Nop()),
		Async:   service.NewAsyncService(pool),
		Log:     log,
		Ctx:     context.Background(),
		pending: flows.NewPendingWork(),
	}
}

func TestHandleTextPendingWork(t *testing.T) {
	h := newTestHandler(t, zerolog.Nop())
	_, err := h.Payroll.Hire("Bob", true, 30)
	require.NoError(t, err)
	h.pending.Set(1, "Bob")

	c := newMessage(1, "ten", "")
	require.NoError(t, h.handleText(c))
	assert.Contains(t, c.lastReply(), "whole number")

	c = newMessage(1, "10", "")
	require.NoError(t, h.handleText(c))
	assert.Equal(t, "Recorded 10 hours for Bob. Owed: $300.", c.lastReply())

	c = newMessage(1, "10", "")
	require.NoError(t, h.handleText(c))
	assert.Empty(t, c.sent, "the amount is taken once")

	rec, err := h.Payroll.Get("Bob")
	require.NoError(t, err)
	assert.Equal(t, 300, rec.Owed)
}

func TestHandleTextButtonCancelsPendingWork(t *testing.T) {
	h := newTestHandler(t, zerolog.Nop())
	_, err := h.Payroll.Hire("Bob", true, 30)
	require.NoError(t, err)
	h.pending.Set(1, "Bob")

	c := newMessage(1, btnList.Text, "")
	require.NoError(t, h.handleText(c))
	assert.Contains(t, c.lastReply(), "Bob | $30 per hour | owed $0")

	_, ok := h.pending.Take(1)
	assert.False(t, ok)
}

func TestHandleEdit(t *testing.T) {
	h := newTestHandler(t, zerolog.Nop())
	_, err := h.Payroll.Hire("John", true, 35)
	require.NoError(t, err)
	_, err = h.Payroll.RecordWork("John", 2)
	require.NoError(t, err)

	c := newMessage(1, "/edit John | Brian salary 80000", "John | Brian salary 80000")
	require.NoError(t, h.handleEdit(c))
	assert.Contains(t, c.lastReply(), "Updated.")

	rec, err := h.Payroll.Get("Brian")
	require.NoError(t, err)
	assert.False(t, rec.Hourly)
	assert.Equal(t, 80000, rec.Wage)
	assert.Equal(t, 70, rec.Owed)

	c = newMessage(1, "/edit Brian", "Brian")
	require.NoError(t, h.handleEdit(c))
	assert.Contains(t, c.lastReply(), "Usage: /edit")

	c = newMessage(1, "/edit Brian | Brian hourly 0", "Brian | Brian hourly 0")
	require.NoError(t, h.handleEdit(c))
	assert.Equal(t, "Not accepted: wage must be positive.", c.lastReply())
}

func TestHandleWorkNegativeAmount(t *testing.T) {
	h := newTestHandler(t, zerolog.Nop())
	_, err := h.Payroll.Hire("Bob", true, 30)
	require.NoError(t, err)

	c := newMessage(1, "/work Bob -3", "Bob -3")
	require.NoError(t, h.handleWork(c))
	assert.Equal(t, "Not accepted: work amount must not be negative.", c.lastReply())
}

func TestHandleLoadLogsChat(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(t, zerolog.New(&buf))

	c := newMessage(77, "/load", "")
	require.NoError(t, h.handleLoad(c))
	assert.Contains(t, c.lastReply(), "unavailable")
	assert.Contains(t, buf.String(), `"chat":77`)
	assert.Contains(t, buf.String(), "load from chat failed")
}
