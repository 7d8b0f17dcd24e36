package router

import (
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter dispatches inline button callbacks by their unique key.
type CallbackRouter struct {
	handlers map[string]HandlerFunc
	log      zerolog.Logger
}

func New(log zerolog.Logger) *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]HandlerFunc), log: log}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

// Attach makes the router the bot's only callback handler.
func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

// Dispatch runs the handler registered for the callback, reporting whether one existed.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := ParseData(c.Data())
	r.log.Debug().Str("key", key).Str("payload", payload).Msg("callback")
	_ = c.Respond()

	if h, ok := r.handlers[key]; ok {
		return true, h(c, payload)
	}
	return false, nil
}

// ParseData splits raw callback data of the form "\fkey|payload".
func ParseData(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key = raw
	if i := strings.IndexByte(raw, '|'); i >= 0 {
		key = raw[:i]
		payload = raw[i+1:]
	}
	return key, payload
}
