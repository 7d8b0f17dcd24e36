package middleware

import (
	"gopkg.in/telebot.v3"
)

// EditOrSend replaces the message behind a callback, sending a new one when
// there is nothing to edit or Telegram refuses the edit.
func EditOrSend(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	if c.Callback() == nil {
		return send(c, text, markup)
	}
	var err error
	if markup != nil {
		err = c.Edit(text, markup)
	} else {
		err = c.Edit(text)
	}
	if err != nil {
		return send(c, text, markup)
	}
	return nil
}

func send(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	if markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}
