package keyboards

import (
	"gopkg.in/telebot.v3"
)

const perRow = 2

// Callback data is capped at 64 bytes by Telegram, key and separator included.
const maxCallbackData = 64

// BuildEmployeeKeyboard lays out one button per employee; pressing one fires the
// callback key with the employee's name as payload. Names too long to fit in
// callback data are left out.
func BuildEmployeeKeyboard(key string, names []string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	var row telebot.Row
	for _, name := range names {
		if len(key)+len(name)+2 > maxCallbackData {
			continue
		}
		row = append(row, markup.Data(name, key, name))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	markup.Inline(rows...)
	return markup
}

// BuildConfirmKeyboard asks for a yes/no before running key.
func BuildConfirmKeyboard(key, payload string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	yes := markup.Data("Yes", key, payload)
	no := markup.Data("Cancel", "cancel")
	markup.Inline(markup.Row(yes, no))
	return markup
}
