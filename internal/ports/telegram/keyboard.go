package telegram

// InlineButton кнопка inline клавиатуры: либо callback_data, либо url
type InlineButton struct {
	Text         string
	CallbackData string
	URL          string
}

// InlineKeyboard собирает reply_markup для Telegram API из рядов кнопок
func InlineKeyboard(rows ...[]InlineButton) map[string]interface{} {
	keyboard := make([][]map[string]interface{}, 0, len(rows))

	for _, row := range rows {
		buttons := make([]map[string]interface{}, 0, len(row))
		for _, b := range row {
			button := map[string]interface{}{
				"text": b.Text,
			}
			if b.CallbackData != "" {
				button["callback_data"] = b.CallbackData
			}
			if b.URL != "" {
				button["url"] = b.URL
			}
			buttons = append(buttons, button)
		}
		keyboard = append(keyboard, buttons)
	}

	return map[string]interface{}{
		"inline_keyboard": keyboard,
	}
}
