package telegram

import "gopkg.in/telebot.v3"

// Client is the outbound messaging capability used by the notification
// service. It hides the concrete bot library behind a single send method.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
