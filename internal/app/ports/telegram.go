package ports

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramPort interface {
	SendMessage(chatID int64, text string) error
	ReplyMessage(chatID int64, replyTo int, text string) error
	ReplyKeyboard(chatID int64, replyTo int, text string, markup tgbotapi.InlineKeyboardMarkup) error
	EditKeyboard(chatID int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) error
	AnswerCallback(callbackID, text string) error
	DeleteMessage(chatID int64, messageID int) error
	MuteMember(chatID, userID int64, duration time.Duration) error
	BanMember(chatID, userID int64) error
}

type MemberPort interface {
	MemberIsAdmin(chatID, userID int64) (bool, error)
}
