package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"tgguard/internal/app/adapters/metrics"
	"tgguard/pkg/logger"
)

// Telegram wraps the Bot API client. Outbound calls share one rate limiter
// and are delayed rather than dropped when it saturates.
type Telegram struct {
	log     logger.Logger
	api     *tgbotapi.BotAPI
	limiter *rate.Limiter
}

func New(log logger.Logger, token string) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	return &Telegram{
		log:     log,
		api:     api,
		limiter: rate.NewLimiter(rate.Every(50*time.Millisecond), 20),
	}, nil
}

func (t *Telegram) Username() string {
	return t.api.Self.UserName
}

func (t *Telegram) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	return t.request("sendMessage", msg)
}

func (t *Telegram) ReplyMessage(chatID int64, replyTo int, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyToMessageID = replyTo
	return t.request("sendMessage", msg)
}

func (t *Telegram) ReplyKeyboard(chatID int64, replyTo int, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyToMessageID = replyTo
	msg.ReplyMarkup = markup
	return t.request("sendMessage", msg)
}

func (t *Telegram) EditKeyboard(chatID int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
	edit.ParseMode = tgbotapi.ModeMarkdown
	return t.request("editMessageText", edit)
}

func (t *Telegram) AnswerCallback(callbackID, text string) error {
	return t.request("answerCallbackQuery", tgbotapi.NewCallback(callbackID, text))
}

func (t *Telegram) DeleteMessage(chatID int64, messageID int) error {
	return t.request("deleteMessage", tgbotapi.NewDeleteMessage(chatID, messageID))
}

func (t *Telegram) MuteMember(chatID, userID int64, duration time.Duration) error {
	return t.request("restrictChatMember", tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
		UntilDate: time.Now().Add(duration).Unix(),
		Permissions: &tgbotapi.ChatPermissions{
			CanSendMessages:       false,
			CanSendMediaMessages:  false,
			CanSendPolls:          false,
			CanSendOtherMessages:  false,
			CanAddWebPagePreviews: false,
		},
	})
}

func (t *Telegram) BanMember(chatID, userID int64) error {
	return t.request("banChatMember", tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
	})
}

func (t *Telegram) MemberIsAdmin(chatID, userID int64) (bool, error) {
	member, err := t.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: chatID,
			UserID: userID,
		},
	})
	if err != nil {
		metrics.APIErrors.With(prometheus.Labels{"method": "getChatMember"}).Inc()
		return false, fmt.Errorf("getChatMember: %w", err)
	}

	return member.IsCreator() || member.IsAdministrator(), nil
}

func (t *Telegram) request(method string, c tgbotapi.Chattable) error {
	if err := t.limiter.Wait(context.Background()); err != nil {
		return err
	}

	if _, err := t.api.Request(c); err != nil {
		metrics.APIErrors.With(prometheus.Labels{"method": method}).Inc()
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
