package telegram

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tgguard/internal/app/domain"
	"tgguard/internal/app/ports"
)

// Listen long-polls for updates and feeds them to handler one at a time.
// A panic inside one update is recovered so the loop survives bad input.
func (t *Telegram) Listen(handler ports.UpdateHandler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := t.api.GetUpdatesChan(u)
	t.log.Info("Listening for updates", slog.String("username", t.api.Self.UserName))

	for update := range updates {
		t.handleUpdate(handler, update)
	}
}

func (t *Telegram) handleUpdate(handler ports.UpdateHandler, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Error("Recovered from panic in update handler", fmt.Errorf("%v", r), slog.Int("update_id", update.UpdateID))
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		cb := convertCallback(update.CallbackQuery)
		if cb == nil {
			return
		}
		handler.HandleCallback(cb)
	case update.Message != nil:
		handler.HandleMessage(convertMessage(update.Message))
	}
}

func convertMessage(m *tgbotapi.Message) *domain.Message {
	msg := &domain.Message{
		ID:      m.MessageID,
		Text:    m.Text,
		Caption: m.Caption,
	}

	if m.Chat != nil {
		msg.Chat = domain.Chat{ID: m.Chat.ID, Type: m.Chat.Type, Title: m.Chat.Title}
	}
	if m.From != nil {
		msg.From = convertUser(m.From)
	}
	if m.IsCommand() {
		msg.Command = m.Command()
	}

	return msg
}

func convertCallback(cb *tgbotapi.CallbackQuery) *domain.Callback {
	// Callbacks from inline-mode messages carry no chat, nothing to do with
	// them here.
	if cb.Message == nil || cb.Message.Chat == nil || cb.From == nil {
		return nil
	}

	return &domain.Callback{
		ID:        cb.ID,
		Data:      cb.Data,
		From:      convertUser(cb.From),
		Chat:      domain.Chat{ID: cb.Message.Chat.ID, Type: cb.Message.Chat.Type, Title: cb.Message.Chat.Title},
		MessageID: cb.Message.MessageID,
	}
}

func convertUser(u *tgbotapi.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Username:  u.UserName,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
