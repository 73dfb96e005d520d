package panel

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tgguard/internal/app/domain"
	"tgguard/internal/app/infrastructure/settings"
)

type inputKind int

const (
	inputWordsAdd inputKind = iota
	inputWordsDel
	inputLinksAdd
	inputLinksDel
	inputAdminsAdd
	inputAdminsDel
)

// pendingInput remembers which admin the panel asked for text and which
// panel message to redraw once the answer lands. One prompt per chat.
type pendingInput struct {
	userID    int64
	kind      inputKind
	messageID int
}

const (
	promptWordsAdd  = "✏️ *Отправьте слово, которое нужно запретить.*"
	promptWordsDel  = "✏️ *Отправьте слово, которое нужно убрать из списка.*"
	promptLinksAdd  = "✏️ *Отправьте ссылку, которую нужно разрешить.*"
	promptLinksDel  = "✏️ *Отправьте ссылку, которую нужно убрать из списка.*"
	promptAdminsAdd = "✏️ *Отправьте ID пользователя, которого нужно назначить бот-админом.*"
	promptAdminsDel = "✏️ *Отправьте ID пользователя, которого нужно снять.*"

	invalidUserID = "Некорректный ID пользователя."
)

func (p *Panel) armWordsAdd(cb *domain.Callback)  { p.arm(cb, inputWordsAdd, promptWordsAdd) }
func (p *Panel) armWordsDel(cb *domain.Callback)  { p.arm(cb, inputWordsDel, promptWordsDel) }
func (p *Panel) armLinksAdd(cb *domain.Callback)  { p.arm(cb, inputLinksAdd, promptLinksAdd) }
func (p *Panel) armLinksDel(cb *domain.Callback)  { p.arm(cb, inputLinksDel, promptLinksDel) }
func (p *Panel) armAdminsAdd(cb *domain.Callback) { p.arm(cb, inputAdminsAdd, promptAdminsAdd) }
func (p *Panel) armAdminsDel(cb *domain.Callback) { p.arm(cb, inputAdminsDel, promptAdminsDel) }

func (p *Panel) arm(cb *domain.Callback, kind inputKind, prompt string) {
	p.mu.Lock()
	p.pending[cb.Chat.ID] = &pendingInput{
		userID:    cb.From.ID,
		kind:      kind,
		messageID: cb.MessageID,
	}
	p.mu.Unlock()

	markup := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Отмена", prefix+"menu"),
	))
	if err := p.tg.EditKeyboard(cb.Chat.ID, cb.MessageID, prompt, markup); err != nil {
		p.log.Error("Failed to show prompt", err, slog.Int64("chat_id", cb.Chat.ID))
	}
}

func (p *Panel) clearPending(chatID int64) {
	p.mu.Lock()
	delete(p.pending, chatID)
	p.mu.Unlock()
}

// ConsumeInput claims a message as the answer to an armed prompt. Messages
// from other users, and anything when no prompt is armed, fall through to
// moderation untouched.
func (p *Panel) ConsumeInput(msg *domain.Message) bool {
	input := strings.TrimSpace(msg.BodyText())
	if input == "" {
		return false
	}

	p.mu.Lock()
	pend, ok := p.pending[msg.Chat.ID]
	if !ok || pend.userID != msg.From.ID {
		p.mu.Unlock()
		return false
	}
	delete(p.pending, msg.Chat.ID)
	p.mu.Unlock()

	p.apply(pend, msg, input)
	return true
}

func (p *Panel) apply(pend *pendingInput, msg *domain.Message, input string) {
	switch pend.kind {
	case inputWordsAdd:
		word := strings.ToLower(input)
		p.mutate(msg.Chat.ID, pend.messageID, "words_add", p.wordsView, func(cs *settings.ChatSettings) {
			cs.BannedWords = appendUnique(cs.BannedWords, word)
		})
	case inputWordsDel:
		p.mutate(msg.Chat.ID, pend.messageID, "words_del", p.wordsView, func(cs *settings.ChatSettings) {
			cs.BannedWords = removeFold(cs.BannedWords, input)
		})
	case inputLinksAdd:
		link := strings.ToLower(input)
		p.mutate(msg.Chat.ID, pend.messageID, "links_add", p.linksView, func(cs *settings.ChatSettings) {
			cs.AllowedLinks = appendUnique(cs.AllowedLinks, link)
		})
	case inputLinksDel:
		p.mutate(msg.Chat.ID, pend.messageID, "links_del", p.linksView, func(cs *settings.ChatSettings) {
			cs.AllowedLinks = removeFold(cs.AllowedLinks, input)
		})
	case inputAdminsAdd, inputAdminsDel:
		userID, err := strconv.ParseInt(strings.TrimPrefix(input, "@"), 10, 64)
		if err != nil {
			if err := p.tg.ReplyMessage(msg.Chat.ID, msg.ID, invalidUserID); err != nil {
				p.log.Error("Failed to send reply", err, slog.Int64("chat_id", msg.Chat.ID))
			}
			p.show(msg.Chat.ID, pend.messageID, p.adminsView)
			return
		}

		if pend.kind == inputAdminsAdd {
			p.mutate(msg.Chat.ID, pend.messageID, "admins_add", p.adminsView, func(cs *settings.ChatSettings) {
				if !slices.Contains(cs.BotAdmins, userID) {
					cs.BotAdmins = append(cs.BotAdmins, userID)
				}
			})
		} else {
			p.mutate(msg.Chat.ID, pend.messageID, "admins_del", p.adminsView, func(cs *settings.ChatSettings) {
				cs.BotAdmins = slices.DeleteFunc(cs.BotAdmins, func(id int64) bool { return id == userID })
			})
		}
	}
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if strings.EqualFold(v, value) {
			return list
		}
	}
	return append(list, value)
}

func removeFold(list []string, value string) []string {
	return slices.DeleteFunc(list, func(v string) bool { return strings.EqualFold(v, value) })
}
