package panel

import (
	"log/slog"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"

	"tgguard/internal/app/adapters/metrics"
	"tgguard/internal/app/domain"
	"tgguard/internal/app/domain/punishment"
	"tgguard/internal/app/infrastructure/settings"
	"tgguard/internal/app/ports"
	"tgguard/pkg/logger"
)

// Every panel button carries this prefix in its callback data, everything
// else on the callback stream is not ours.
const prefix = "adm:"

const (
	deniedCallback = "Нет прав"
	deniedOpen     = "*Только Owner и бот-админы могут открывать панель.*"
)

type viewFunc func(cs *settings.ChatSettings) (string, tgbotapi.InlineKeyboardMarkup)

// Panel is the inline admin panel: the bot posts one keyboard message per
// chat and edits it in place while admins navigate. Free-text answers to its
// prompts arrive as ordinary chat messages and are claimed via ConsumeInput.
type Panel struct {
	log      logger.Logger
	settings *settings.Manager
	access   ports.AccessPort
	tg       ports.TelegramPort

	mu      sync.Mutex
	pending map[int64]*pendingInput

	handlers map[string]func(cb *domain.Callback)
}

func New(log logger.Logger, manager *settings.Manager, access ports.AccessPort, tg ports.TelegramPort) *Panel {
	p := &Panel{
		log:      log,
		settings: manager,
		access:   access,
		tg:       tg,
		pending:  make(map[int64]*pendingInput),
	}
	p.handlers = p.buildHandlers()

	return p
}

func (p *Panel) buildHandlers() map[string]func(cb *domain.Callback) {
	return map[string]func(cb *domain.Callback){
		"menu":           p.showMenu,
		"toggle:enabled": p.toggleEnabled,
		"toggle:mode":    p.toggleMode,
		"toggle:links":   p.toggleLinks,
		"punish":         p.showPunish,
		"action:words":   p.cycleWordsAction,
		"action:links":   p.cycleLinksAction,
		"dur:words":      p.cycleWordsMute,
		"dur:links":      p.cycleLinksMute,
		"words":          p.showWords,
		"words:add":      p.armWordsAdd,
		"words:del":      p.armWordsDel,
		"links":          p.showLinks,
		"links:add":      p.armLinksAdd,
		"links:del":      p.armLinksDel,
		"admins":         p.showAdmins,
		"admins:add":     p.armAdminsAdd,
		"admins:del":     p.armAdminsDel,
		"status":         p.showStatus,
	}
}

func (p *Panel) Open(msg *domain.Message) {
	if !msg.Chat.IsGroup() {
		return
	}

	if !p.access.IsBotAdmin(msg.Chat.ID, msg.From.ID) {
		if err := p.tg.ReplyMessage(msg.Chat.ID, msg.ID, deniedOpen); err != nil {
			p.log.Error("Failed to reject panel open", err, slog.Int64("chat_id", msg.Chat.ID))
		}
		return
	}

	cs := p.settings.Ensure(msg.Chat.ID)
	text, markup := p.menuView(&cs)
	if err := p.tg.ReplyKeyboard(msg.Chat.ID, msg.ID, text, markup); err != nil {
		p.log.Error("Failed to open panel", err, slog.Int64("chat_id", msg.Chat.ID))
	}
}

func (p *Panel) HandleCallback(cb *domain.Callback) {
	data, found := strings.CutPrefix(cb.Data, prefix)
	if !found {
		return
	}

	if !p.access.IsBotAdmin(cb.Chat.ID, cb.From.ID) {
		p.answer(cb.ID, deniedCallback)
		return
	}

	// Navigating anywhere abandons a half-finished text prompt.
	p.clearPending(cb.Chat.ID)

	handler, ok := p.handlers[data]
	if !ok {
		p.log.Warn("Unknown panel callback", slog.String("data", cb.Data))
		p.answer(cb.ID, "")
		return
	}

	handler(cb)
	p.answer(cb.ID, "")
}

func (p *Panel) show(chatID int64, messageID int, view viewFunc) {
	cs := p.settings.Ensure(chatID)
	text, markup := view(&cs)
	if err := p.tg.EditKeyboard(chatID, messageID, text, markup); err != nil {
		p.log.Error("Failed to redraw panel", err, slog.Int64("chat_id", chatID))
	}
}

func (p *Panel) mutate(chatID int64, messageID int, op string, view viewFunc, modify func(cs *settings.ChatSettings)) {
	if err := p.settings.Update(chatID, modify); err != nil {
		p.log.Error("Failed to update settings", err, slog.Int64("chat_id", chatID), slog.String("op", op))
	}
	metrics.PanelMutations.With(prometheus.Labels{"op": op}).Inc()
	p.show(chatID, messageID, view)
}

func (p *Panel) answer(callbackID, text string) {
	if err := p.tg.AnswerCallback(callbackID, text); err != nil {
		p.log.Error("Failed to answer callback", err)
	}
}

func (p *Panel) showMenu(cb *domain.Callback)   { p.show(cb.Chat.ID, cb.MessageID, p.menuView) }
func (p *Panel) showPunish(cb *domain.Callback) { p.show(cb.Chat.ID, cb.MessageID, p.punishView) }
func (p *Panel) showWords(cb *domain.Callback)  { p.show(cb.Chat.ID, cb.MessageID, p.wordsView) }
func (p *Panel) showLinks(cb *domain.Callback)  { p.show(cb.Chat.ID, cb.MessageID, p.linksView) }
func (p *Panel) showAdmins(cb *domain.Callback) { p.show(cb.Chat.ID, cb.MessageID, p.adminsView) }
func (p *Panel) showStatus(cb *domain.Callback) { p.show(cb.Chat.ID, cb.MessageID, p.statusView) }

func (p *Panel) toggleEnabled(cb *domain.Callback) {
	p.mutate(cb.Chat.ID, cb.MessageID, "toggle_enabled", p.menuView, func(cs *settings.ChatSettings) {
		cs.Enabled = !cs.Enabled
	})
}

func (p *Panel) toggleMode(cb *domain.Callback) {
	p.mutate(cb.Chat.ID, cb.MessageID, "toggle_mode", p.menuView, func(cs *settings.ChatSettings) {
		if cs.Mode == settings.ModeAdmins {
			cs.Mode = settings.ModeAll
		} else {
			cs.Mode = settings.ModeAdmins
		}
	})
}

func (p *Panel) toggleLinks(cb *domain.Callback) {
	p.mutate(cb.Chat.ID, cb.MessageID, "toggle_links", p.menuView, func(cs *settings.ChatSettings) {
		cs.LinkProtection = !cs.LinkProtection
	})
}

func (p *Panel) cycleWordsAction(cb *domain.Callback) {
	p.mutate(cb.Chat.ID, cb.MessageID, "action_words", p.punishView, func(cs *settings.ChatSettings) {
		cs.ActionWords = punishment.Next(cs.ActionWords)
	})
}

func (p *Panel) cycleLinksAction(cb *domain.Callback) {
	p.mutate(cb.Chat.ID, cb.MessageID, "action_links", p.punishView, func(cs *settings.ChatSettings) {
		cs.ActionLinks = punishment.Next(cs.ActionLinks)
	})
}

func (p *Panel) cycleWordsMute(cb *domain.Callback) {
	p.mutate(cb.Chat.ID, cb.MessageID, "mute_words", p.punishView, func(cs *settings.ChatSettings) {
		cs.MuteSecondsWords = nextMuteSeconds(cs.MuteSecondsWords)
	})
}

func (p *Panel) cycleLinksMute(cb *domain.Callback) {
	p.mutate(cb.Chat.ID, cb.MessageID, "mute_links", p.punishView, func(cs *settings.ChatSettings) {
		cs.MuteSecondsLinks = nextMuteSeconds(cs.MuteSecondsLinks)
	})
}

var mutePresets = []int{60, 300, 600, 1800, 3600, 86400}

func nextMuteSeconds(current int) int {
	for i, preset := range mutePresets {
		if preset == current {
			return mutePresets[(i+1)%len(mutePresets)]
		}
	}
	return mutePresets[0]
}
