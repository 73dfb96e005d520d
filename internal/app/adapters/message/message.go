package message

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"tgguard/internal/app/adapters/metrics"
	"tgguard/internal/app/domain"
	"tgguard/internal/app/domain/punishment"
	"tgguard/internal/app/infrastructure/settings"
	"tgguard/internal/app/ports"
	"tgguard/pkg/logger"
)

const rulesReminder = "*Пожалуйста, соблюдайте правила чата!*"

// Message routes every update: the panel command and its traffic first, the
// moderation checker after, then whatever action the checker decided.
type Message struct {
	log      logger.Logger
	settings *settings.Manager
	tg       ports.TelegramPort
	panel    ports.PanelPort
	checker  ports.CheckerPort
}

func New(log logger.Logger, manager *settings.Manager, tg ports.TelegramPort, panel ports.PanelPort, checker ports.CheckerPort) *Message {
	return &Message{
		log:      log,
		settings: manager,
		tg:       tg,
		panel:    panel,
		checker:  checker,
	}
}

func (m *Message) HandleMessage(msg *domain.Message) {
	start := time.Now()
	defer func() {
		metrics.MessageProcessingTime.Observe(time.Since(start).Seconds())
	}()

	m.log.Trace("Processing message", slog.String("chat", msg.Chat.Title), slog.String("username", msg.From.Username))
	metrics.MessagesTotal.With(prometheus.Labels{"chat": chatLabel(msg.Chat.ID)}).Inc()

	if msg.Command == "admin" {
		m.panel.Open(msg)
		return
	}

	// Input promised to the panel never reaches moderation.
	if m.panel.ConsumeInput(msg) {
		return
	}

	action := m.checker.Check(msg)
	metrics.ManagedChats.Set(float64(m.settings.Len()))
	if action == nil {
		return
	}

	m.execute(action, msg)
}

func (m *Message) HandleCallback(cb *domain.Callback) {
	m.panel.HandleCallback(cb)
}

func (m *Message) execute(action *ports.CheckerAction, msg *domain.Message) {
	m.log.Warn("Violation found",
		slog.String("chat", msg.Chat.Title),
		slog.String("username", msg.From.Username),
		slog.String("reason", action.Reason),
		slog.String("matched", action.Matched),
	)
	metrics.Violations.With(prometheus.Labels{"chat": chatLabel(msg.Chat.ID), "category": string(action.Category)}).Inc()

	// The offending message goes first, whatever the configured action.
	if err := m.tg.DeleteMessage(msg.Chat.ID, msg.ID); err != nil {
		m.log.Error("Failed to delete message", err, slog.Int("message_id", msg.ID))
	}

	offender := msg.From.Mention()
	switch action.Type {
	case punishment.Warn:
		m.notify(msg.Chat.ID, fmt.Sprintf("🚫 *Пользователь %s написал %s и получил предупреждение.*", offender, action.Reason))
	case punishment.Mute:
		if err := m.tg.MuteMember(msg.Chat.ID, msg.From.ID, action.Duration); err != nil {
			m.log.Error("Failed to mute member", err, slog.Int64("user_id", msg.From.ID))
		}
		m.notify(msg.Chat.ID, fmt.Sprintf("🚫 *Пользователь %s написал %s и получил мут на %s.*", offender, action.Reason, punishment.FormatDuration(action.Duration)))
	case punishment.Ban:
		if err := m.tg.BanMember(msg.Chat.ID, msg.From.ID); err != nil {
			m.log.Error("Failed to ban member", err, slog.Int64("user_id", msg.From.ID))
		}
		m.notify(msg.Chat.ID, fmt.Sprintf("🚫 *Пользователь %s написал %s и был заблокирован.*", offender, action.Reason))
	default:
		return
	}

	metrics.ModerationActions.With(prometheus.Labels{"chat": chatLabel(msg.Chat.ID), "action": string(action.Type)}).Inc()
}

func (m *Message) notify(chatID int64, text string) {
	if err := m.tg.SendMessage(chatID, text+"\n"+rulesReminder); err != nil {
		m.log.Error("Failed to send notification", err, slog.Int64("chat_id", chatID))
	}
}

func chatLabel(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
