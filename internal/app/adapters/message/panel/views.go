package panel

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tgguard/internal/app/domain/punishment"
	"tgguard/internal/app/infrastructure/settings"
)

func (p *Panel) menuView(cs *settings.ChatSettings) (string, tgbotapi.InlineKeyboardMarkup) {
	text := fmt.Sprintf("⚙️ *Панель управления ботом*\n\n"+
		"Модерация: %s\nРежим проверки: %s\nЗащита от ссылок: %s\n\n"+
		"Запрещённых слов: %d • Разрешённых ссылок: %d • Бот-админов: %d",
		stateLabel(cs.Enabled), modeLabel(cs.Mode), stateLabel(cs.LinkProtection),
		len(cs.BannedWords), len(cs.AllowedLinks), len(cs.BotAdmins))

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggleCaption(cs.Enabled, "модерацию"), prefix+"toggle:enabled"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Режим: "+modeLabel(cs.Mode), prefix+"toggle:mode"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggleCaption(cs.LinkProtection, "защиту от ссылок"), prefix+"toggle:links"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📛 Запрещённые слова", prefix+"words"),
			tgbotapi.NewInlineKeyboardButtonData("🔗 Разрешённые ссылки", prefix+"links"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔨 Наказания", prefix+"punish"),
			tgbotapi.NewInlineKeyboardButtonData("👮 Бот-админы", prefix+"admins"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статус", prefix+"status"),
		),
	)

	return text, markup
}

func (p *Panel) punishView(cs *settings.ChatSettings) (string, tgbotapi.InlineKeyboardMarkup) {
	text := fmt.Sprintf("🔨 *Наказания*\n\n"+
		"За запрещённые слова: %s\nЗа ссылки: %s",
		punishmentLabel(cs.ActionWords, cs.MuteSecondsWords),
		punishmentLabel(cs.ActionLinks, cs.MuteSecondsLinks))

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Слова: "+actionLabel(cs.ActionWords), prefix+"action:words"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Мут за слова: "+muteLabel(cs.MuteSecondsWords), prefix+"dur:words"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Ссылки: "+actionLabel(cs.ActionLinks), prefix+"action:links"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Мут за ссылки: "+muteLabel(cs.MuteSecondsLinks), prefix+"dur:links"),
		),
		backRow(),
	)

	return text, markup
}

func (p *Panel) wordsView(cs *settings.ChatSettings) (string, tgbotapi.InlineKeyboardMarkup) {
	text := "📛 *Запрещённые слова*\n\n" + formatList(cs.BannedWords)

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить", prefix+"words:add"),
			tgbotapi.NewInlineKeyboardButtonData("➖ Удалить", prefix+"words:del"),
		),
		backRow(),
	)

	return text, markup
}

func (p *Panel) linksView(cs *settings.ChatSettings) (string, tgbotapi.InlineKeyboardMarkup) {
	text := "🔗 *Разрешённые ссылки*\n\n" + formatList(cs.AllowedLinks)

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить", prefix+"links:add"),
			tgbotapi.NewInlineKeyboardButtonData("➖ Удалить", prefix+"links:del"),
		),
		backRow(),
	)

	return text, markup
}

func (p *Panel) adminsView(cs *settings.ChatSettings) (string, tgbotapi.InlineKeyboardMarkup) {
	text := "👮 *Бот-админы*\n\n" + formatAdmins(cs.BotAdmins)

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить", prefix+"admins:add"),
			tgbotapi.NewInlineKeyboardButtonData("➖ Удалить", prefix+"admins:del"),
		),
		backRow(),
	)

	return text, markup
}

func backRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", prefix+"menu"))
}

func stateLabel(enabled bool) string {
	if enabled {
		return "✅ включена"
	}
	return "⛔️ выключена"
}

func toggleCaption(enabled bool, what string) string {
	if enabled {
		return "⛔️ Выключить " + what
	}
	return "✅ Включить " + what
}

// modeLabel names who gets checked, admins are exempt in the default mode.
func modeLabel(mode string) string {
	if mode == settings.ModeAll {
		return "Все"
	}
	return "Только пользователи"
}

func actionLabel(a punishment.Action) string {
	switch a {
	case punishment.Warn:
		return "Предупреждение"
	case punishment.Mute:
		return "Мут"
	case punishment.Ban:
		return "Бан"
	}
	return "Ничего"
}

func punishmentLabel(a punishment.Action, muteSeconds int) string {
	if a == punishment.Mute {
		return fmt.Sprintf("%s (%s)", actionLabel(a), muteLabel(muteSeconds))
	}
	return actionLabel(a)
}

func muteLabel(muteSeconds int) string {
	return punishment.FormatDuration(time.Duration(muteSeconds) * time.Second)
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "Список пуст."
	}

	var sb strings.Builder
	for i, item := range items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatAdmins(ids []int64) string {
	if len(ids) == 0 {
		return "Список пуст."
	}

	var sb strings.Builder
	for i, id := range ids {
		fmt.Fprintf(&sb, "%d. `%d`\n", i+1, id)
	}
	return strings.TrimRight(sb.String(), "\n")
}
