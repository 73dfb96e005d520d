package panel

import (
	"fmt"
	"runtime"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shirou/gopsutil/cpu"

	"tgguard/internal/app/infrastructure/settings"
)

var startApp = time.Now()

func (p *Panel) statusView(_ *settings.ChatSettings) (string, tgbotapi.InlineKeyboardMarkup) {
	uptime := time.Since(startApp)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	percent, _ := cpu.Percent(0, false)
	if len(percent) == 0 {
		percent = append(percent, 0)
	}

	text := fmt.Sprintf("📊 *Статус бота*\n\n"+
		"Бот работает %v\nЗагрузка CPU: %.2f%%\nПотребление ОЗУ: %v MB\n"+
		"Чатов под защитой: %d\nФайл настроек: `%s`",
		uptime.Truncate(time.Second), percent[0], m.Sys/1024/1024,
		p.settings.Len(), p.settings.Path())

	markup := tgbotapi.NewInlineKeyboardMarkup(backRow())
	return text, markup
}
