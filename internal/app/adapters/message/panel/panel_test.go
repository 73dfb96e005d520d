package panel

import (
	"path/filepath"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgguard/internal/app/domain"
	"tgguard/internal/app/domain/punishment"
	"tgguard/internal/app/infrastructure/settings"
	"tgguard/internal/app/ports"
	"tgguard/pkg/logger"
)

type fakeAccess struct {
	botAdmin bool
}

func (f *fakeAccess) Resolve(_, _ int64) ports.AccessLevel {
	if f.botAdmin {
		return ports.LevelBotAdmin
	}
	return ports.LevelNone
}

func (f *fakeAccess) IsBotAdmin(_, _ int64) bool      { return f.botAdmin }
func (f *fakeAccess) IsPlatformAdmin(_, _ int64) bool { return false }

type fakeTelegram struct {
	replies []string
	boards  []string
	edits   []string
	editIDs []int
	answers []string
}

func (f *fakeTelegram) SendMessage(_ int64, text string) error {
	f.replies = append(f.replies, text)
	return nil
}

func (f *fakeTelegram) ReplyMessage(_ int64, _ int, text string) error {
	f.replies = append(f.replies, text)
	return nil
}

func (f *fakeTelegram) ReplyKeyboard(_ int64, _ int, text string, _ tgbotapi.InlineKeyboardMarkup) error {
	f.boards = append(f.boards, text)
	return nil
}

func (f *fakeTelegram) EditKeyboard(_ int64, messageID int, text string, _ tgbotapi.InlineKeyboardMarkup) error {
	f.editIDs = append(f.editIDs, messageID)
	f.edits = append(f.edits, text)
	return nil
}

func (f *fakeTelegram) AnswerCallback(_, text string) error {
	f.answers = append(f.answers, text)
	return nil
}

func (f *fakeTelegram) DeleteMessage(_ int64, _ int) error           { return nil }
func (f *fakeTelegram) MuteMember(_, _ int64, _ time.Duration) error { return nil }
func (f *fakeTelegram) BanMember(_, _ int64) error                   { return nil }

func newTestPanel(t *testing.T, botAdmin bool) (*Panel, *fakeTelegram, *settings.Manager) {
	t.Helper()

	manager, err := settings.New(logger.NewNop(), filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	tg := &fakeTelegram{}
	return New(logger.NewNop(), manager, &fakeAccess{botAdmin: botAdmin}, tg), tg, manager
}

func adminCallback(data string) *domain.Callback {
	return &domain.Callback{
		ID:        "cb-1",
		Data:      data,
		From:      domain.User{ID: 42, Username: "admin"},
		Chat:      domain.Chat{ID: -100123, Type: "supergroup", Title: "Чат по Go"},
		MessageID: 500,
	}
}

func panelMessage(userID int64, text string) *domain.Message {
	return &domain.Message{
		ID:   600,
		Chat: domain.Chat{ID: -100123, Type: "supergroup"},
		From: domain.User{ID: userID, Username: "admin"},
		Text: text,
	}
}

func TestOpen(t *testing.T) {
	t.Run("bot admin gets the menu", func(t *testing.T) {
		p, tg, manager := newTestPanel(t, true)

		p.Open(panelMessage(42, "/admin"))

		require.Len(t, tg.boards, 1)
		assert.Contains(t, tg.boards[0], "Панель управления ботом")
		assert.Equal(t, 1, manager.Len(), "чат должен появиться в хранилище")
	})

	t.Run("regular user is rejected", func(t *testing.T) {
		p, tg, manager := newTestPanel(t, false)

		p.Open(panelMessage(42, "/admin"))

		assert.Empty(t, tg.boards)
		require.Len(t, tg.replies, 1)
		assert.Equal(t, "*Только Owner и бот-админы могут открывать панель.*", tg.replies[0])
		assert.Equal(t, 0, manager.Len(), "отказ не должен создавать запись в хранилище")
	})

	t.Run("private chat is ignored", func(t *testing.T) {
		p, tg, _ := newTestPanel(t, true)

		msg := panelMessage(42, "/admin")
		msg.Chat.Type = "private"
		p.Open(msg)

		assert.Empty(t, tg.boards)
		assert.Empty(t, tg.replies)
	})
}

func TestHandleCallback(t *testing.T) {
	t.Run("foreign callback data is ignored", func(t *testing.T) {
		p, tg, _ := newTestPanel(t, true)

		p.HandleCallback(adminCallback("poll:vote:1"))

		assert.Empty(t, tg.edits)
		assert.Empty(t, tg.answers)
	})

	t.Run("without rights only the toast is sent", func(t *testing.T) {
		p, tg, _ := newTestPanel(t, false)

		p.HandleCallback(adminCallback("adm:toggle:enabled"))

		assert.Empty(t, tg.edits)
		require.Len(t, tg.answers, 1)
		assert.Equal(t, "Нет прав", tg.answers[0])
	})

	t.Run("unknown key is acknowledged", func(t *testing.T) {
		p, tg, _ := newTestPanel(t, true)

		p.HandleCallback(adminCallback("adm:nope"))

		assert.Empty(t, tg.edits)
		assert.Equal(t, []string{""}, tg.answers)
	})

	t.Run("menu redraws in place", func(t *testing.T) {
		p, tg, _ := newTestPanel(t, true)

		p.HandleCallback(adminCallback("adm:menu"))

		require.Len(t, tg.edits, 1)
		assert.Contains(t, tg.edits[0], "Панель управления ботом")
		assert.Equal(t, []int{500}, tg.editIDs)
	})
}

func TestHandleCallback_Mutations(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(t *testing.T, cs settings.ChatSettings)
	}{
		{
			name: "toggle enabled",
			data: "adm:toggle:enabled",
			check: func(t *testing.T, cs settings.ChatSettings) {
				assert.False(t, cs.Enabled)
			},
		},
		{
			name: "toggle mode",
			data: "adm:toggle:mode",
			check: func(t *testing.T, cs settings.ChatSettings) {
				assert.Equal(t, settings.ModeAll, cs.Mode)
			},
		},
		{
			name: "toggle link protection",
			data: "adm:toggle:links",
			check: func(t *testing.T, cs settings.ChatSettings) {
				assert.False(t, cs.LinkProtection)
			},
		},
		{
			name: "cycle words action",
			data: "adm:action:words",
			check: func(t *testing.T, cs settings.ChatSettings) {
				assert.Equal(t, punishment.Ban, cs.ActionWords)
			},
		},
		{
			name: "cycle links action",
			data: "adm:action:links",
			check: func(t *testing.T, cs settings.ChatSettings) {
				assert.Equal(t, punishment.Ban, cs.ActionLinks)
			},
		},
		{
			name: "cycle words mute duration",
			data: "adm:dur:words",
			check: func(t *testing.T, cs settings.ChatSettings) {
				assert.Equal(t, 1800, cs.MuteSecondsWords)
			},
		},
		{
			name: "cycle links mute duration",
			data: "adm:dur:links",
			check: func(t *testing.T, cs settings.ChatSettings) {
				assert.Equal(t, 1800, cs.MuteSecondsLinks)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, tg, manager := newTestPanel(t, true)

			p.HandleCallback(adminCallback(tt.data))

			cs, ok := manager.Get(-100123)
			require.True(t, ok)
			tt.check(t, cs)
			require.NotEmpty(t, tg.edits, "панель должна перерисоваться")
		})
	}
}

func TestPromptFlow_Words(t *testing.T) {
	t.Run("add stores the word lowercased", func(t *testing.T) {
		p, tg, manager := newTestPanel(t, true)

		p.HandleCallback(adminCallback("adm:words:add"))
		require.NotEmpty(t, tg.edits)
		assert.Contains(t, tg.edits[len(tg.edits)-1], "Отправьте слово")

		require.True(t, p.ConsumeInput(panelMessage(42, "  КАЗИНО  ")))

		cs, _ := manager.Get(-100123)
		assert.Equal(t, []string{"казино"}, cs.BannedWords)
		assert.Contains(t, tg.edits[len(tg.edits)-1], "казино")
		assert.Equal(t, []int{500, 500}, tg.editIDs, "перерисовывается то же сообщение панели")
	})

	t.Run("duplicate is not stored twice", func(t *testing.T) {
		p, _, manager := newTestPanel(t, true)

		p.HandleCallback(adminCallback("adm:words:add"))
		require.True(t, p.ConsumeInput(panelMessage(42, "казино")))
		p.HandleCallback(adminCallback("adm:words:add"))
		require.True(t, p.ConsumeInput(panelMessage(42, "Казино")))

		cs, _ := manager.Get(-100123)
		assert.Equal(t, []string{"казино"}, cs.BannedWords)
	})

	t.Run("delete matches case-insensitively", func(t *testing.T) {
		p, _, manager := newTestPanel(t, true)
		require.NoError(t, manager.Update(-100123, func(cs *settings.ChatSettings) {
			cs.BannedWords = []string{"казино", "ставки"}
		}))

		p.HandleCallback(adminCallback("adm:words:del"))
		require.True(t, p.ConsumeInput(panelMessage(42, "КАЗИНО")))

		cs, _ := manager.Get(-100123)
		assert.Equal(t, []string{"ставки"}, cs.BannedWords)
	})

	t.Run("message from another user is not the answer", func(t *testing.T) {
		p, _, manager := newTestPanel(t, true)

		p.HandleCallback(adminCallback("adm:words:add"))
		assert.False(t, p.ConsumeInput(panelMessage(99, "казино")))

		cs, _ := manager.Get(-100123)
		assert.Empty(t, cs.BannedWords)

		// запрос остаётся активным для того, кто его открыл
		assert.True(t, p.ConsumeInput(panelMessage(42, "казино")))
	})

	t.Run("navigation cancels the prompt", func(t *testing.T) {
		p, _, _ := newTestPanel(t, true)

		p.HandleCallback(adminCallback("adm:words:add"))
		p.HandleCallback(adminCallback("adm:menu"))

		assert.False(t, p.ConsumeInput(panelMessage(42, "казино")))
	})

	t.Run("no prompt means no consumption", func(t *testing.T) {
		p, _, _ := newTestPanel(t, true)

		assert.False(t, p.ConsumeInput(panelMessage(42, "казино")))
	})
}

func TestPromptFlow_Admins(t *testing.T) {
	t.Run("add parses a numeric id", func(t *testing.T) {
		p, _, manager := newTestPanel(t, true)

		p.HandleCallback(adminCallback("adm:admins:add"))
		require.True(t, p.ConsumeInput(panelMessage(42, "123456")))

		cs, _ := manager.Get(-100123)
		assert.Equal(t, []int64{123456}, cs.BotAdmins)
	})

	t.Run("leading at sign is tolerated", func(t *testing.T) {
		p, _, manager := newTestPanel(t, true)

		p.HandleCallback(adminCallback("adm:admins:add"))
		require.True(t, p.ConsumeInput(panelMessage(42, "@777")))

		cs, _ := manager.Get(-100123)
		assert.Equal(t, []int64{777}, cs.BotAdmins)
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		p, tg, manager := newTestPanel(t, true)

		p.HandleCallback(adminCallback("adm:admins:add"))
		require.True(t, p.ConsumeInput(panelMessage(42, "vasya")))

		cs, _ := manager.Get(-100123)
		assert.Empty(t, cs.BotAdmins)
		require.NotEmpty(t, tg.replies)
		assert.Equal(t, "Некорректный ID пользователя.", tg.replies[len(tg.replies)-1])
	})

	t.Run("delete removes the id", func(t *testing.T) {
		p, _, manager := newTestPanel(t, true)
		require.NoError(t, manager.Update(-100123, func(cs *settings.ChatSettings) {
			cs.BotAdmins = []int64{111, 222}
		}))

		p.HandleCallback(adminCallback("adm:admins:del"))
		require.True(t, p.ConsumeInput(panelMessage(42, "111")))

		cs, _ := manager.Get(-100123)
		assert.Equal(t, []int64{222}, cs.BotAdmins)
	})
}
