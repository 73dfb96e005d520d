package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"tgguard/pkg/logger"
)

// Manager owns the chat settings store: an in-memory map mirrored to one JSON
// file. All mutations run under the lock and rewrite the whole file, so
// concurrent panel edits cannot lose writes.
type Manager struct {
	log   logger.Logger
	mu    sync.RWMutex
	chats map[string]*ChatSettings
	path  string
}

func New(log logger.Logger, path string) (*Manager, error) {
	if path == "" {
		return nil, errors.New("no settings path provided")
	}

	m := &Manager{
		log:   log,
		chats: make(map[string]*ChatSettings),
		path:  path,
	}

	err := m.load()
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run: persist the empty store right away so an unwritable
		// path fails at startup, not in the middle of a chat.
		if err := m.saveLocked(); err != nil {
			return nil, fmt.Errorf("write settings: %w", err)
		}
	case err != nil:
		m.log.Warn("Settings file unreadable, starting with an empty store", slog.Any("error", err.Error()), slog.String("path", path))
	}

	return m, nil
}

// Ensure returns the chat's settings, inserting and persisting defaults on
// first reference. The returned value is a snapshot.
func (m *Manager) Ensure(chatID int64) ChatSettings {
	m.mu.Lock()
	defer m.mu.Unlock()

	cs, ok := m.chats[key(chatID)]
	if !ok {
		cs = Default()
		m.chats[key(chatID)] = cs
		if err := m.saveLocked(); err != nil {
			m.log.Error("Failed to persist settings", err, slog.Int64("chat_id", chatID))
		}
	}

	return *cs.Clone()
}

// Get returns a snapshot of existing settings without creating an entry.
func (m *Manager) Get(chatID int64) (ChatSettings, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cs, ok := m.chats[key(chatID)]
	if !ok {
		return ChatSettings{}, false
	}
	return *cs.Clone(), true
}

// Update applies modify to the chat's settings and persists the store. The
// entry is created with defaults when missing.
func (m *Manager) Update(chatID int64, modify func(cs *ChatSettings)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cs, ok := m.chats[key(chatID)]
	if !ok {
		cs = Default()
		m.chats[key(chatID)] = cs
	}

	modify(cs)
	return m.saveLocked()
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.chats)
}

func (m *Manager) Path() string {
	return m.path
}

func (m *Manager) load() error {
	raw, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("open/read settings: %w", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}

	for chat, data := range entries {
		// Fields absent from the file keep their defaults, so entries
		// written by older versions stay usable.
		cs := Default()
		if err := json.Unmarshal(data, cs); err != nil {
			m.log.Warn("Skipping malformed chat entry", slog.String("chat", chat), slog.Any("error", err.Error()))
			continue
		}

		normalize(cs)
		m.chats[chat] = cs
	}

	return nil
}

func normalize(cs *ChatSettings) {
	if cs.BannedWords == nil {
		cs.BannedWords = []string{}
	}
	if cs.AllowedLinks == nil {
		cs.AllowedLinks = []string{}
	}
	if cs.BotAdmins == nil {
		cs.BotAdmins = []int64{}
	}
	if cs.Mode != ModeAdmins && cs.Mode != ModeAll {
		cs.Mode = ModeAdmins
	}
}

func (m *Manager) saveLocked() error {
	data, err := json.MarshalIndent(m.chats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return writeAtomic(m.path, data, 0644)
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d", base, time.Now().UnixNano()))

	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
