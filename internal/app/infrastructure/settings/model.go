package settings

import (
	"slices"

	"tgguard/internal/app/domain/punishment"
)

const (
	// ModeAdmins exempts chat administrators from checks, ModeAll moderates
	// everyone.
	ModeAdmins = "admins"
	ModeAll    = "all"
)

// ChatSettings is one chat's moderation configuration. Field names match the
// persisted JSON, chats are keyed by their decimal chat ID.
type ChatSettings struct {
	BannedWords      []string          `json:"banned_words"`
	AllowedLinks     []string          `json:"allowed_links"`
	LinkProtection   bool              `json:"link_protection"`
	ActionWords      punishment.Action `json:"action_words"`
	MuteSecondsWords int               `json:"mute_seconds_words"`
	ActionLinks      punishment.Action `json:"action_links"`
	MuteSecondsLinks int               `json:"mute_seconds_links"`
	Enabled          bool              `json:"enabled"`
	Mode             string            `json:"mode"`
	BotAdmins        []int64           `json:"bot_admins"`
}

// Clone deep-copies the settings so snapshots never share slices with the
// stored entry.
func (s *ChatSettings) Clone() *ChatSettings {
	c := *s
	c.BannedWords = slices.Clone(s.BannedWords)
	c.AllowedLinks = slices.Clone(s.AllowedLinks)
	c.BotAdmins = slices.Clone(s.BotAdmins)
	return &c
}
