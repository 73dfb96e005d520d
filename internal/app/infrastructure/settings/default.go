package settings

import "tgguard/internal/app/domain/punishment"

// Default is the configuration every chat starts with: moderation on, only
// non-admins checked, ten-minute mutes for both categories.
func Default() *ChatSettings {
	return &ChatSettings{
		BannedWords:      []string{},
		AllowedLinks:     []string{},
		LinkProtection:   true,
		ActionWords:      punishment.Mute,
		MuteSecondsWords: 600,
		ActionLinks:      punishment.Mute,
		MuteSecondsLinks: 600,
		Enabled:          true,
		Mode:             ModeAdmins,
		BotAdmins:        []int64{},
	}
}
