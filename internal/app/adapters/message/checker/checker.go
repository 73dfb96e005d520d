package checker

import (
	"time"

	"tgguard/internal/app/domain"
	"tgguard/internal/app/domain/rules"
	"tgguard/internal/app/infrastructure/settings"
	"tgguard/internal/app/ports"
	"tgguard/pkg/logger"
)

const (
	reasonWord = "запрещённое слово"
	reasonLink = "ссылку"
)

// Checker decides what, if anything, to do about a message. It returns nil
// when the message passes.
type Checker struct {
	log      logger.Logger
	settings *settings.Manager
	access   ports.AccessPort
}

func New(log logger.Logger, manager *settings.Manager, access ports.AccessPort) *Checker {
	return &Checker{
		log:      log,
		settings: manager,
		access:   access,
	}
}

func (c *Checker) Check(msg *domain.Message) *ports.CheckerAction {
	if !msg.Chat.IsGroup() {
		return nil
	}

	cs := c.settings.Ensure(msg.Chat.ID)
	if !cs.Enabled {
		return nil
	}

	if cs.Mode == settings.ModeAdmins && c.access.IsPlatformAdmin(msg.Chat.ID, msg.From.ID) {
		return nil
	}

	text := msg.BodyText()
	if text == "" {
		return nil
	}

	// A banned word wins over a link no matter where both sit in the text.
	if word, ok := rules.CompileWords(cs.BannedWords).Match(text); ok {
		return &ports.CheckerAction{
			Type:     cs.ActionWords,
			Category: ports.CategoryWords,
			Reason:   reasonWord,
			Matched:  word,
			Duration: time.Duration(cs.MuteSecondsWords) * time.Second,
		}
	}

	if cs.LinkProtection && rules.HasLink(text) && !rules.LinkAllowed(text, cs.AllowedLinks) {
		return &ports.CheckerAction{
			Type:     cs.ActionLinks,
			Category: ports.CategoryLinks,
			Reason:   reasonLink,
			Duration: time.Duration(cs.MuteSecondsLinks) * time.Second,
		}
	}

	return nil
}
