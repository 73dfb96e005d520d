package ports

import (
	"time"

	"tgguard/internal/app/domain"
	"tgguard/internal/app/domain/punishment"
)

type CheckerPort interface {
	Check(msg *domain.Message) *CheckerAction
}

type ViolationCategory string

const (
	CategoryWords ViolationCategory = "words"
	CategoryLinks ViolationCategory = "links"
)

type CheckerAction struct {
	Type     punishment.Action
	Category ViolationCategory
	Reason   string
	Matched  string
	Duration time.Duration
}
