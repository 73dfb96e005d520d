package handlers

import (
	"time"

	"tgguard/internal/app/infrastructure/env"
	"tgguard/internal/app/infrastructure/settings"
	"tgguard/pkg/logger"
)

type Handlers struct {
	log       logger.Logger
	env       *env.Environment
	manager   *settings.Manager
	startedAt time.Time
}

func New(log logger.Logger, e *env.Environment, manager *settings.Manager) *Handlers {
	return &Handlers{
		log:       log,
		env:       e,
		manager:   manager,
		startedAt: time.Now(),
	}
}
