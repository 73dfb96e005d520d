package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"tgguard/internal/app/adapters/access"
	router "tgguard/internal/app/adapters/http"
	"tgguard/internal/app/adapters/message"
	"tgguard/internal/app/adapters/message/checker"
	"tgguard/internal/app/adapters/message/panel"
	"tgguard/internal/app/adapters/metrics"
	"tgguard/internal/app/adapters/telegram"
	"tgguard/internal/app/infrastructure/env"
	"tgguard/internal/app/infrastructure/settings"
	"tgguard/pkg/logger"
)

func New() error {
	log := logger.New()

	e, err := env.New()
	if err != nil {
		log.Fatal("Error loading environment", err)
	}

	log.SetLogLevel(e.LogLevel)
	gin.SetMode(e.GinMode)

	prometheus.MustRegister(metrics.MessageProcessingTime)

	manager, err := settings.New(log, e.DataFile)
	if err != nil {
		log.Fatal("Error loading settings", err)
	}
	metrics.ManagedChats.Set(float64(manager.Len()))

	tg, err := telegram.New(logger.NewPrefixedLogger(log, "telegram"), e.BotToken)
	if err != nil {
		log.Fatal("Error connecting to Telegram", err)
	}

	acc := access.New(log, e.OwnerID, manager, tg)
	pan := panel.New(logger.NewPrefixedLogger(log, "panel"), manager, acc, tg)
	chk := checker.New(logger.NewPrefixedLogger(log, "checker"), manager, acc)
	msg := message.New(log, manager, tg, pan, chk)

	go tg.Listen(msg)
	log.Info(fmt.Sprintf("[%s] Chatbot started", tg.Username()))

	return router.NewRouter(log, e, manager).Run()
}
