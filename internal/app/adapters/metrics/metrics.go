package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesTotal - количество обработанных сообщений по чатам.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_messages_total",
			Help: "Total number of processed messages per chat",
		},
		[]string{"chat"},
	)

	// Violations - количество найденных нарушений по чатам и категориям.
	Violations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_violations_total",
			Help: "Total number of detected violations per chat and category",
		},
		[]string{"chat", "category"},
	)

	// ModerationActions - количество варнов, мутов и банов по чатам.
	ModerationActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_moderation_actions_total",
			Help: "Total number of moderation actions per chat and action",
		},
		[]string{"chat", "action"},
	)

	// APIErrors - количество проглоченных ошибок Bot API по методам.
	APIErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_api_errors_total",
			Help: "Total number of suppressed Bot API errors per method",
		},
		[]string{"method"},
	)

	// PanelMutations - количество изменений настроек через панель.
	PanelMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_panel_mutations_total",
			Help: "Total number of settings mutations made through the admin panel",
		},
		[]string{"op"},
	)

	// ManagedChats - количество чатов под управлением.
	ManagedChats = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_managed_chats",
		Help: "Number of chats with stored settings",
	})

	// MessageProcessingTime - время обработки сообщений.
	MessageProcessingTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bot_message_processing_seconds",
			Help:    "Time to process a single message",
			Buckets: prometheus.ExponentialBuckets(0.00005, 1.5, 25),
		},
	)
)
