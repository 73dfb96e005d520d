package ports

import "tgguard/internal/app/domain"

type UpdateHandler interface {
	HandleMessage(msg *domain.Message)
	HandleCallback(cb *domain.Callback)
}

type PanelPort interface {
	Open(msg *domain.Message)
	HandleCallback(cb *domain.Callback)
	ConsumeInput(msg *domain.Message) bool
}
