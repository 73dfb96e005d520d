package access

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/maypok86/otter/v2"

	"tgguard/internal/app/infrastructure/settings"
	"tgguard/internal/app/ports"
	"tgguard/pkg/logger"
)

const memberTTL = 30 * time.Second

// Access resolves who a user is to the bot: the owner, a configured
// bot-admin, a chat administrator, or nobody. Chat-administrator status comes
// from the platform and is cached for a short TTL, failed lookups count as
// not an admin and are not cached.
type Access struct {
	log      logger.Logger
	ownerID  int64
	settings *settings.Manager
	members  ports.MemberPort
	cache    *otter.Cache[string, bool]
}

func New(log logger.Logger, ownerID int64, manager *settings.Manager, members ports.MemberPort) *Access {
	return &Access{
		log:      log,
		ownerID:  ownerID,
		settings: manager,
		members:  members,
		cache: otter.Must(&otter.Options[string, bool]{
			InitialCapacity:  64,
			ExpiryCalculator: otter.ExpiryWriting[string, bool](memberTTL),
		}),
	}
}

func (a *Access) Resolve(chatID, userID int64) ports.AccessLevel {
	if userID == a.ownerID {
		return ports.LevelOwner
	}

	if cs, ok := a.settings.Get(chatID); ok && slices.Contains(cs.BotAdmins, userID) {
		return ports.LevelBotAdmin
	}

	if a.chatAdmin(chatID, userID) {
		return ports.LevelPlatformAdmin
	}

	return ports.LevelNone
}

// IsBotAdmin gates the admin panel: the owner and configured bot-admins,
// resolved without touching the platform.
func (a *Access) IsBotAdmin(chatID, userID int64) bool {
	if userID == a.ownerID {
		return true
	}

	cs, ok := a.settings.Get(chatID)
	return ok && slices.Contains(cs.BotAdmins, userID)
}

// IsPlatformAdmin gates the admins-only moderation mode. The owner passes
// outright.
func (a *Access) IsPlatformAdmin(chatID, userID int64) bool {
	if userID == a.ownerID {
		return true
	}

	return a.chatAdmin(chatID, userID)
}

func (a *Access) chatAdmin(chatID, userID int64) bool {
	key := fmt.Sprintf("%d:%d", chatID, userID)
	if isAdmin, ok := a.cache.GetIfPresent(key); ok {
		return isAdmin
	}

	isAdmin, err := a.members.MemberIsAdmin(chatID, userID)
	if err != nil {
		a.log.Warn("Failed to resolve chat member status",
			slog.Any("error", err.Error()),
			slog.Int64("chat_id", chatID),
			slog.Int64("user_id", userID),
		)
		return false
	}

	a.cache.Set(key, isAdmin)
	return isAdmin
}
