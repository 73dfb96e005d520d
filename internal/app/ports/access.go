package ports

type AccessLevel int

const (
	LevelNone AccessLevel = iota
	LevelPlatformAdmin
	LevelBotAdmin
	LevelOwner
)

func (l AccessLevel) String() string {
	switch l {
	case LevelOwner:
		return "owner"
	case LevelBotAdmin:
		return "bot_admin"
	case LevelPlatformAdmin:
		return "platform_admin"
	}
	return "none"
}

type AccessPort interface {
	Resolve(chatID, userID int64) AccessLevel
	IsBotAdmin(chatID, userID int64) bool
	IsPlatformAdmin(chatID, userID int64) bool
}
