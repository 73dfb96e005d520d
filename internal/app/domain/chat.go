package domain

import "strings"

type Chat struct {
	ID    int64
	Type  string
	Title string
}

// IsGroup reports whether moderation applies to the chat: Telegram
// distinguishes basic groups from supergroups, the bot treats both the same.
func (c *Chat) IsGroup() bool {
	return c.Type == "group" || c.Type == "supergroup"
}

type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// Mention renders the user the way notifications address them: the public
// @handle when one exists, the visible name otherwise.
func (u *User) Mention() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type Message struct {
	ID      int
	Chat    Chat
	From    User
	Text    string
	Caption string
	Command string
}

// BodyText is the moderated text of a message: plain text when present,
// the media caption otherwise.
func (m *Message) BodyText() string {
	if m.Text != "" {
		return m.Text
	}
	return m.Caption
}

type Callback struct {
	ID        string
	Data      string
	From      User
	Chat      Chat
	MessageID int
}
