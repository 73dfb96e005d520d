package punishment

import (
	"fmt"
	"time"
)

type Action string

const (
	Warn Action = "warn"
	Mute Action = "mute"
	Ban  Action = "ban"
	None Action = "none"
)

// cycle is the order the panel steps through when an action button is pressed.
var cycle = []Action{Mute, Ban, Warn, None}

func Parse(s string) (Action, bool) {
	switch Action(s) {
	case Warn, Mute, Ban, None:
		return Action(s), true
	}
	return "", false
}

func (a Action) Valid() bool {
	_, ok := Parse(string(a))
	return ok
}

// Next returns the action following a in the panel cycle. Unknown values
// restart the cycle.
func Next(a Action) Action {
	for i, c := range cycle {
		if c == a {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// FormatDuration renders a mute duration for notifications: whole minutes
// when at least a minute, seconds otherwise.
func FormatDuration(d time.Duration) string {
	minutes := int(d.Seconds()) / 60
	if minutes >= 1 {
		return fmt.Sprintf("%d минут", minutes)
	}
	return fmt.Sprintf("%d секунд", int(d.Seconds()))
}
