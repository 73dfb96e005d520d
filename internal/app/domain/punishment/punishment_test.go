package punishment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Action
		wantOk bool
	}{
		{name: "mute", input: "mute", want: Mute, wantOk: true},
		{name: "ban", input: "ban", want: Ban, wantOk: true},
		{name: "warn", input: "warn", want: Warn, wantOk: true},
		{name: "none", input: "none", want: None, wantOk: true},
		{name: "unknown", input: "timeout", wantOk: false},
		{name: "empty", input: "", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)

			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name string
		cur  Action
		want Action
	}{
		{name: "mute_to_ban", cur: Mute, want: Ban},
		{name: "ban_to_warn", cur: Ban, want: Warn},
		{name: "warn_to_none", cur: Warn, want: None},
		{name: "none_back_to_mute", cur: None, want: Mute},
		{name: "unknown_restarts", cur: Action("timeout"), want: Mute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.cur))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "ten_minutes", d: 600 * time.Second, want: "10 минут"},
		{name: "under_a_minute", d: 59 * time.Second, want: "59 секунд"},
		{name: "exactly_a_minute", d: 60 * time.Second, want: "1 минут"},
		{name: "partial_minutes_floor", d: 90 * time.Second, want: "1 минут"},
		{name: "a_day", d: 86400 * time.Second, want: "1440 минут"},
		{name: "zero", d: 0, want: "0 секунд"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}
