package component

import (
	"testing"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/pkg/preferences"
	"github.com/kcaldas/termfolio/pkg/session"
	"github.com/kcaldas/termfolio/pkg/terminal"
	"github.com/stretchr/testify/assert"
)

func entries(events ...terminal.Event) []session.Entry {
	out := make([]session.Entry, len(events))
	for i, e := range events {
		out[i] = session.Entry{Seq: uint64(i + 1), Event: e}
	}
	return out
}

func TestLatestRefs(t *testing.T) {
	tests := []struct {
		name    string
		entries []session.Entry
		want    []string
	}{
		{name: "empty log", entries: nil, want: nil},
		{
			name:    "no structured block",
			entries: entries(terminal.Echo("whoami"), terminal.Line("bos")),
			want:    nil,
		},
		{
			name: "most recent tree wins",
			entries: entries(
				terminal.StructuredBlock("projects/", "a", "b"),
				terminal.Echo("tree"),
				terminal.StructuredBlock("projects/", "c"),
				terminal.Line("later output"),
			),
			want: []string{"c"},
		},
		{
			name: "structured block without refs is skipped",
			entries: entries(
				terminal.StructuredBlock("projects/", "a"),
				terminal.StructuredBlock("contact"),
			),
			want: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LatestRefs(tt.entries))
		})
	}
}

func TestNextRef(t *testing.T) {
	refs := []string{"web-profil", "web-lan", "linux-setup"}

	got, ok := NextRef(refs, "")
	assert.True(t, ok)
	assert.Equal(t, "web-profil", got)

	got, _ = NextRef(refs, "web-profil")
	assert.Equal(t, "web-lan", got)

	got, _ = NextRef(refs, "linux-setup")
	assert.Equal(t, "web-profil", got)

	got, _ = NextRef(refs, "gone")
	assert.Equal(t, "web-profil", got)

	_, ok = NextRef(nil, "web-lan")
	assert.False(t, ok)
}

func TestThemeIndicator(t *testing.T) {
	assert.Equal(t, "dark theme · ^T toggle", ThemeIndicator(preferences.ThemeNone))
	assert.Equal(t, "light theme · ^T toggle", ThemeIndicator(preferences.ThemeLight))
}

func TestIsUnboundSpecialKey(t *testing.T) {
	assert.True(t, IsUnboundSpecialKey(gocui.KeyEnter))
	assert.False(t, IsUnboundSpecialKey(gocui.KeyBackspace2))
}

func TestCursorAtEnd(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		wantOx int
		wantCx int
	}{
		{name: "empty", text: "", width: 20, wantOx: 0, wantCx: 0},
		{name: "ascii fits", text: "whoami", width: 20, wantOx: 0, wantCx: 6},
		{name: "multi-byte counts runes", text: "café ☕", width: 20, wantOx: 0, wantCx: 6},
		{name: "scrolls when too long", text: "neofetch", width: 5, wantOx: 4, wantCx: 4},
		{name: "multi-byte scroll", text: "ééééé", width: 3, wantOx: 3, wantCx: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ox, cx := cursorAtEnd(tt.text, tt.width)
			assert.Equal(t, tt.wantOx, ox)
			assert.Equal(t, tt.wantCx, cx)
		})
	}
}
