package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kcaldas/termfolio/pkg/events"
	"github.com/kcaldas/termfolio/pkg/preferences"
	"github.com/kcaldas/termfolio/pkg/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Event.Text)
	}
	return out
}

func TestSession_SubmitCommand(t *testing.T) {
	f := newFixture(t)

	out := f.session.SubmitCommand("whoami")
	assert.Equal(t, []terminal.Event{
		terminal.Echo("whoami"),
		terminal.Line("bos - Linux Enthusiast & Web Learner"),
	}, out)
	assert.Equal(t, []string{"whoami", "bos - Linux Enthusiast & Web Learner"}, texts(f.session.Log().Entries()))

	state := f.session.State()
	assert.Equal(t, []string{"whoami", "help", "ls -la", "whoami"}, state.History)
	assert.Equal(t, 4, state.Cursor)
	assert.Equal(t, "", state.Draft)
}

func TestSession_EmptySubmissionDoesNothing(t *testing.T) {
	f := newFixture(t)

	for _, line := range []string{"", "   "} {
		assert.Empty(t, f.session.SubmitCommand(line))
	}
	assert.Empty(t, f.session.Log().Entries())
	assert.Len(t, f.session.State().History, 3)
	assert.Empty(t, f.publisher.byTopic(events.TopicCommandExecuted))
}

func TestSession_UnknownCommandStillRecorded(t *testing.T) {
	f := newFixture(t)

	out := f.session.SubmitCommand("Hack The Planet")
	require.Len(t, out, 2)
	assert.Equal(t, terminal.EventError, out[1].Kind)
	assert.Equal(t, "Hack The Planet", f.session.State().History[3])

	assert.Equal(t, []interface{}{
		events.CommandExecutedEvent{SessionID: "test-session", Command: "unknown", Known: false},
	}, f.publisher.byTopic(events.TopicCommandExecuted))
}

func TestSession_CatScenario(t *testing.T) {
	f := newFixture(t)

	out := f.session.SubmitCommand("cat about.txt")
	require.Len(t, out, 2)
	assert.Equal(t, terminal.EventBlock, out[1].Kind)
	assert.Contains(t, out[1].Text, "ABOUT ME")

	out = f.session.SubmitCommand("cat doesnotexist")
	assert.Equal(t, []terminal.Event{
		terminal.Echo("cat doesnotexist"),
		terminal.Error("cat: doesnotexist: No such file or directory"),
	}, out)
}

func TestSession_ClearEmptiesLogButNotHistory(t *testing.T) {
	f := newFixture(t)
	f.session.SubmitCommand("ls")
	f.session.SubmitCommand("clear")

	assert.Empty(t, f.session.Log().Entries())
	assert.Equal(t, []string{"whoami", "help", "ls -la", "ls", "clear"}, f.session.State().History)

	f.session.SubmitCommand("whoami")
	assert.Equal(t, []string{"whoami", "bos - Linux Enthusiast & Web Learner"}, texts(f.session.Log().Entries()))
}

func TestSession_OverlappingPings(t *testing.T) {
	f := newFixture(t)

	f.session.SubmitCommand("ping host1")
	f.clock.Advance(100 * time.Millisecond)
	f.session.SubmitCommand("ping host2")
	assert.Equal(t, 6, f.session.PendingOutput())

	log := f.session.Log()
	immediate := log.Len()
	require.Equal(t, 4, immediate)

	f.clock.Advance(2 * time.Second)

	timed := log.Entries()[immediate:]
	var got []string
	for _, e := range timed {
		got = append(got, strings.TrimSpace(e.Event.Text))
	}
	assert.Equal(t, []string{
		"64 bytes from host1 (192.168.1.1): icmp_seq=1 ttl=64 time=0.123 ms",
		"64 bytes from host2 (192.168.1.1): icmp_seq=1 ttl=64 time=0.123 ms",
		"64 bytes from host1 (192.168.1.1): icmp_seq=2 ttl=64 time=0.456 ms",
		"64 bytes from host2 (192.168.1.1): icmp_seq=2 ttl=64 time=0.456 ms",
		"--- host1 ping statistics ---\n2 packets transmitted, 2 received, 0% packet loss",
		"--- host2 ping statistics ---\n2 packets transmitted, 2 received, 0% packet loss",
	}, got)

	offsets := make([]time.Duration, 0, len(timed))
	for _, e := range timed {
		offsets = append(offsets, e.At.Sub(testStart))
	}
	assert.Equal(t, []time.Duration{
		300 * time.Millisecond, 400 * time.Millisecond,
		600 * time.Millisecond, 700 * time.Millisecond,
		900 * time.Millisecond, 1000 * time.Millisecond,
	}, offsets)
	assert.Equal(t, 0, f.session.PendingOutput())
}

func TestSession_ClearDoesNotCancelPing(t *testing.T) {
	f := newFixture(t)

	f.session.SubmitCommand("ping bos.dev")
	f.clock.Advance(400 * time.Millisecond)
	f.session.SubmitCommand("clear")
	f.session.SubmitCommand("whoami")
	f.clock.Advance(time.Second)

	got := texts(f.session.Log().Entries())
	require.Len(t, got, 4)
	assert.Equal(t, "whoami", got[0])
	assert.Contains(t, got[2], "icmp_seq=2")
	assert.Contains(t, got[3], "ping statistics")
}

func TestSession_ThemeScenarios(t *testing.T) {
	f := newFixture(t)

	out := f.session.SubmitCommand("theme --light")
	assert.Len(t, out, 2)
	out = f.session.SubmitCommand("theme --toggle")
	assert.Len(t, out, 2)
	assert.Equal(t, terminal.EventLine, out[1].Kind)

	assert.Equal(t, preferences.ThemeDark, f.session.Theme())
	saved, err := f.store.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, preferences.ThemeDark, saved)

	out = f.session.SubmitCommand("theme --bogus")
	require.Len(t, out, 2)
	assert.Equal(t, terminal.EventError, out[1].Kind)
	assert.Equal(t, preferences.ThemeDark, f.session.Theme())

	assert.Equal(t, []interface{}{
		events.ThemeChangedEvent{SessionID: "test-session", Theme: "light"},
		events.ThemeChangedEvent{SessionID: "test-session", Theme: "dark"},
	}, f.publisher.byTopic(events.TopicThemeChanged))
}

func TestSession_ToggleTheme(t *testing.T) {
	f := newFixture(t)

	event := f.session.ToggleTheme()
	assert.Equal(t, terminal.Line("Switching to light theme...\n[ OK ] Theme changed successfully"), event)
	assert.Equal(t, preferences.ThemeLight, f.session.Theme())
	assert.Len(t, f.session.State().History, 3, "toggle does not touch history")
	assert.Equal(t, []terminal.Event{event}, []terminal.Event{f.session.Log().Entries()[0].Event})
}

func TestSession_Navigation(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "ls -la", f.session.RecallPrevious())
	assert.Equal(t, "help", f.session.RecallPrevious())
	assert.Equal(t, "ls -la", f.session.RecallNext())
	assert.Equal(t, "", f.session.RecallNext())

	f.session.SetDraft("ne")
	assert.Equal(t, "neofetch", f.session.Autocomplete())
	assert.Equal(t, "clear", f.session.Complete("cl"))

	out := f.session.Submit()
	assert.Equal(t, []terminal.Event{terminal.Echo("clear"), terminal.ClearAll()}, out)
}

func TestSession_ProjectDetailIsIndependentOfTree(t *testing.T) {
	f := newFixture(t)

	p, ok := f.session.ProjectDetail("web-lan")
	require.True(t, ok)
	assert.Equal(t, 60, p.Progress)

	_, ok = f.session.ProjectDetail("nope")
	assert.False(t, ok)
}

func TestSession_ReadsStoredTheme(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.SetTheme(preferences.ThemeLight))

	s := New(Options{ID: "other", Catalog: f.session.interpreter.Catalog(), Store: f.store, Clock: f.clock})
	defer s.Close()
	assert.Equal(t, preferences.ThemeLight, s.Theme())
	assert.Equal(t, "bos@manjaro:~$", s.Prompt())
}

func TestSession_CloseDropsTimedOutput(t *testing.T) {
	f := newFixture(t)

	f.session.SubmitCommand("ping bos.dev")
	f.session.Close()
	f.clock.Advance(time.Second)

	assert.Len(t, f.session.Log().Entries(), 2)
	require.NoError(t, f.session.Wait(context.Background()))

	assert.Empty(t, f.session.SubmitCommand("ping again")[2:])
	assert.Equal(t, 0, f.session.PendingOutput())
}

func TestSession_WaitForTimedOutput(t *testing.T) {
	f := newFixture(t)
	f.session.SubmitCommand("ping bos.dev")

	done := make(chan error, 1)
	go func() { done <- f.session.Wait(context.Background()) }()

	f.clock.Advance(time.Second)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after timed output was delivered")
	}
}
