package component

import (
	"fmt"
	"sync"
	"time"

	"github.com/kcaldas/termfolio/cmd/tui/presentation"
	"github.com/kcaldas/termfolio/cmd/tui/types"
	"github.com/kcaldas/termfolio/pkg/clock"
	"github.com/kcaldas/termfolio/pkg/preferences"
	"github.com/kcaldas/termfolio/pkg/session"
)

// StatusSectionComponent is one frameless cell of the status bar
type StatusSectionComponent struct {
	*BaseComponent
	text func() string
}

func NewStatusSectionComponent(name string, gui types.Gui, text func() string) *StatusSectionComponent {
	c := &StatusSectionComponent{
		BaseComponent: NewBaseComponent(name, name, gui),
		text:          text,
	}
	c.SetWindowProperties(types.WindowProperties{})
	return c
}

func (c *StatusSectionComponent) Render() error {
	c.BaseComponent.Render()

	v := c.GetView()
	if v == nil {
		return nil
	}
	v.Clear()
	fmt.Fprint(v, presentation.Colorize(c.Theme().Muted, c.text()))
	return nil
}

// StatusComponent owns the left, center and right cells of the status bar
type StatusComponent struct {
	Left   *StatusSectionComponent
	Center *StatusSectionComponent
	Right  *StatusSectionComponent

	gui       types.Gui
	clock     clock.Clock
	formatter *clock.Formatter

	stop     chan struct{}
	stopOnce sync.Once
}

func NewStatusComponent(gui types.Gui, sess *session.Session, c clock.Clock) *StatusComponent {
	config := gui.GetConfig()
	formatter, err := clock.NewFormatter(config.ClockFormat)
	if err != nil {
		formatter, _ = clock.NewFormatter(clock.DefaultPattern)
	}

	s := &StatusComponent{
		gui:       gui,
		clock:     c,
		formatter: formatter,
		stop:      make(chan struct{}),
	}
	s.Left = NewStatusSectionComponent("status-left", gui, sess.Prompt)
	s.Center = NewStatusSectionComponent("status-center", gui, func() string {
		return ThemeIndicator(sess.Theme())
	})
	s.Right = NewStatusSectionComponent("status-right", gui, s.clockText)
	return s
}

func (s *StatusComponent) clockText() string {
	if !s.gui.GetConfig().ShowClock {
		return ""
	}
	return s.formatter.Format(s.clock.Now())
}

// Start refreshes the clock every second until Close
func (s *StatusComponent) Start() {
	if !s.gui.GetConfig().ShowClock {
		return
	}
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.gui.PostUIUpdate(func() {
					s.Right.Render()
				})
			}
		}
	}()
}

func (s *StatusComponent) Render() error {
	for _, section := range []*StatusSectionComponent{s.Left, s.Center, s.Right} {
		if err := section.Render(); err != nil {
			return err
		}
	}
	return nil
}

func (s *StatusComponent) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// ThemeIndicator is the center status text
func ThemeIndicator(theme preferences.Theme) string {
	return fmt.Sprintf("%s theme · ^T toggle", theme.OrDefault())
}
