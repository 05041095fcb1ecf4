package component

import (
	"fmt"
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/cmd/tui/presentation"
	"github.com/kcaldas/termfolio/cmd/tui/types"
	"github.com/kcaldas/termfolio/pkg/session"
)

// OutputComponent shows the session output log
type OutputComponent struct {
	*BaseComponent
	sess *session.Session

	// follow keeps the view pinned to the newest output until the user scrolls up
	follow bool
}

func NewOutputComponent(gui types.Gui, sess *session.Session) *OutputComponent {
	c := &OutputComponent{
		BaseComponent: NewBaseComponent("output", "output", gui),
		sess:          sess,
		follow:        true,
	}

	c.SetWindowProperties(types.WindowProperties{
		Focusable: false,
		Wrap:      true,
		Frame:     gui.GetConfig().ShowBorders,
	})
	if gui.GetConfig().ShowBorders {
		c.SetTitle(" " + sess.Prompt() + " ")
	}

	return c
}

func (c *OutputComponent) Render() error {
	c.BaseComponent.Render()

	v := c.GetView()
	if v == nil {
		return nil
	}

	formatter := presentation.NewEventFormatter(c.Theme(), c.sess.Prompt())

	v.Clear()
	fmt.Fprint(v, presentation.Colorize(c.Theme().Muted, c.sess.Banner())+"\n\n")
	fmt.Fprint(v, formatter.FormatEntries(c.sess.Log().Entries()))

	if c.follow {
		return c.ScrollToBottom()
	}
	return nil
}

func (c *OutputComponent) PageUp() error {
	v := c.GetView()
	if v == nil {
		return nil
	}
	ox, oy := v.Origin()
	_, height := v.Size()
	newY := oy - height
	if newY < 0 {
		newY = 0
	}
	c.follow = false
	return v.SetOrigin(ox, newY)
}

func (c *OutputComponent) PageDown() error {
	v := c.GetView()
	if v == nil {
		return nil
	}
	ox, oy := v.Origin()
	_, height := v.Size()
	bottom := c.bottomOrigin(v)
	newY := oy + height
	if newY >= bottom {
		c.follow = true
		newY = bottom
	}
	return v.SetOrigin(ox, newY)
}

// ScrollToBottom scrolls the view to the bottom using the view's buffer
func (c *OutputComponent) ScrollToBottom() error {
	v := c.GetView()
	if v == nil {
		return nil
	}
	c.follow = true
	return v.SetOrigin(0, c.bottomOrigin(v))
}

func (c *OutputComponent) bottomOrigin(v *gocui.View) int {
	lines := strings.Count(v.ViewBuffer(), "\n")
	_, height := v.Size()
	target := lines - height + 1
	if target < 0 {
		return 0
	}
	return target
}
