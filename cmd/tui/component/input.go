package component

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/cmd/tui/types"
	"github.com/kcaldas/termfolio/pkg/session"
	"github.com/kcaldas/termfolio/pkg/terminal"
)

// InputComponent is the prompt line. Its buffer mirrors the session draft.
type InputComponent struct {
	*BaseComponent
	sess     *session.Session
	onSubmit func(events []terminal.Event)
}

func NewInputComponent(gui types.Gui, sess *session.Session, onSubmit func([]terminal.Event)) *InputComponent {
	c := &InputComponent{
		BaseComponent: NewBaseComponent("input", "input", gui),
		sess:          sess,
		onSubmit:      onSubmit,
	}

	c.SetTitle(" " + sess.Prompt() + " ")
	c.SetWindowProperties(types.WindowProperties{
		Focusable: true,
		Editable:  true,
		Wrap:      false,
		Frame:     true,
	})

	return c
}

func (c *InputComponent) SetView(v *gocui.View) {
	c.BaseComponent.SetView(v)
	v.Editor = NewPromptEditor(c.sess.SetDraft)
}

func (c *InputComponent) GetKeybindings() []*types.KeyBinding {
	return []*types.KeyBinding{
		{
			View:    c.viewName,
			Key:     gocui.KeyEnter,
			Handler: c.handleSubmit,
		},
		{
			View:    c.viewName,
			Key:     gocui.KeyArrowUp,
			Handler: c.navigateHistoryUp,
		},
		{
			View:    c.viewName,
			Key:     gocui.KeyArrowDown,
			Handler: c.navigateHistoryDown,
		},
		{
			View:    c.viewName,
			Key:     gocui.KeyTab,
			Handler: c.handleTab,
		},
	}
}

func (c *InputComponent) handleSubmit(g *gocui.Gui, v *gocui.View) error {
	c.sess.SetDraft(InputText(v))
	events := c.sess.Submit()
	SetInputText(v, c.sess.Draft())

	if c.onSubmit != nil {
		c.onSubmit(events)
	}
	return nil
}

func (c *InputComponent) navigateHistoryUp(g *gocui.Gui, v *gocui.View) error {
	SetInputText(v, c.sess.RecallPrevious())
	return nil
}

func (c *InputComponent) navigateHistoryDown(g *gocui.Gui, v *gocui.View) error {
	SetInputText(v, c.sess.RecallNext())
	return nil
}

func (c *InputComponent) handleTab(g *gocui.Gui, v *gocui.View) error {
	SetInputText(v, c.sess.Complete(InputText(v)))
	return nil
}

// Sync shows the session draft, used after actions that replaced it
func (c *InputComponent) Sync() {
	if v := c.GetView(); v != nil {
		SetInputText(v, c.sess.Draft())
	}
}

// InputText is the single line in v without the trailing newline gocui keeps
func InputText(v *gocui.View) string {
	return strings.TrimRight(v.Buffer(), "\r\n")
}

// SetInputText replaces the line and puts the cursor at its end
func SetInputText(v *gocui.View, text string) {
	v.Clear()
	fmt.Fprint(v, text)

	width, _ := v.Size()
	ox, cx := cursorAtEnd(text, width)
	v.SetOrigin(ox, 0)
	v.SetCursor(cx, 0)
}

// cursorAtEnd returns the origin and cursor column that show the end of text
// in a view width cells wide. Columns count runes.
func cursorAtEnd(text string, width int) (ox, cx int) {
	n := utf8.RuneCountInString(text)
	if width > 0 && n >= width {
		ox = n - width + 1
	}
	return ox, n - ox
}
