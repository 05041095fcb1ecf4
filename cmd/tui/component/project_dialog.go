package component

import (
	"fmt"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/cmd/tui/presentation"
	"github.com/kcaldas/termfolio/cmd/tui/types"
	"github.com/kcaldas/termfolio/pkg/catalog"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/session"
	"github.com/kcaldas/termfolio/pkg/terminal"
)

// ProjectDialogComponent shows one project's detail as rendered markdown
type ProjectDialogComponent struct {
	*BaseComponent
	project catalog.Project
	onClose func() error
}

func NewProjectDialogComponent(gui types.Gui, project catalog.Project, onClose func() error) *ProjectDialogComponent {
	c := &ProjectDialogComponent{
		BaseComponent: NewBaseComponent("project", "project", gui),
		project:       project,
		onClose:       onClose,
	}
	c.SetTitle(fmt.Sprintf(" %s · Esc to close ", project.Title))
	c.SetWindowProperties(types.WindowProperties{
		Focusable: true,
		Wrap:      true,
		Frame:     true,
	})
	return c
}

func (c *ProjectDialogComponent) GetKeybindings() []*types.KeyBinding {
	return []*types.KeyBinding{
		{View: c.viewName, Key: gocui.KeyEsc, Handler: c.close},
		{View: c.viewName, Key: 'q', Handler: c.close},
		{View: c.viewName, Key: gocui.KeyArrowUp, Handler: c.scroll(-1)},
		{View: c.viewName, Key: gocui.KeyArrowDown, Handler: c.scroll(1)},
	}
}

func (c *ProjectDialogComponent) Render() error {
	c.BaseComponent.Render()

	v := c.GetView()
	if v == nil {
		return nil
	}

	width, _ := v.Size()
	style := c.Theme().GlamourStyleFor(c.gui.GetConfig().GlamourTheme)
	rendered, err := presentation.RenderMarkdown(c.project.Markdown(), style, width)
	if err != nil {
		logging.Warn("markdown rendering failed", "project", c.project.ID, "error", err)
		rendered = c.project.Markdown()
	}

	v.Clear()
	fmt.Fprint(v, rendered)
	return nil
}

func (c *ProjectDialogComponent) close(g *gocui.Gui, v *gocui.View) error {
	if c.onClose == nil {
		return nil
	}
	return c.onClose()
}

func (c *ProjectDialogComponent) scroll(delta int) func(*gocui.Gui, *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		ox, oy := v.Origin()
		if oy+delta < 0 {
			return nil
		}
		return v.SetOrigin(ox, oy+delta)
	}
}

// LatestRefs returns the project ids of the most recent structured block
func LatestRefs(entries []session.Entry) []string {
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i].Event
		if e.Kind == terminal.EventBlock && e.Structured && len(e.Refs) > 0 {
			return e.Refs
		}
	}
	return nil
}

// NextRef picks the ref after current, wrapping around. An unknown current starts at the first.
func NextRef(refs []string, current string) (string, bool) {
	if len(refs) == 0 {
		return "", false
	}
	for i, ref := range refs {
		if ref == current {
			return refs[(i+1)%len(refs)], true
		}
	}
	return refs[0], true
}
