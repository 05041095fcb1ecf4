package component

import (
	"sync"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/cmd/tui/presentation"
	"github.com/kcaldas/termfolio/cmd/tui/types"
)

type BaseComponent struct {
	key      string
	viewName string
	view     *gocui.View
	gui      types.Gui

	title            string
	windowProperties types.WindowProperties

	// Protects title
	mu sync.RWMutex
}

func NewBaseComponent(key, viewName string, gui types.Gui) *BaseComponent {
	return &BaseComponent{
		key:      key,
		viewName: viewName,
		gui:      gui,
		windowProperties: types.WindowProperties{
			Focusable: true,
			Wrap:      true,
			Frame:     true,
		},
	}
}

func (c *BaseComponent) GetKey() string {
	return c.key
}

func (c *BaseComponent) GetViewName() string {
	return c.viewName
}

func (c *BaseComponent) GetView() *gocui.View {
	if c.view == nil && c.gui != nil && c.gui.GetGui() != nil {
		c.view, _ = c.gui.GetGui().View(c.viewName)
	}
	return c.view
}

func (c *BaseComponent) SetView(v *gocui.View) {
	c.view = v
}

func (c *BaseComponent) GetKeybindings() []*types.KeyBinding {
	return []*types.KeyBinding{}
}

func (c *BaseComponent) Render() error {
	c.applyThemeColors()
	return nil
}

func (c *BaseComponent) GetWindowProperties() types.WindowProperties {
	return c.windowProperties
}

func (c *BaseComponent) SetWindowProperties(props types.WindowProperties) {
	c.windowProperties = props
}

func (c *BaseComponent) GetTitle() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.title
}

func (c *BaseComponent) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
}

// Theme returns the palette of the current session theme
func (c *BaseComponent) Theme() *presentation.Theme {
	return presentation.ThemeFor(c.gui.CurrentTheme())
}

// applyThemeColors sets frame, title and text colors from the current palette
func (c *BaseComponent) applyThemeColors() {
	view := c.GetView()
	if view == nil {
		return
	}

	theme := c.Theme()
	view.FgColor = presentation.GetThemeColor(theme.Text)
	if !c.windowProperties.Frame {
		return
	}

	border := theme.BorderDefault
	if c.gui.GetGui() != nil && c.gui.GetGui().CurrentView() == view {
		border = theme.BorderFocused
	}
	view.FrameColor = presentation.GetThemeColor(border)
	view.TitleColor = presentation.GetThemeColor(theme.TitleDefault)
}
