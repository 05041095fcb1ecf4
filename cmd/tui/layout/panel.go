package layout

import (
	"github.com/awesome-gocui/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/kcaldas/termfolio/cmd/tui/types"
)

// Panel represents a single layout area that contains a component and its view
type Panel struct {
	Name       string
	Component  types.Component
	Dimensions boxlayout.Dimensions
	View       *gocui.View
	gui        *gocui.Gui
}

func NewPanel(name string, component types.Component, gui *gocui.Gui) *Panel {
	return &Panel{
		Name:      name,
		Component: component,
		gui:       gui,
	}
}

// CreateOrUpdateView creates or resizes the gocui view for this panel
func (p *Panel) CreateOrUpdateView(dims boxlayout.Dimensions) error {
	p.Dimensions = dims

	props := p.Component.GetWindowProperties()
	x0, y0, x1, y1 := viewRect(dims, props.Frame)

	view, err := p.gui.SetView(p.Component.GetViewName(), x0, y0, x1, y1, 0)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	isNewView := err == gocui.ErrUnknownView

	p.View = view
	p.configureView(props)

	if isNewView {
		p.Component.SetView(view)
		if err := p.setKeybindings(); err != nil {
			return err
		}
		return p.Component.Render()
	}
	return nil
}

// viewRect converts boxlayout dimensions to gocui view corners.
// Frameless views grow by one cell so their content starts at the box edge.
func viewRect(dims boxlayout.Dimensions, frame bool) (int, int, int, int) {
	x0, y0, x1, y1 := dims.X0, dims.Y0, dims.X1-1, dims.Y1
	if !frame {
		return x0 - 1, y0 - 1, x1 + 1, y1 + 1
	}
	return x0, y0, x1, y1
}

func (p *Panel) setKeybindings() error {
	for _, kb := range p.Component.GetKeybindings() {
		if err := p.gui.SetKeybinding(kb.View, kb.Key, kb.Mod, kb.Handler); err != nil {
			return err
		}
	}
	return nil
}

func (p *Panel) configureView(props types.WindowProperties) {
	p.View.Title = p.Component.GetTitle()
	p.View.Editable = props.Editable
	p.View.Wrap = props.Wrap
	p.View.Autoscroll = props.Autoscroll
	p.View.Frame = props.Frame
}
