package layout

import (
	"github.com/awesome-gocui/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/kcaldas/termfolio/cmd/tui/types"
)

// Panel name constants
const (
	PanelOutput       = "output"
	PanelInput        = "input"
	PanelStatus       = "status"
	PanelStatusLeft   = "status-left"
	PanelStatusCenter = "status-center"
	PanelStatusRight  = "status-right"
	PanelDialog       = "project"
)

type LayoutConfig struct {
	InputHeight      int
	StatusRightWidth int
	// DialogRatio is the share of the screen the project dialog covers
	DialogRatio float64
}

func NewDefaultLayoutConfig() *LayoutConfig {
	return &LayoutConfig{
		InputHeight:      3,
		StatusRightWidth: 12,
		DialogRatio:      0.8,
	}
}

type LayoutManager struct {
	config *LayoutConfig
	gui    *gocui.Gui
	panels map[string]*Panel

	dialog     *Panel
	lastWidth  int
	lastHeight int
	onResize   func()
}

func NewLayoutManager(gui *gocui.Gui, config *LayoutConfig) *LayoutManager {
	return &LayoutManager{
		config: config,
		gui:    gui,
		panels: make(map[string]*Panel),
	}
}

func (lm *LayoutManager) SetComponent(panelName string, component types.Component) {
	lm.panels[panelName] = NewPanel(panelName, component, lm.gui)
}

func (lm *LayoutManager) GetPanel(panelName string) *Panel {
	return lm.panels[panelName]
}

// OnResize registers fn to run after the terminal size changed
func (lm *LayoutManager) OnResize(fn func()) {
	lm.onResize = fn
}

// ShowDialog places component above the other panels until HideDialog
func (lm *LayoutManager) ShowDialog(component types.Component) {
	lm.dialog = NewPanel(PanelDialog, component, lm.gui)
}

func (lm *LayoutManager) HideDialog() error {
	if lm.dialog == nil {
		return nil
	}
	name := lm.dialog.Component.GetViewName()
	lm.dialog = nil
	lm.gui.DeleteKeybindings(name)
	if err := lm.gui.DeleteView(name); err != nil && err != gocui.ErrUnknownView {
		return err
	}
	return nil
}

func (lm *LayoutManager) DialogVisible() bool {
	return lm.dialog != nil
}

func (lm *LayoutManager) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	sizeChanged := lm.lastWidth != maxX || lm.lastHeight != maxY
	lm.lastWidth, lm.lastHeight = maxX, maxY

	dims := boxlayout.ArrangeWindows(lm.BuildLayoutTree(), 0, 0, maxX, maxY)
	for name, d := range dims {
		if panel := lm.panels[name]; panel != nil {
			if err := panel.CreateOrUpdateView(d); err != nil {
				return err
			}
		}
	}

	if lm.dialog != nil {
		if err := lm.dialog.CreateOrUpdateView(DialogDimensions(maxX, maxY, lm.config.DialogRatio)); err != nil {
			return err
		}
		if _, err := g.SetViewOnTop(lm.dialog.Component.GetViewName()); err != nil {
			return err
		}
	}

	if sizeChanged && lm.onResize != nil {
		lm.onResize()
	}
	return nil
}

// BuildLayoutTree stacks output, input and the three-part status bar
func (lm *LayoutManager) BuildLayoutTree() *boxlayout.Box {
	return &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{Window: PanelOutput, Weight: 1},
			{Window: PanelInput, Size: lm.config.InputHeight},
			{
				Direction: boxlayout.COLUMN,
				Size:      1,
				Children: []*boxlayout.Box{
					{Window: PanelStatusLeft, Weight: 2},
					{Window: PanelStatusCenter, Weight: 1},
					{Window: PanelStatusRight, Size: lm.config.StatusRightWidth},
				},
			},
		},
	}
}

// DialogDimensions centers a box covering ratio of the screen
func DialogDimensions(maxX, maxY int, ratio float64) boxlayout.Dimensions {
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}
	w := int(float64(maxX) * ratio)
	h := int(float64(maxY) * ratio)
	x0 := (maxX - w) / 2
	y0 := (maxY - h) / 2
	return boxlayout.Dimensions{X0: x0, Y0: y0, X1: x0 + w, Y1: y0 + h - 1}
}
