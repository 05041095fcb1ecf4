package types

import (
	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/pkg/preferences"
)

type Component interface {
	GetKey() string
	GetView() *gocui.View
	GetViewName() string
	SetView(v *gocui.View)

	GetKeybindings() []*KeyBinding

	Render() error

	GetWindowProperties() WindowProperties
	GetTitle() string
}

type Gui interface {
	GetGui() *gocui.Gui
	GetConfig() *Config
	CurrentTheme() preferences.Theme

	PostUIUpdate(func())
}
