package tui

import (
	"context"
	"sync"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/cmd/tui/component"
	"github.com/kcaldas/termfolio/cmd/tui/helpers"
	"github.com/kcaldas/termfolio/cmd/tui/layout"
	"github.com/kcaldas/termfolio/cmd/tui/presentation"
	"github.com/kcaldas/termfolio/cmd/tui/types"
	"github.com/kcaldas/termfolio/pkg/clock"
	"github.com/kcaldas/termfolio/pkg/events"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/preferences"
	"github.com/kcaldas/termfolio/pkg/session"
	"github.com/kcaldas/termfolio/pkg/terminal"
)

type App struct {
	gui     *gocui.Gui
	sess    *session.Session
	helpers *helpers.Helpers
	config  *types.Config
	logger  logging.Logger

	layoutManager *layout.LayoutManager

	outputComponent *component.OutputComponent
	inputComponent  *component.InputComponent
	statusComponent *component.StatusComponent

	keymap *Keymap

	// Project currently shown by Ctrl-O, empty when the dialog is closed
	mu         sync.Mutex
	currentRef string

	unwatch func()
	done    chan struct{}
}

func NewApp(sess *session.Session, subscriber events.Subscriber, settingsDir string) (*App, error) {
	h := helpers.NewHelpers(settingsDir)

	config, err := h.Config.Load()
	if err != nil {
		return nil, err
	}

	g, err := gocui.NewGui(h.Config.GetGocuiOutputMode(config.OutputMode), true)
	if err != nil {
		return nil, err
	}
	g.Cursor = true

	app := &App{
		gui:     g,
		sess:    sess,
		helpers: h,
		config:  config,
		logger:  logging.NewComponentLogger("tui"),
		done:    make(chan struct{}),
	}

	app.layoutManager = layout.NewLayoutManager(g, layout.NewDefaultLayoutConfig())
	app.setupComponents()
	app.keymap = app.createKeymap()

	g.SetManagerFunc(app.layoutManager.Layout)

	if err := app.setupKeybindings(); err != nil {
		g.Close()
		return nil, err
	}

	app.unwatch = sess.Log().Watch(func(session.Change) {
		app.PostUIUpdate(func() {
			app.outputComponent.Render()
		})
	})

	if subscriber != nil {
		subscriber.Subscribe(events.TopicThemeChanged, func(event interface{}) {
			if e, ok := event.(events.ThemeChangedEvent); ok && e.SessionID == sess.ID() {
				app.PostUIUpdate(app.renderAll)
			}
		})
	}

	return app, nil
}

func (app *App) setupComponents() {
	app.outputComponent = component.NewOutputComponent(app, app.sess)
	app.inputComponent = component.NewInputComponent(app, app.sess, func([]terminal.Event) {
		app.outputComponent.ScrollToBottom()
	})
	app.statusComponent = component.NewStatusComponent(app, app.sess, clock.SystemClock{})

	app.layoutManager.SetComponent(layout.PanelOutput, app.outputComponent)
	app.layoutManager.SetComponent(layout.PanelInput, app.inputComponent)
	app.layoutManager.SetComponent(layout.PanelStatusLeft, app.statusComponent.Left)
	app.layoutManager.SetComponent(layout.PanelStatusCenter, app.statusComponent.Center)
	app.layoutManager.SetComponent(layout.PanelStatusRight, app.statusComponent.Right)

	app.layoutManager.OnResize(func() {
		app.PostUIUpdate(app.renderAll)
	})
}

func (app *App) createKeymap() *Keymap {
	keymap := NewKeymap()

	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyCtrlC,
		Label:       "^C",
		Action:      func() error { return gocui.ErrQuit },
		Description: "Exit",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyCtrlL,
		Label:       "^L",
		Action:      app.clearScreen,
		Description: "Clear the screen",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyCtrlT,
		Label:       "^T",
		Action:      app.toggleTheme,
		Description: "Toggle light and dark theme",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyCtrlO,
		Label:       "^O",
		Action:      app.openNextProject,
		Description: "Open the next project from the last tree",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyEsc,
		Label:       "Esc",
		Action:      app.closeDialog,
		Description: "Close the project detail",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyCtrlY,
		Label:       "^Y",
		Action:      app.copyOutput,
		Description: "Copy the output to the clipboard",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyPgup,
		Label:       "PgUp",
		Action:      app.outputComponent.PageUp,
		Description: "Scroll output up",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyPgdn,
		Label:       "PgDn",
		Action:      app.outputComponent.PageDown,
		Description: "Scroll output down",
	})

	return keymap
}

func (app *App) setupKeybindings() error {
	for _, entry := range app.keymap.GetEntries() {
		action := entry.Action
		handler := func(g *gocui.Gui, v *gocui.View) error {
			return action()
		}
		if err := app.gui.SetKeybinding("", entry.Key, entry.Mod, handler); err != nil {
			return err
		}
	}
	return nil
}

// Run blocks in the gocui main loop until the user quits or ctx is done
func (app *App) Run(ctx context.Context) error {
	app.gui.Update(func(g *gocui.Gui) error {
		_, err := g.SetCurrentView(layout.PanelInput)
		if err != nil && err != gocui.ErrUnknownView {
			return err
		}
		return nil
	})

	app.statusComponent.Start()

	go func() {
		select {
		case <-ctx.Done():
			app.gui.Update(func(*gocui.Gui) error {
				return gocui.ErrQuit
			})
		case <-app.done:
		}
	}()

	err := app.gui.MainLoop()
	close(app.done)
	return err
}

func (app *App) Close() {
	if app.unwatch != nil {
		app.unwatch()
	}
	app.statusComponent.Close()
	if app.gui != nil {
		app.gui.Close()
	}
}

// clearScreen runs "clear" through the interpreter and keeps whatever was typed
func (app *App) clearScreen() error {
	draft := app.sess.Draft()
	if v := app.inputComponent.GetView(); v != nil {
		draft = component.InputText(v)
	}
	app.sess.SubmitCommand("clear")
	app.sess.SetDraft(draft)
	app.inputComponent.Sync()
	return nil
}

func (app *App) toggleTheme() error {
	app.sess.ToggleTheme()
	app.renderAll()
	return nil
}

func (app *App) openNextProject() error {
	refs := component.LatestRefs(app.sess.Log().Entries())

	app.mu.Lock()
	id, ok := component.NextRef(refs, app.currentRef)
	app.mu.Unlock()
	if !ok {
		return nil
	}

	project, found := app.sess.ProjectDetail(id)
	if !found {
		app.logger.Warn("project referenced by tree is missing", "project", id)
		return nil
	}

	if err := app.layoutManager.HideDialog(); err != nil {
		return err
	}

	app.mu.Lock()
	app.currentRef = id
	app.mu.Unlock()

	dialog := component.NewProjectDialogComponent(app, project, app.closeDialog)
	app.layoutManager.ShowDialog(dialog)
	app.gui.Update(func(g *gocui.Gui) error {
		_, err := g.SetCurrentView(dialog.GetViewName())
		if err != nil && err != gocui.ErrUnknownView {
			return err
		}
		return nil
	})
	return nil
}

func (app *App) closeDialog() error {
	if !app.layoutManager.DialogVisible() {
		return nil
	}

	app.mu.Lock()
	app.currentRef = ""
	app.mu.Unlock()

	if err := app.layoutManager.HideDialog(); err != nil {
		return err
	}
	if _, err := app.gui.SetCurrentView(layout.PanelInput); err != nil && err != gocui.ErrUnknownView {
		return err
	}
	return nil
}

func (app *App) copyOutput() error {
	if !app.helpers.Clipboard.IsAvailable() {
		app.logger.Warn("clipboard not available")
		return nil
	}
	text := presentation.PlainText(app.sess.Prompt(), app.sess.Log().Entries())
	if err := app.helpers.Clipboard.Copy(text); err != nil {
		app.logger.Warn("failed to copy output", "error", err)
	}
	return nil
}

func (app *App) renderAll() {
	for _, c := range []types.Component{app.outputComponent, app.inputComponent} {
		if err := c.Render(); err != nil {
			app.logger.Debug("render failed", "view", c.GetViewName(), "error", err)
		}
	}
	app.statusComponent.Render()
}

func (app *App) GetGui() *gocui.Gui {
	return app.gui
}

func (app *App) GetConfig() *types.Config {
	return app.config
}

func (app *App) CurrentTheme() preferences.Theme {
	return app.sess.Theme()
}

func (app *App) PostUIUpdate(fn func()) {
	app.gui.Update(func(g *gocui.Gui) error {
		fn()
		return nil
	})
}
