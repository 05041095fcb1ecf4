package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kcaldas/termfolio/pkg/catalog"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/preferences"
)

// ErrEmptyLine is returned for blank input. Callers must not echo it.
var ErrEmptyLine = errors.New("empty command line")

const themeUsage = "Usage: theme [--light|--dark|--toggle]"

// Interpreter turns command lines into display events. It is not safe for
// concurrent use; a session serialises calls.
type Interpreter struct {
	catalog  *catalog.Catalog
	registry *Registry
	store    preferences.Store
	theme    preferences.Theme
	logger   logging.Logger
}

// Option configures an Interpreter
type Option func(*Interpreter)

func WithLogger(logger logging.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

func WithRegistry(r *Registry) Option {
	return func(i *Interpreter) {
		i.registry = r
	}
}

// NewInterpreter reads the theme preference once. An unset or unreadable
// preference starts as dark.
func NewInterpreter(cat *catalog.Catalog, store preferences.Store, opts ...Option) *Interpreter {
	i := &Interpreter{
		catalog:  cat,
		registry: NewRegistry(),
		store:    store,
		logger:   logging.NewComponentLogger("interpreter"),
	}
	for _, opt := range opts {
		opt(i)
	}

	theme, err := store.GetTheme()
	if err != nil {
		i.logger.Warn("failed to read theme preference", "error", err)
	}
	i.theme = theme.OrDefault()
	return i
}

// Theme is the current theme
func (i *Interpreter) Theme() preferences.Theme {
	return i.theme
}

func (i *Interpreter) Registry() *Registry {
	return i.registry
}

func (i *Interpreter) Catalog() *catalog.Catalog {
	return i.catalog
}

// Interpret runs one command line
func (i *Interpreter) Interpret(raw string) (Result, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Result{}, ErrEmptyLine
	}

	tokens := strings.Fields(line)
	kind := i.registry.Resolve(tokens[0])
	args := tokens[1:]

	res := Result{Command: kind, Echo: Echo(line)}
	switch kind {
	case KindLs:
		res.Events = i.ls(args)
	case KindCat:
		res.Events = i.cat(args)
	case KindNeofetch:
		res.Events = []Event{StructuredBlock(renderNeofetch(i.catalog.Neofetch))}
	case KindTree:
		res.Events = i.tree(args)
	case KindContact:
		res.Events = []Event{StructuredBlock(renderContact(i.catalog.Identity.Prompt(), i.catalog.Contact))}
	case KindClear:
		res.Events = []Event{ClearAll()}
	case KindHelp:
		res.Events = []Event{Block(i.catalog.Help)}
	case KindTheme:
		res.Events = i.themeCommand(args)
	case KindWhoami:
		res.Events = []Event{Line(i.catalog.Identity.Whoami)}
	case KindPing:
		res.Events, res.Timed = i.ping(args)
	default:
		res.Events = []Event{Error(fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", line))}
	}

	i.logger.Debug("interpreted command", "command", kind.String(), "args", len(args), "events", len(res.Events), "timed", len(res.Timed))
	return res, nil
}

// ProjectDetail looks up the detail record for a project id embedded in a tree block
func (i *Interpreter) ProjectDetail(id string) (catalog.Project, bool) {
	return i.catalog.Project(id)
}

// ToggleTheme flips the theme exactly like "theme --toggle"
func (i *Interpreter) ToggleTheme() Event {
	return i.setTheme(i.theme.Toggle())
}

func (i *Interpreter) ls(args []string) []Event {
	for _, a := range args {
		if a == "-l" || a == "-a" || a == "-la" {
			return []Event{Block(i.catalog.Listing.Long)}
		}
	}
	return []Event{Line(i.catalog.Listing.Short)}
}

func (i *Interpreter) cat(args []string) []Event {
	if len(args) == 0 {
		return []Event{Error("Usage: cat <filename>")}
	}
	name := args[0]
	content, ok := i.catalog.Lookup(catalog.KindFile, name)
	if !ok {
		return []Event{Error(fmt.Sprintf("cat: %s: No such file or directory", name))}
	}
	return []Event{Block(content)}
}

func (i *Interpreter) tree(args []string) []Event {
	if len(args) > 0 && args[0] != i.catalog.Projects.Root {
		return []Event{Error(fmt.Sprintf("tree: %s: No such file or directory", args[0]))}
	}
	return []Event{StructuredBlock(renderTree(i.catalog.Projects), i.catalog.ProjectIDs()...)}
}

func (i *Interpreter) themeCommand(args []string) []Event {
	option := ""
	if len(args) > 0 {
		option = args[0]
	}

	switch option {
	case "", "--toggle":
		return []Event{i.ToggleTheme()}
	case "--light":
		return []Event{i.setTheme(preferences.ThemeLight)}
	case "--dark":
		return []Event{i.setTheme(preferences.ThemeDark)}
	default:
		return []Event{Error(fmt.Sprintf("theme: invalid option '%s'\n%s", option, themeUsage))}
	}
}

func (i *Interpreter) setTheme(theme preferences.Theme) Event {
	i.theme = theme
	if err := i.store.SetTheme(theme); err != nil {
		i.logger.Warn("failed to save theme preference", "theme", theme.String(), "error", err)
	}
	return Line(fmt.Sprintf("Switching to %s theme...\n[ OK ] Theme changed successfully", theme))
}

func (i *Interpreter) ping(args []string) ([]Event, []TimedEvent) {
	if len(args) == 0 {
		return []Event{Error("Usage: ping <hostname>")}, nil
	}

	host := args[0]
	p := i.catalog.Ping
	timed := make([]TimedEvent, 0, len(p.Replies))
	for _, r := range p.Replies {
		timed = append(timed, TimedEvent{Delay: r.Delay, Event: Line(p.Expand(r.Text, host))})
	}
	return []Event{Line(p.Expand(p.Header, host))}, timed
}
