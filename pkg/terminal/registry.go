package terminal

import "strings"

// Kind identifies one of the built-in commands
type Kind int

const (
	KindUnknown Kind = iota
	KindLs
	KindCat
	KindNeofetch
	KindTree
	KindContact
	KindClear
	KindHelp
	KindTheme
	KindWhoami
	KindPing
)

// Spec describes a built-in command
type Spec struct {
	Kind        Kind
	Name        string
	Usage       string
	Description string
	Category    string
	// Completable commands take part in Tab completion, in table order
	Completable bool
}

var builtins = []Spec{
	{Kind: KindLs, Name: "ls", Usage: "ls [-l|-a|-la]", Description: "Show directory listing", Category: "Navigation", Completable: true},
	{Kind: KindCat, Name: "cat", Usage: "cat <filename>", Description: "Print a file", Category: "Navigation", Completable: true},
	{Kind: KindNeofetch, Name: "neofetch", Usage: "neofetch", Description: "Display system and skills info", Category: "Info", Completable: true},
	{Kind: KindTree, Name: "tree", Usage: "tree [projects/]", Description: "View projects", Category: "Navigation", Completable: true},
	{Kind: KindContact, Name: "./contact.sh", Usage: "./contact.sh", Description: "Contact information", Category: "Info"},
	{Kind: KindClear, Name: "clear", Usage: "clear", Description: "Clear terminal", Category: "Terminal", Completable: true},
	{Kind: KindHelp, Name: "help", Usage: "help", Description: "Show the help menu", Category: "Terminal", Completable: true},
	{Kind: KindTheme, Name: "theme", Usage: "theme [--light|--dark|--toggle]", Description: "Toggle dark/light mode", Category: "Terminal", Completable: true},
	{Kind: KindWhoami, Name: "whoami", Usage: "whoami", Description: "Print identity", Category: "Info", Completable: true},
	{Kind: KindPing, Name: "ping", Usage: "ping <hostname>", Description: "Test connection", Category: "Network"},
}

// Registry maps lower-cased command names to their Kind. It is immutable.
type Registry struct {
	specs  []Spec
	byName map[string]Spec
	byKind map[Kind]Spec
}

// NewRegistry builds the registry of built-in commands
func NewRegistry() *Registry {
	r := &Registry{
		specs:  builtins,
		byName: make(map[string]Spec, len(builtins)),
		byKind: make(map[Kind]Spec, len(builtins)),
	}
	for _, s := range builtins {
		r.byName[s.Name] = s
		r.byKind[s.Kind] = s
	}
	return r
}

// Resolve matches name case-insensitively
func (r *Registry) Resolve(name string) Kind {
	if s, ok := r.byName[strings.ToLower(name)]; ok {
		return s.Kind
	}
	return KindUnknown
}

func (r *Registry) Spec(kind Kind) (Spec, bool) {
	s, ok := r.byKind[kind]
	return s, ok
}

// Specs returns a copy of the command table
func (r *Registry) Specs() []Spec {
	return append([]Spec(nil), r.specs...)
}

// Completions lists the names offered by Tab completion, in priority order
func (r *Registry) Completions() []string {
	var names []string
	for _, s := range r.specs {
		if s.Completable {
			names = append(names, s.Name)
		}
	}
	return names
}

func (k Kind) String() string {
	if k == KindUnknown {
		return "unknown"
	}
	for _, s := range builtins {
		if s.Kind == k {
			return s.Name
		}
	}
	return "unknown"
}

// CompletionOrder is the Tab completion list of the built-in registry
var CompletionOrder = NewRegistry().Completions()
