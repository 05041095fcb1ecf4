package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

var (
	ErrUnknownKind = errors.New("unknown catalog kind")
	ErrNotFound    = errors.New("catalog entry not found")
)

// Kind selects a family of catalog content for Lookup
type Kind string

const (
	KindFile     Kind = "file"
	KindListing  Kind = "listing"
	KindHelp     Kind = "help"
	KindIdentity Kind = "identity"
	KindProject  Kind = "project"
)

// Catalog is the static content served by the interpreter
type Catalog struct {
	Identity Identity          `yaml:"identity"`
	Files    map[string]string `yaml:"files"`
	Listing  Listing           `yaml:"listing"`
	Neofetch Neofetch          `yaml:"neofetch"`
	Projects ProjectTree       `yaml:"projects"`
	Contact  Contact           `yaml:"contact"`
	Help     string            `yaml:"help"`
	Ping     Ping              `yaml:"ping"`
}

type Identity struct {
	User   string `yaml:"user"`
	Host   string `yaml:"host"`
	Path   string `yaml:"path"`
	Whoami string `yaml:"whoami"`
	Banner string `yaml:"banner"`
}

// Prompt renders the shell prompt, e.g. bos@manjaro:~$
func (i Identity) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$", i.User, i.Host, i.Path)
}

type Listing struct {
	Short string `yaml:"short"`
	Long  string `yaml:"long"`
}

type Neofetch struct {
	Title  string  `yaml:"title"`
	Art    string  `yaml:"art"`
	Fields []Field `yaml:"fields"`
	Skills []Skill `yaml:"skills"`
}

type Field struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Skill level is a percentage
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type ProjectTree struct {
	Root    string    `yaml:"root"`
	Entries []Project `yaml:"entries"`
}

type Contact struct {
	Script  string         `yaml:"script"`
	Intro   []string       `yaml:"intro"`
	Entries []ContactEntry `yaml:"entries"`
	Closing string         `yaml:"closing"`
}

type ContactEntry struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
	URL   string `yaml:"url,omitempty"`
}

// Ping templates use {host} and {address} placeholders
type Ping struct {
	Address string      `yaml:"address"`
	Header  string      `yaml:"header"`
	Replies []PingReply `yaml:"replies"`
}

type PingReply struct {
	Delay time.Duration `yaml:"delay"`
	Text  string        `yaml:"text"`
}

// Expand fills the placeholders of a ping template
func (p Ping) Expand(template, host string) string {
	return strings.NewReplacer("{host}", host, "{address}", p.Address).Replace(template)
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultContent))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load decodes and validates a catalog document
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile loads a catalog override from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault loads path when set, otherwise the built-in catalog
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// block scalars carry a trailing newline; blocks are stored without one
func (c *Catalog) normalize() {
	for name, body := range c.Files {
		c.Files[name] = strings.TrimRight(body, "\n")
	}
	c.Listing.Long = strings.TrimRight(c.Listing.Long, "\n")
	c.Neofetch.Art = strings.TrimRight(c.Neofetch.Art, "\n")
	c.Help = strings.TrimRight(c.Help, "\n")
}

// Validate reports the first structural problem in the catalog
func (c *Catalog) Validate() error {
	switch {
	case c.Identity.User == "" || c.Identity.Host == "":
		return errors.New("catalog: identity needs user and host")
	case c.Listing.Short == "" || c.Listing.Long == "":
		return errors.New("catalog: listing needs short and long forms")
	case c.Help == "":
		return errors.New("catalog: help text is empty")
	case c.Ping.Header == "":
		return errors.New("catalog: ping header is empty")
	case c.Projects.Root == "":
		return errors.New("catalog: projects root is empty")
	}

	seen := make(map[string]bool, len(c.Projects.Entries))
	for i, p := range c.Projects.Entries {
		if p.ID == "" {
			return fmt.Errorf("catalog: project %d has no id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("catalog: duplicate project id %q", p.ID)
		}
		seen[p.ID] = true
	}

	for i, s := range c.Neofetch.Skills {
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("catalog: skill %d level %d out of range", i, s.Level)
		}
	}

	var last time.Duration
	for i, r := range c.Ping.Replies {
		if r.Delay <= last {
			return fmt.Errorf("catalog: ping reply %d delay must increase", i)
		}
		last = r.Delay
	}
	return nil
}

// Project returns the project with the given id
func (c *Catalog) Project(id string) (Project, bool) {
	for _, p := range c.Projects.Entries {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// ProjectIDs lists project ids in display order
func (c *Catalog) ProjectIDs() []string {
	ids := make([]string, 0, len(c.Projects.Entries))
	for _, p := range c.Projects.Entries {
		ids = append(ids, p.ID)
	}
	return ids
}

// Get returns the content of one entry. Listing keys are "short" and "long";
// help and identity ignore key.
func (c *Catalog) Get(kind Kind, key string) (string, error) {
	var (
		value string
		ok    bool
	)

	switch kind {
	case KindFile:
		value, ok = c.Files[key]
	case KindListing:
		switch key {
		case "short":
			value, ok = c.Listing.Short, true
		case "long":
			value, ok = c.Listing.Long, true
		}
	case KindHelp:
		value, ok = c.Help, true
	case KindIdentity:
		value, ok = c.Identity.Whoami, true
	case KindProject:
		var p Project
		if p, ok = c.Project(key); ok {
			value = p.Markdown()
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrNotFound, kind, key)
	}
	return value, nil
}

// Lookup is Get without the error detail
func (c *Catalog) Lookup(kind Kind, key string) (string, bool) {
	value, err := c.Get(kind, key)
	return value, err == nil
}
