package tui

import (
	"fmt"

	"github.com/awesome-gocui/gocui"
)

// KeymapEntry is one global shortcut
type KeymapEntry struct {
	Key         gocui.Key
	Mod         gocui.Modifier
	Label       string
	Action      func() error
	Description string
}

type Keymap struct {
	entries []KeymapEntry
}

func NewKeymap() *Keymap {
	return &Keymap{}
}

func (k *Keymap) AddEntry(entry KeymapEntry) {
	k.entries = append(k.entries, entry)
}

func (k *Keymap) GetEntries() []KeymapEntry {
	return k.entries
}

// Lookup finds the entry bound to key
func (k *Keymap) Lookup(key gocui.Key) (KeymapEntry, bool) {
	for _, e := range k.entries {
		if e.Key == key {
			return e, true
		}
	}
	return KeymapEntry{}, false
}

// Help lists the shortcuts as "label  description" lines
func (k *Keymap) Help() []string {
	lines := make([]string, 0, len(k.entries))
	for _, e := range k.entries {
		lines = append(lines, fmt.Sprintf("%-8s %s", e.Label, e.Description))
	}
	return lines
}
