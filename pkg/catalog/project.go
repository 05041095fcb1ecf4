package catalog

import (
	"fmt"
	"strings"
)

// Project is one entry of the projects tree together with its detail record
type Project struct {
	ID      string   `yaml:"id" json:"id"`
	Dir     string   `yaml:"dir" json:"dir"`
	Summary string   `yaml:"summary" json:"summary"`
	Tech    []string `yaml:"tech" json:"tech"`
	Status  string   `yaml:"status" json:"status"`

	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Stack       []string `yaml:"stack" json:"stack"`
	Features    []string `yaml:"features" json:"features"`
	State       string   `yaml:"state" json:"state"`
	Link        string   `yaml:"link,omitempty" json:"link,omitempty"`
	Progress    int      `yaml:"progress,omitempty" json:"progress,omitempty"`
}

// Markdown renders the detail record for a markdown viewer
func (p Project) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "### %s\n\n", p.Title)
	fmt.Fprintf(&b, "**Description:** %s\n\n", p.Description)
	fmt.Fprintf(&b, "**Tech Stack:** %s\n\n", strings.Join(p.Stack, ", "))
	if len(p.Features) > 0 {
		b.WriteString("**Features:**\n\n")
		for _, f := range p.Features {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "**Status:** %s\n", p.State)
	if p.Progress > 0 {
		fmt.Fprintf(&b, "\n**Progress:** %d%%\n", p.Progress)
	}
	if p.Link != "" {
		fmt.Fprintf(&b, "\n**Link:** %s\n", p.Link)
	}
	return b.String()
}
