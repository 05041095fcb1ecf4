package terminal

import (
	"fmt"
	"strings"

	"github.com/kcaldas/termfolio/pkg/catalog"
)

const (
	skillBarWidth = 10
	separator     = "-------------------------"
)

// renderNeofetch places the ascii art to the left of the system info
func renderNeofetch(n catalog.Neofetch) string {
	info := []string{n.Title, separator}
	for _, f := range n.Fields {
		info = append(info, fmt.Sprintf("%s: %s", f.Label, f.Value))
	}
	if len(n.Skills) > 0 {
		info = append(info, separator, "Skills:")
		width := 0
		for _, s := range n.Skills {
			width = max(width, len(s.Name))
		}
		for _, s := range n.Skills {
			info = append(info, fmt.Sprintf("%-*s %s %d%%", width, s.Name, skillBar(s.Level), s.Level))
		}
	}

	art := strings.Split(n.Art, "\n")
	artWidth := 0
	for _, l := range art {
		artWidth = max(artWidth, len([]rune(l)))
	}

	rows := max(len(art), len(info))
	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		left, right := "", ""
		if i < len(art) {
			left = art[i]
		}
		if i < len(info) {
			right = info[i]
		}
		pad := artWidth - len([]rune(left))
		lines = append(lines, strings.TrimRight(left+strings.Repeat(" ", pad)+"   "+right, " "))
	}
	return strings.Join(lines, "\n")
}

func skillBar(level int) string {
	filled := (level*skillBarWidth + 50) / 100
	filled = min(max(filled, 0), skillBarWidth)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", skillBarWidth-filled) + "]"
}

func renderTree(tree catalog.ProjectTree) string {
	lines := []string{tree.Root}
	for i, p := range tree.Entries {
		branch, indent := "├── ", "│   "
		if i == len(tree.Entries)-1 {
			branch, indent = "└── ", "    "
		}
		lines = append(lines,
			branch+p.Dir,
			indent+"├── desc: "+p.Summary,
			indent+"├── tech: "+strings.Join(p.Tech, ", "),
			indent+"└── status: "+p.Status,
		)
	}
	return strings.Join(lines, "\n")
}

func renderContact(prompt string, c catalog.Contact) string {
	lines := []string{prompt + " " + c.Script}
	lines = append(lines, c.Intro...)
	lines = append(lines, "")

	width := 0
	for _, e := range c.Entries {
		width = max(width, len(e.Label)+1)
	}
	for _, e := range c.Entries {
		line := fmt.Sprintf("%-*s %s", width, e.Label+":", e.Text)
		if strings.HasPrefix(e.URL, "http") {
			line += " <" + e.URL + ">"
		}
		lines = append(lines, line)
	}

	if c.Closing != "" {
		lines = append(lines, "", c.Closing)
	}
	return strings.Join(lines, "\n")
}
