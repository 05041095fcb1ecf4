package component

import (
	"github.com/awesome-gocui/gocui"
	"github.com/gdamore/tcell/v2"
)

// PromptEditor edits a single command line. Enter, history and completion
// keys are bound on the view and never reach the editor.
type PromptEditor struct {
	onChange func(draft string)
}

func NewPromptEditor(onChange func(draft string)) *PromptEditor {
	return &PromptEditor{onChange: onChange}
}

// IsUnboundSpecialKey checks if a key is a special key that should be ignored.
func IsUnboundSpecialKey(key gocui.Key) bool {
	switch key {
	case gocui.KeyF1, gocui.KeyF2, gocui.KeyF3, gocui.KeyF4,
		gocui.KeyF5, gocui.KeyF6, gocui.KeyF7, gocui.KeyF8,
		gocui.KeyF9, gocui.KeyF10, gocui.KeyF11, gocui.KeyF12,
		gocui.KeyPgup, gocui.KeyPgdn, gocui.KeyInsert,
		gocui.KeyEnter, gocui.KeyArrowUp, gocui.KeyArrowDown, gocui.KeyTab:
		return true
	}
	return false
}

func (e *PromptEditor) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	_, cy := v.Cursor()

	if mod&gocui.Modifier(tcell.ModCtrl) != 0 || mod&gocui.Modifier(tcell.ModAlt) != 0 {
		switch key {
		case gocui.KeyArrowLeft:
			v.SetCursor(0, cy)
			return
		case gocui.KeyArrowRight:
			line, _ := v.Line(cy)
			v.SetCursor(len(line), cy)
			return
		}
	}

	switch key {
	case gocui.KeyHome, gocui.KeyCtrlA:
		v.SetCursor(0, cy)
		v.SetOrigin(0, 0)
		return
	case gocui.KeyEnd, gocui.KeyCtrlE:
		line, _ := v.Line(cy)
		v.SetCursor(len(line), cy)
		return
	case gocui.KeyCtrlU:
		v.Clear()
		v.SetCursor(0, 0)
		v.SetOrigin(0, 0)
	default:
		if IsUnboundSpecialKey(key) {
			return
		}
		gocui.DefaultEditor.Edit(v, key, ch, mod)
	}

	if e.onChange != nil {
		e.onChange(InputText(v))
	}
}
