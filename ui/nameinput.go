package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// NameInput is a short text input field for the player name.
type NameInput struct {
	label    string
	text     string
	focused  bool
	cursor   int
	maxLen   int
	onChange func(string)
}

// NewNameInput creates a new name input field.
func NewNameInput(label, initial string, onChange func(string)) *NameInput {
	return &NameInput{
		label:    label,
		text:     initial,
		cursor:   len(initial),
		maxLen:   12,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (n *NameInput) SetFocused(focused bool) {
	n.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (n *NameInput) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		if n.cursor > 0 {
			n.cursor--
		}
		return true
	case tcell.KeyRight:
		if n.cursor < len(n.text) {
			n.cursor++
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n.cursor > 0 {
			n.text = n.text[:n.cursor-1] + n.text[n.cursor:]
			n.cursor--
			n.notify()
		}
		return true
	case tcell.KeyDelete:
		if n.cursor < len(n.text) {
			n.text = n.text[:n.cursor] + n.text[n.cursor+1:]
			n.notify()
		}
		return true
	case tcell.KeyRune:
		ch := event.Rune()
		if ch >= 32 && ch < 127 && len(n.text) < n.maxLen {
			n.text = n.text[:n.cursor] + string(ch) + n.text[n.cursor:]
			n.cursor++
			n.notify()
		}
		return true
	}
	return false
}

func (n *NameInput) notify() {
	if n.onChange != nil {
		n.onChange(n.Value())
	}
}

// Draw renders the name input component.
// Returns the number of rows used.
func (n *NameInput) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	inputStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(tcell.PaletteColor(238))
	cursorStyle := tcell.StyleDefault.Foreground(MenuColors.CardBG).Background(MenuColors.Selected)

	col := x

	// Focus cursor
	if n.focused {
		screen.SetContent(col, y, '▸', nil, selectedStyle)
	} else {
		screen.SetContent(col, y, ' ', nil, bgStyle)
	}
	col += 2

	// Label with diamond prefix: ◈ Name
	screen.SetContent(col, y, '◈', nil, accentStyle)
	col += 2

	for _, ch := range n.label {
		screen.SetContent(col, y, ch, nil, labelStyle)
		col++
	}
	col += 3

	// Input field with brackets: [ Player ]
	screen.SetContent(col, y, '[', nil, labelStyle)
	col++
	screen.SetContent(col, y, ' ', nil, inputStyle)
	col++

	inputStart := col
	for i, ch := range n.text {
		style := inputStyle
		if n.focused && i == n.cursor {
			style = cursorStyle
		}
		screen.SetContent(col, y, ch, nil, style)
		col++
	}

	if n.focused && n.cursor >= len(n.text) {
		screen.SetContent(col, y, ' ', nil, cursorStyle)
		col++
	}

	for col < inputStart+n.maxLen+1 {
		screen.SetContent(col, y, ' ', nil, inputStyle)
		col++
	}

	screen.SetContent(col, y, ']', nil, labelStyle)

	return 1
}

// Value returns the trimmed input text.
func (n *NameInput) Value() string {
	return strings.TrimSpace(n.text)
}
