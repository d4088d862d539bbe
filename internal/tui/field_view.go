package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/daterangefield/daterange"
)

const (
	focusBegin = iota
	focusEnd
)

// FieldView renders a daterange.Field as two date entries with a shortcut
// menu.
type FieldView struct {
	field *daterange.Field
	begin *DateInput
	end   *DateInput
	focus int
	menu  *shortcutMenu
	keys  *KeyRegistry
	help  help.Model
	note  string
	width int
}

func NewFieldView(layout string, opts ...daterange.Option) *FieldView {
	begin := NewDateInput(layout)
	end := NewDateInput(layout)
	v := &FieldView{
		field: daterange.NewFieldWithInputs(begin, end, opts...),
		begin: begin,
		end:   end,
		keys:  NewKeyRegistry(),
		help:  help.New(),
	}
	begin.Focus()
	return v
}

func (v *FieldView) Field() *daterange.Field { return v.field }

func (v *FieldView) Keys() *KeyRegistry { return v.keys }

// MenuOpen reports whether the shortcut menu has focus.
func (v *FieldView) MenuOpen() bool { return v.menu != nil }

// Note is the last message from the shortcut menu.
func (v *FieldView) Note() string { return v.note }

// SetWidth bounds the width of the shortcut menu.
func (v *FieldView) SetWidth(w int) {
	v.width = w
	v.help.Width = w
	v.menu.SetWidth(w)
}

func (v *FieldView) Init() tea.Cmd {
	return tea.Batch(v.focused().Focus(), textinput.Blink)
}

func (v *FieldView) focused() *DateInput {
	if v.focus == focusEnd {
		return v.end
	}
	return v.begin
}

func (v *FieldView) setFocus(idx int) tea.Cmd {
	v.focused().Blur()
	v.focus = idx
	return v.focused().Focus()
}

func (v *FieldView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v.focused().Update(msg)
	}
	if v.menu != nil {
		return v.updateMenu(km)
	}

	b := v.keys.Lookup(km.String(), scopeInput)
	if b == nil {
		return v.focused().Update(msg)
	}
	switch b.Action {
	case actionNextInput, actionPrevInput:
		if err := v.focused().CommitText(); err != nil {
			return nil
		}
		next := focusEnd
		if v.focus == focusEnd {
			next = focusBegin
		}
		return v.setFocus(next)
	case actionCommit:
		_ = v.focused().CommitText()
	case actionRevert:
		v.focused().Revert()
	case actionMenu:
		if v.field.HasShortcuts() {
			v.menu = newShortcutMenu(v.field)
			v.menu.SetWidth(v.width)
			v.note = ""
		}
	case actionClear:
		v.field.Clear()
	default:
		return v.focused().Update(msg)
	}
	return nil
}

func (v *FieldView) updateMenu(km tea.KeyMsg) tea.Cmd {
	res := v.menu.HandleKey(v.keys, km.String())
	switch res.Action {
	case menuActionSelected:
		s := res.Item.Shortcut
		if !s.Enabled() {
			v.note = res.Item.Label + " is not available"
			return nil
		}
		v.menu = nil
		s.Trigger()
		v.note = res.Item.Label
	case menuActionCancelled:
		v.menu = nil
	}
	return nil
}

func (v *FieldView) View() string {
	row := lipgloss.JoinHorizontal(lipgloss.Top, v.begin.View(), arrowStyle.Render("→"), v.end.View())
	if v.field.HasShortcuts() {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, menuButtonStyle.Render("▾ shortcuts"))
	}
	parts := []string{row}
	if err := v.focused().Err(); err != nil {
		parts = append(parts, errorStyle.Render(err.Error()))
	}
	scope := scopeInput
	if v.menu != nil {
		parts = append(parts, v.menu.View())
		scope = scopeMenu
	}
	parts = append(parts, v.help.ShortHelpView(v.keys.HelpBindings(scope)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
