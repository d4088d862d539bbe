package tui

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/daterangefield/daterange"
)

// DateInput is a text entry bound to a daterange.Input. Text is parsed
// with layout when committed; value changes from any other source rewrite
// the text.
type DateInput struct {
	*daterange.Input

	text   textinput.Model
	layout string
	err    error
}

var _ daterange.DateInput = (*DateInput)(nil)

func NewDateInput(layout string) *DateInput {
	if strings.TrimSpace(layout) == "" {
		layout = time.DateOnly
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = len(layout) + 8
	ti.Width = len(layout) + 1

	d := &DateInput{Input: daterange.NewInput(), text: ti, layout: layout}
	d.OnChange(func(ev daterange.InputEvent) {
		d.text.SetValue(d.format(ev.Value))
		d.text.CursorEnd()
		d.err = nil
	})
	return d
}

func (d *DateInput) SetPlaceholder(s string) {
	d.Input.SetPlaceholder(s)
	d.text.Placeholder = s
}

// CommitText parses the current text and commits it as a user change.
// Empty text clears the value. A date before the range start is rejected
// and the value is left alone.
func (d *DateInput) CommitText() error {
	raw := strings.TrimSpace(d.text.Value())
	if raw == "" {
		d.err = nil
		d.Commit(civil.Date{})
		return nil
	}
	t, err := time.Parse(d.layout, raw)
	if err != nil {
		d.err = fmt.Errorf("%q is not a date, use %s", raw, d.layout)
		return d.err
	}
	date := civil.DateOf(t)
	if !d.Selectable(date) {
		d.err = fmt.Errorf("%s is before %s", d.format(date), d.format(d.RangeStart()))
		return d.err
	}
	d.err = nil
	if date == d.Value() {
		// normalize the text even when the value is unchanged
		d.text.SetValue(d.format(date))
		return nil
	}
	d.Commit(date)
	return nil
}

// Revert drops uncommitted text.
func (d *DateInput) Revert() {
	d.text.SetValue(d.format(d.Value()))
	d.text.CursorEnd()
	d.err = nil
}

func (d *DateInput) Focus() tea.Cmd { return d.text.Focus() }

func (d *DateInput) Blur() { d.text.Blur() }

func (d *DateInput) Focused() bool { return d.text.Focused() }

func (d *DateInput) Text() string { return d.text.Value() }

func (d *DateInput) SetText(s string) {
	d.text.SetValue(s)
	d.text.CursorEnd()
}

func (d *DateInput) Err() error { return d.err }

func (d *DateInput) Layout() string { return d.layout }

func (d *DateInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.text, cmd = d.text.Update(msg)
	return cmd
}

func (d *DateInput) View() string {
	style := inputStyle
	if d.Focused() {
		style = focusedInputStyle
	}
	return style.Render(d.text.View())
}

func (d *DateInput) format(date civil.Date) string {
	if date.IsZero() {
		return ""
	}
	return date.In(time.UTC).Format(d.layout)
}
