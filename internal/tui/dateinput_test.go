package tui

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/jask/daterangefield/daterange"
)

func day(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

var civilZero civil.Date

func collect(d *DateInput) *[]daterange.InputEvent {
	var events []daterange.InputEvent
	d.OnChange(func(ev daterange.InputEvent) { events = append(events, ev) })
	return &events
}

func TestDateInputCommitText(t *testing.T) {
	d := NewDateInput("2006-01-02")
	events := collect(d)

	d.SetText(" 2026-03-04 ")
	if err := d.CommitText(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if d.Value() != day(2026, 3, 4) {
		t.Fatalf("value = %v, want 2026-03-04", d.Value())
	}
	if len(*events) != 1 || !(*events)[0].UserOriginated {
		t.Fatalf("events = %+v, want one user-originated event", *events)
	}
	if d.Text() != "2026-03-04" {
		t.Fatalf("text = %q, want normalized date", d.Text())
	}
}

func TestDateInputRejectsBadText(t *testing.T) {
	d := NewDateInput("02/01/2006")
	d.SetValue(day(2026, 1, 10))
	events := collect(d)

	d.SetText("2026-01-11")
	if err := d.CommitText(); err == nil {
		t.Fatal("expected parse error")
	}
	if d.Err() == nil {
		t.Fatal("expected error to be kept for display")
	}
	if d.Value() != day(2026, 1, 10) || len(*events) != 0 {
		t.Fatalf("value changed on bad input: %v, %d events", d.Value(), len(*events))
	}

	d.Revert()
	if d.Text() != "10/01/2026" || d.Err() != nil {
		t.Fatalf("revert: text=%q err=%v", d.Text(), d.Err())
	}
}

func TestDateInputRejectsBeforeRangeStart(t *testing.T) {
	d := NewDateInput("")
	d.SetRangeStart(day(2026, 5, 1))
	events := collect(d)

	d.SetText("2026-04-30")
	if err := d.CommitText(); err == nil {
		t.Fatal("expected range start error")
	}
	if !d.IsEmpty() || len(*events) != 0 {
		t.Fatalf("value should stay empty, got %v", d.Value())
	}

	d.SetText("2026-05-01")
	if err := d.CommitText(); err != nil {
		t.Fatalf("range start itself should be selectable: %v", err)
	}
}

func TestDateInputEmptyTextClears(t *testing.T) {
	d := NewDateInput("")
	d.SetValue(day(2026, 1, 1))
	events := collect(d)

	d.SetText("")
	if err := d.CommitText(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if !d.IsEmpty() {
		t.Fatalf("value = %v, want empty", d.Value())
	}
	if len(*events) != 1 || !(*events)[0].UserOriginated || (*events)[0].OldValue != day(2026, 1, 1) {
		t.Fatalf("events = %+v", *events)
	}
}

func TestDateInputProgrammaticValueRewritesText(t *testing.T) {
	d := NewDateInput("2006-01-02")
	d.SetText("garbage")
	_ = d.CommitText()

	d.SetValue(day(1999, 12, 31))
	if d.Text() != "1999-12-31" {
		t.Fatalf("text = %q", d.Text())
	}
	if d.Err() != nil {
		t.Fatalf("programmatic set should clear the error, got %v", d.Err())
	}
	d.Clear()
	if d.Text() != "" {
		t.Fatalf("text after clear = %q", d.Text())
	}
}

func TestDateInputPlaceholder(t *testing.T) {
	d := NewDateInput("")
	f := daterange.NewFieldWithInputs(d, NewDateInput(""), daterange.WithPlaceholders("from", "to"))
	if d.Placeholder() != "from" || d.text.Placeholder != "from" {
		t.Fatalf("placeholder = %q / %q", d.Placeholder(), d.text.Placeholder)
	}
	if f.EndInput().Placeholder() != "to" {
		t.Fatalf("end placeholder = %q", f.EndInput().Placeholder())
	}
}
