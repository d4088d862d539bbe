package daterange

import (
	"cloud.google.com/go/civil"
)

// InputEvent reports a value change on a single DateInput.
type InputEvent struct {
	OldValue       civil.Date
	Value          civil.Date
	UserOriginated bool
}

// DateInput is one nullable date slot as supplied by a UI toolkit. The
// zero civil.Date is the empty value.
type DateInput interface {
	Value() civil.Date
	SetValue(d civil.Date)
	Clear()
	IsEmpty() bool
	OnChange(fn func(InputEvent)) Registration
	// SetRangeStart sets the earliest date the user may pick. The zero date
	// removes the floor.
	SetRangeStart(d civil.Date)
	RangeStart() civil.Date
	SetPlaceholder(s string)
	Placeholder() string
}

// Input is a headless DateInput. Widgets embed it and call Commit for
// values typed or picked by the user.
type Input struct {
	value       civil.Date
	rangeStart  civil.Date
	placeholder string
	listeners   listenerList[InputEvent]
}

var _ DateInput = (*Input)(nil)

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Value() civil.Date { return in.value }

func (in *Input) IsEmpty() bool { return in.value.IsZero() }

// SetValue stores d and notifies listeners as a programmatic change.
func (in *Input) SetValue(d civil.Date) { in.set(d, false) }

// Commit stores d and notifies listeners as a user-originated change.
func (in *Input) Commit(d civil.Date) { in.set(d, true) }

func (in *Input) Clear() { in.set(civil.Date{}, false) }

func (in *Input) OnChange(fn func(InputEvent)) Registration {
	return in.listeners.add(fn)
}

// SetRangeStart records the selectable minimum. Input itself never rejects
// a value below it; that is up to whatever collects user input.
func (in *Input) SetRangeStart(d civil.Date) { in.rangeStart = d }

func (in *Input) RangeStart() civil.Date { return in.rangeStart }

func (in *Input) SetPlaceholder(s string) { in.placeholder = s }

func (in *Input) Placeholder() string { return in.placeholder }

// Selectable reports whether d satisfies the range start.
func (in *Input) Selectable(d civil.Date) bool {
	if d.IsZero() || in.rangeStart.IsZero() {
		return true
	}
	return !d.Before(in.rangeStart)
}

func (in *Input) set(d civil.Date, user bool) {
	if d == in.value {
		return
	}
	old := in.value
	in.value = d
	in.listeners.fire(InputEvent{OldValue: old, Value: d, UserOriginated: user})
}
