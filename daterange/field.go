package daterange

import (
	"cloud.google.com/go/civil"
	log "github.com/sirupsen/logrus"
)

// ValueChangeEvent is the composite notification a Field publishes. Value
// is read from the source when called, so listeners always see the state
// after the change.
type ValueChangeEvent struct {
	Source         *Field
	OldValue       Range
	UserOriginated bool
}

// Value returns the source field's current range.
func (e ValueChangeEvent) Value() Range {
	if e.Source == nil {
		return Range{}
	}
	return e.Source.Value()
}

// Option configures a Field at construction.
type Option func(*Field)

// WithCaption sets the label shown next to the field.
func WithCaption(caption string) Option {
	return func(f *Field) { f.caption = caption }
}

// WithPlaceholders sets the hint text of the begin and end inputs.
func WithPlaceholders(begin, end string) Option {
	return func(f *Field) {
		f.begin.SetPlaceholder(begin)
		f.end.SetPlaceholder(end)
	}
}

// Field owns a begin and an end DateInput and exposes them as one Range
// value with a single change notification.
//
// Setting a begin date later than the current end clears the end. Nothing
// checks the other direction: an end typed before begin is kept as is.
type Field struct {
	caption   string
	begin     DateInput
	end       DateInput
	listeners listenerList[ValueChangeEvent]
	shortcuts []*Shortcut

	// suppress > 0 while a batch update writes the slots; per-slot events
	// raised meanwhile are dropped and the batch fires one composite event.
	suppress int
}

// NewField builds a Field over two fresh headless inputs.
func NewField(opts ...Option) *Field {
	return NewFieldWithInputs(NewInput(), NewInput(), opts...)
}

// NewFieldWithInputs builds a Field over inputs supplied by a toolkit.
func NewFieldWithInputs(begin, end DateInput, opts ...Option) *Field {
	f := &Field{begin: begin, end: end}
	for _, opt := range opts {
		opt(f)
	}
	begin.OnChange(f.beginChanged)
	end.OnChange(f.endChanged)
	return f
}

func (f *Field) Caption() string { return f.caption }

func (f *Field) SetCaption(caption string) { f.caption = caption }

func (f *Field) BeginInput() DateInput { return f.begin }

func (f *Field) EndInput() DateInput { return f.end }

func (f *Field) BeginDate() civil.Date { return f.begin.Value() }

func (f *Field) EndDate() civil.Date { return f.end.Value() }

// SetBeginDate writes the begin slot. The composite event follows from the
// input's own change event.
func (f *Field) SetBeginDate(d civil.Date) { f.begin.SetValue(d) }

// SetEndDate writes the end slot.
func (f *Field) SetEndDate(d civil.Date) { f.end.SetValue(d) }

// Value returns a fresh snapshot of both slots.
func (f *Field) Value() Range {
	return Between(f.BeginDate(), f.EndDate())
}

// IsEmpty reports whether both slots are empty.
func (f *Field) IsEmpty() bool {
	return f.begin.IsEmpty() && f.end.IsEmpty()
}

// SetValue replaces both slots with r. See SetRange.
func (f *Field) SetValue(r Range) {
	f.SetRange(r.Begin(), r.End())
}

// SetRange replaces both slots and fires exactly one composite event whose
// old value is the range before the call. The pair is stored as given, even
// when end precedes begin.
func (f *Field) SetRange(begin, end civil.Date) {
	old := f.Value()
	f.batch(func() {
		f.begin.SetValue(begin)
		f.end.SetValue(end)
	})
	f.end.SetRangeStart(begin)
	log.Debugf("🐞 Range of %q set from %s to %s", f.caption, old.Format(""), f.Value().Format(""))
	f.fire(old, false)
}

// Clear empties both slots and fires exactly one composite event.
func (f *Field) Clear() {
	old := f.Value()
	f.batch(func() {
		f.begin.Clear()
		f.end.Clear()
	})
	f.end.SetRangeStart(civil.Date{})
	log.Debugf("🐞 Range of %q cleared", f.caption)
	f.fire(old, false)
}

// AddValueChangeListener registers fn for composite change events.
func (f *Field) AddValueChangeListener(fn func(ValueChangeEvent)) Registration {
	return f.listeners.add(fn)
}

func (f *Field) batch(fn func()) {
	f.suppress++
	defer func() { f.suppress-- }()
	fn()
}

func (f *Field) fire(old Range, user bool) {
	f.listeners.fire(ValueChangeEvent{Source: f, OldValue: old, UserOriginated: user})
}

func (f *Field) beginChanged(ev InputEvent) {
	if f.suppress > 0 {
		return
	}
	end := f.EndDate()
	old := Between(ev.OldValue, end)
	if !ev.Value.IsZero() && !end.IsZero() && end.Before(ev.Value) {
		f.batch(f.end.Clear)
		log.Debugf("🐞 End date %s of %q cleared, it preceded the new begin date %s", end, f.caption, ev.Value)
	}
	f.end.SetRangeStart(ev.Value)
	f.fire(old, ev.UserOriginated)
}

func (f *Field) endChanged(ev InputEvent) {
	if f.suppress > 0 {
		return
	}
	f.fire(Between(f.BeginDate(), ev.OldValue), ev.UserOriginated)
}
