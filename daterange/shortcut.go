package daterange

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// Shortcut is a named action on a Field, shown in the field's shortcut
// menu. A shortcut may carry child shortcuts, which form a sub-menu.
type Shortcut struct {
	id        string
	caption   string
	icon      string
	separator bool
	enabled   bool
	action    func(*Field)
	field     *Field
	children  []*Shortcut
}

func newShortcut(f *Field, caption, icon string, action func(*Field)) *Shortcut {
	return &Shortcut{
		id:      uuid.NewString(),
		caption: caption,
		icon:    icon,
		enabled: true,
		action:  action,
		field:   f,
	}
}

func newSeparator(f *Field) *Shortcut {
	return &Shortcut{id: uuid.NewString(), separator: true, field: f}
}

// AddShortcut appends a top-level shortcut. A nil action makes a plain
// heading that does nothing when triggered.
func (f *Field) AddShortcut(caption string, action func(*Field)) *Shortcut {
	return f.AddIconShortcut(caption, "", action)
}

// AddIconShortcut is AddShortcut with an icon glyph.
func (f *Field) AddIconShortcut(caption, icon string, action func(*Field)) *Shortcut {
	s := newShortcut(f, caption, icon, action)
	f.shortcuts = append(f.shortcuts, s)
	return s
}

// AddShortcutSeparator appends a separator to the top-level menu.
func (f *Field) AddShortcutSeparator() {
	f.shortcuts = append(f.shortcuts, newSeparator(f))
}

// Shortcuts returns the top-level menu entries, separators included.
func (f *Field) Shortcuts() []*Shortcut {
	return append([]*Shortcut(nil), f.shortcuts...)
}

// HasShortcuts reports whether the menu should be shown at all.
func (f *Field) HasShortcuts() bool {
	return len(f.shortcuts) > 0
}

// LookupShortcut finds a shortcut by caption anywhere in the menu tree. An
// exact case-insensitive match wins; otherwise the closest caption within
// a third of the query length is returned.
func (f *Field) LookupShortcut(caption string) (*Shortcut, bool) {
	query := strings.ToLower(strings.TrimSpace(caption))
	if query == "" {
		return nil, false
	}
	var (
		best     *Shortcut
		bestDist = len(query)/3 + 1
	)
	var walk func([]*Shortcut) *Shortcut
	walk = func(items []*Shortcut) *Shortcut {
		for _, s := range items {
			if s.separator {
				continue
			}
			name := strings.ToLower(strings.TrimSpace(s.caption))
			if name == query {
				return s
			}
			if d := levenshtein.ComputeDistance(name, query); d < bestDist {
				best, bestDist = s, d
			}
			if exact := walk(s.children); exact != nil {
				return exact
			}
		}
		return nil
	}
	if exact := walk(f.shortcuts); exact != nil {
		return exact, true
	}
	return best, best != nil
}

func (s *Shortcut) ID() string { return s.id }

func (s *Shortcut) Caption() string { return s.caption }

func (s *Shortcut) Icon() string { return s.icon }

func (s *Shortcut) IsSeparator() bool { return s.separator }

func (s *Shortcut) Enabled() bool { return s.enabled }

func (s *Shortcut) SetEnabled(enabled bool) { s.enabled = enabled }

// Children returns the sub-menu entries.
func (s *Shortcut) Children() []*Shortcut {
	return append([]*Shortcut(nil), s.children...)
}

// AddShortcut appends a sub-menu entry under s and returns it.
func (s *Shortcut) AddShortcut(caption string, action func(*Field)) *Shortcut {
	return s.AddIconShortcut(caption, "", action)
}

func (s *Shortcut) AddIconShortcut(caption, icon string, action func(*Field)) *Shortcut {
	child := newShortcut(s.field, caption, icon, action)
	s.children = append(s.children, child)
	return child
}

// AddSeparator appends a separator to the sub-menu under s.
func (s *Shortcut) AddSeparator() {
	s.children = append(s.children, newSeparator(s.field))
}

// Trigger runs the action against the owning field. It reports false for
// separators and disabled shortcuts.
func (s *Shortcut) Trigger() bool {
	if s.separator || !s.enabled {
		return false
	}
	if s.action != nil {
		s.action(s.field)
	}
	return true
}
