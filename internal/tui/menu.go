package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/daterangefield/daterange"
)

type menuItem struct {
	ID       string
	Label    string
	Section  int
	Search   string
	Shortcut *daterange.Shortcut
}

type menuAction int

const (
	menuActionNone menuAction = iota
	menuActionMoved
	menuActionSelected
	menuActionCancelled
)

type menuResult struct {
	Action menuAction
	Item   menuItem
}

// shortcutMenu is a filterable list over a field's shortcut tree. Child
// shortcuts are listed after their parent as "parent › child"; separators
// start a new section.
type shortcutMenu struct {
	items    []menuItem
	filtered []menuItem
	sections []int
	query    string
	cursor   int
	width    int
}

func newShortcutMenu(f *daterange.Field) *shortcutMenu {
	m := &shortcutMenu{width: 32}
	m.SetItems(flattenShortcuts(f.Shortcuts()))
	return m
}

func flattenShortcuts(roots []*daterange.Shortcut) []menuItem {
	var out []menuItem
	section := 0
	var walk func(list []*daterange.Shortcut, prefix string)
	walk = func(list []*daterange.Shortcut, prefix string) {
		for _, s := range list {
			if s.IsSeparator() {
				section++
				continue
			}
			label := s.Caption()
			if prefix != "" {
				label = prefix + " › " + label
			}
			out = append(out, menuItem{
				ID:       s.ID(),
				Label:    label,
				Section:  section,
				Search:   label,
				Shortcut: s,
			})
			walk(s.Children(), label)
		}
	}
	walk(roots, "")
	return out
}

func (m *shortcutMenu) Query() string {
	if m == nil {
		return ""
	}
	return m.query
}

func (m *shortcutMenu) Cursor() int {
	if m == nil {
		return 0
	}
	return m.cursor
}

func (m *shortcutMenu) Items() []menuItem {
	if m == nil {
		return nil
	}
	return append([]menuItem(nil), m.filtered...)
}

func (m *shortcutMenu) SetItems(items []menuItem) {
	if m == nil {
		return
	}
	m.items = append([]menuItem(nil), items...)
	m.sections = m.sections[:0]
	seen := make(map[int]bool)
	for _, it := range m.items {
		if !seen[it.Section] {
			seen[it.Section] = true
			m.sections = append(m.sections, it.Section)
		}
	}
	m.rebuildFiltered()
}

func (m *shortcutMenu) SetQuery(q string) {
	if m == nil {
		return
	}
	m.query = q
	m.rebuildFiltered()
}

func (m *shortcutMenu) SetWidth(w int) {
	if m != nil && w > 8 {
		m.width = w
	}
}

func (m *shortcutMenu) CursorUp() {
	if m != nil && m.cursor > 0 {
		m.cursor--
	}
}

func (m *shortcutMenu) CursorDown() {
	if m == nil {
		return
	}
	if m.cursor < len(m.filtered)-1 {
		m.cursor++
	}
}

func (m *shortcutMenu) CurrentItem() (menuItem, bool) {
	if m == nil || len(m.filtered) == 0 {
		return menuItem{}, false
	}
	idx := min(max(m.cursor, 0), len(m.filtered)-1)
	return m.filtered[idx], true
}

// HandleKey applies one key press. Navigation keys are resolved through
// the menu scope of keys; other printable keys edit the filter query.
func (m *shortcutMenu) HandleKey(keys *KeyRegistry, keyName string) menuResult {
	if m == nil {
		return menuResult{}
	}
	var action Action
	if b := keys.Lookup(keyName, scopeMenu); b != nil {
		action = b.Action
	}
	switch action {
	case actionUp:
		before := m.cursor
		m.CursorUp()
		if m.cursor != before {
			return menuResult{Action: menuActionMoved}
		}
		return menuResult{}
	case actionDown:
		before := m.cursor
		m.CursorDown()
		if m.cursor != before {
			return menuResult{Action: menuActionMoved}
		}
		return menuResult{}
	case actionSelect:
		item, ok := m.CurrentItem()
		if !ok {
			return menuResult{}
		}
		return menuResult{Action: menuActionSelected, Item: item}
	case actionClose:
		return menuResult{Action: menuActionCancelled}
	}
	switch {
	case keyName == "backspace":
		if len(m.query) > 0 {
			m.SetQuery(m.query[:len(m.query)-1])
		}
	case isPrintableASCIIKey(keyName):
		m.SetQuery(m.query + keyName)
	}
	return menuResult{}
}

func (m *shortcutMenu) View() string {
	if m == nil {
		return ""
	}
	inner := m.width - 4
	var b strings.Builder
	if m.query != "" {
		b.WriteString(hintStyle.Render("filter: " + m.query))
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(hintStyle.Render("no matching shortcuts"))
		return menuStyle.Width(m.width).Render(b.String())
	}
	lastSection := m.filtered[0].Section
	for i, item := range m.filtered {
		if item.Section != lastSection {
			b.WriteString(menuRuleStyle.Render(strings.Repeat("─", inner)))
			b.WriteString("\n")
			lastSection = item.Section
		}
		label := item.Label
		if icon := item.Shortcut.Icon(); icon != "" {
			label = icon + " " + label
		}
		label = ansi.Truncate(label, inner-2, "…")
		switch {
		case i == m.cursor:
			b.WriteString(menuCursorStyle.Render("▶ " + label))
		case !item.Shortcut.Enabled():
			b.WriteString("  " + menuDisabledStyle.Render(label))
		default:
			b.WriteString("  " + label)
		}
		if i < len(m.filtered)-1 {
			b.WriteString("\n")
		}
	}
	return menuStyle.Width(m.width).Render(b.String())
}

type scoredMenuItem struct {
	item  menuItem
	score int
	index int
}

func (m *shortcutMenu) rebuildFiltered() {
	q := strings.TrimSpace(m.query)
	bySection := make(map[int][]scoredMenuItem)
	for idx, item := range m.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := fuzzyMatchScore(search, q)
		if !matched {
			continue
		}
		bySection[item.Section] = append(bySection[item.Section], scoredMenuItem{item: item, score: score, index: idx})
	}

	out := make([]menuItem, 0, len(m.items))
	for _, section := range m.sections {
		scored := bySection[section]
		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].score != scored[j].score {
				return scored[i].score > scored[j].score
			}
			return scored[i].index < scored[j].index
		})
		for _, row := range scored {
			out = append(out, row.item)
		}
	}
	m.filtered = out

	if maxIdx := len(m.filtered) - 1; maxIdx < 0 {
		m.cursor = 0
	} else if m.cursor > maxIdx {
		m.cursor = maxIdx
	}
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
