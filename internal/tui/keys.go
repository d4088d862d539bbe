package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

const (
	scopeGlobal = "global"
	scopeInput  = "input"
	scopeMenu   = "menu"
)

const (
	actionQuit      Action = "quit"
	actionNextInput Action = "next_input"
	actionPrevInput Action = "prev_input"
	actionCommit    Action = "commit"
	actionRevert    Action = "revert"
	actionMenu      Action = "menu"
	actionClear     Action = "clear"
	actionUp        Action = "up"
	actionDown      Action = "down"
	actionSelect    Action = "select"
	actionClose     Action = "close"
)

// KeyRegistry resolves key names to actions per scope, falling back to the
// global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")

	reg(scopeInput, actionNextInput, []string{"tab"}, "next")
	reg(scopeInput, actionPrevInput, []string{"shift+tab"}, "prev")
	reg(scopeInput, actionCommit, []string{"enter"}, "set date")
	reg(scopeInput, actionRevert, []string{"esc"}, "revert")
	reg(scopeInput, actionMenu, []string{"ctrl+o"}, "shortcuts")
	reg(scopeInput, actionClear, []string{"ctrl+l"}, "clear")

	reg(scopeMenu, actionUp, []string{"up", "ctrl+p"}, "up")
	reg(scopeMenu, actionDown, []string{"down", "ctrl+n"}, "down")
	reg(scopeMenu, actionSelect, []string{"enter"}, "apply")
	reg(scopeMenu, actionClose, []string{"esc", "ctrl+o"}, "close")

	return r
}

// Register adds b to each of its scopes. Keys already bound in a scope keep
// their first binding.
func (r *KeyRegistry) Register(b Binding) {
	keys := normalizeKeyList(b.Keys)
	for _, scope := range b.Scopes {
		if r.indexByScope[scope] == nil {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		var free []string
		for _, k := range keys {
			if _, taken := r.indexByScope[scope][k]; !taken {
				free = append(free, k)
			}
		}
		if len(free) == 0 {
			continue
		}
		copyBinding := b
		copyBinding.Keys = free
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range free {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.indexByScope[scope][keyName]; b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.indexByScope[scopeGlobal][keyName]
	}
	return nil
}

// HelpBindings returns bubbles key bindings for scope followed by the
// global ones.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	if scope != scopeGlobal {
		items = append(items, r.BindingsForScope(scopeGlobal)...)
	}
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
