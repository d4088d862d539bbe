package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/jask/daterangefield/daterange"
	"github.com/jask/daterangefield/internal/config"
)

// App is the demo page around a single FieldView.
type App struct {
	cfg    config.Config
	view   *FieldView
	period string
	status string
	width  int
}

func New(cfg config.Config) *App {
	view := NewFieldView(cfg.UI.DateFormat,
		daterange.WithCaption(cfg.UI.Caption),
		daterange.WithPlaceholders(cfg.UI.BeginPlaceholder, cfg.UI.EndPlaceholder),
	)
	a := &App{cfg: cfg, view: view}
	a.period = view.Field().Value().String()
	view.Field().AddValueChangeListener(a.valueChanged)
	return a
}

// Field exposes the underlying field so callers can install shortcuts or
// set an initial range.
func (a *App) Field() *daterange.Field { return a.view.Field() }

func (a *App) Period() string { return a.period }

func (a *App) Status() string { return a.status }

func (a *App) valueChanged(ev daterange.ValueChangeEvent) {
	value := ev.Value()
	a.period = value.String()
	if value.IsEmpty() {
		a.status = "cleared"
	} else {
		a.status = value.Format(a.cfg.UI.DateFormat)
	}
	log.WithFields(log.Fields{
		"old":    ev.OldValue.Format(a.cfg.UI.DateFormat),
		"new":    value.Format(a.cfg.UI.DateFormat),
		"user":   ev.UserOriginated,
		"period": a.period,
	}).Info("range changed")
}

func (a *App) Init() tea.Cmd {
	return a.view.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.view.SetWidth(min(m.Width-2, 48))
		return a, nil
	case tea.KeyMsg:
		if b := a.view.Keys().Lookup(m.String(), scopeGlobal); b != nil && b.Action == actionQuit {
			return a, tea.Quit
		}
	}
	return a, a.view.Update(msg)
}

func (a *App) View() string {
	var status string
	switch {
	case a.view.Note() != "" && a.view.MenuOpen():
		status = statusErrStyle.Render(a.view.Note())
	case a.status != "":
		status = statusStyle.Render(a.status)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(a.view.Field().Caption()),
		"",
		a.view.View(),
		"",
		fmt.Sprintf("period %s", periodStyle.Render(a.period)),
		status,
	)
	if a.width > 0 {
		return lipgloss.NewStyle().MaxWidth(a.width).Render(body)
	}
	return body
}
