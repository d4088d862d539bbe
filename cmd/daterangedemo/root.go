package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jask/daterangefield/daterange"
	"github.com/jask/daterangefield/internal/config"
	"github.com/jask/daterangefield/internal/logging"
	"github.com/jask/daterangefield/internal/presets"
	"github.com/jask/daterangefield/internal/tui"
)

func newRootCmd() *cobra.Command {
	var preset string
	cmd := &cobra.Command{
		Use:           "daterangedemo",
		Short:         "Pick a date range in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			closer, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return fmt.Errorf("logging: %w", err)
			}
			defer closer.Close()

			app, err := newApp(cfg, preset)
			if err != nil {
				return err
			}
			if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run: %w", err)
			}
			log.Infof("exit with %s", app.Field().Value().Format(cfg.UI.DateFormat))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String("config", "", "config file (TOML)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "log file, empty discards logs")
	flags.StringVar(&preset, "preset", "", "apply a shortcut by caption before starting")
	return cmd
}

// newApp builds the demo page with the preset menu installed and applies
// preset when given.
func newApp(cfg config.Config, preset string) (*tui.App, error) {
	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Warnf("using local timezone, %q failed to load: %v", cfg.UI.Timezone, err)
		loc = time.Local
	}

	app := tui.New(cfg)
	presets.Register(app.Field(), daterange.Today(loc))

	if preset == "" {
		return app, nil
	}
	s, ok := app.Field().LookupShortcut(preset)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", preset)
	}
	if !s.Trigger() {
		return nil, fmt.Errorf("preset %q is not available", preset)
	}
	log.Infof("applied preset %q", s.Caption())
	return app, nil
}
