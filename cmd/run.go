package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mathmedha/medha/internal/app"
	"github.com/mathmedha/medha/internal/problemgen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	gen := e.cfg.Gen
	return app.Run(app.Options{
		Duration:     e.cfg.Duration,
		NewGenerator: func() problemgen.Generator { return problemgen.New(gen) },
		Events:       e.store.EventRepo(),
		Settings:     e.settings,
		Speaker:      e.speaker,
		Logger:       slog.Default(),
	})
}
