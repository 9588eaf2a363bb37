package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathmedha/medha/internal/config"
	"github.com/mathmedha/medha/internal/logging"
	"github.com/mathmedha/medha/internal/settings"
	"github.com/mathmedha/medha/internal/speech"
	"github.com/mathmedha/medha/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "medha",
	Short: "Times-table space journey for kids",
	Long: "Math Medha: answer multiplication questions against the clock and " +
		"fill the sky with badges, golden stars and planets.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("db", "", "Path to SQLite database file (overrides MEDHA_DB env var)")
	f.Duration("duration", 0, "Journey length, e.g. 45s (overrides MEDHA_DURATION)")
	f.Int("min", 0, "Smallest factor (overrides MEDHA_MIN_FACTOR)")
	f.Int("max", 0, "Largest factor (overrides MEDHA_MAX_FACTOR)")
	f.Int("table", 0, "Practise a single times table (overrides MEDHA_TABLE)")
	f.Bool("mute", false, "Start with the voice muted")
	f.Bool("no-keypad", false, "Start with the on-screen keypad hidden")
	f.String("log-level", "", "Log level: debug, info, warn, error (overrides MEDHA_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds the config from defaults, .env, the environment and
// finally any flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("db") {
		cfg.DBPath, _ = f.GetString("db")
	}
	if f.Changed("duration") {
		cfg.Duration, _ = f.GetDuration("duration")
	}
	if f.Changed("min") {
		cfg.Gen.MinFactor, _ = f.GetInt("min")
	}
	if f.Changed("max") {
		cfg.Gen.MaxFactor, _ = f.GetInt("max")
	}
	if f.Changed("table") {
		cfg.Gen.Table, _ = f.GetInt("table")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db or MEDHA_DB first,
// then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openLog points slog at the log file. Nothing may reach stderr while the
// TUI owns the terminal, so any failure installs a discarding logger.
func openLog(level slog.Level) io.Closer {
	path, err := logging.DefaultPath()
	if err != nil {
		logging.Discard()
		return nil
	}
	closer, err := logging.Open(path, level)
	if err != nil {
		logging.Discard()
		return nil
	}
	return closer
}

// env is everything a command needs once setup has run.
type env struct {
	cfg      config.Config
	store    *store.Store
	settings *settings.Settings
	speaker  speech.Speaker

	closers []io.Closer
	cancels []func()
}

func (e *env) Close() {
	for _, c := range e.cancels {
		c()
	}
	if e.speaker != nil {
		e.speaker.Cancel()
	}
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			slog.Warn("close", "err", err)
		}
	}
}

// setup loads config, opens the log file and the store, and restores the
// saved player settings.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg}

	level, _ := cfg.Level()
	if closer := openLog(level); closer != nil {
		e.closers = append(e.closers, closer)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.store = st
	e.closers = append(e.closers, st)

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	state, err := settings.Load(ctx, st.SnapshotRepo(), cfg.Settings)
	if err != nil {
		slog.Warn("using default settings", "err", err)
	}
	f := cmd.Flags()
	if f.Changed("mute") {
		state.Muted, _ = f.GetBool("mute")
	}
	if f.Changed("no-keypad") {
		hide, _ := f.GetBool("no-keypad")
		state.KeypadVisible = !hide
	}
	e.settings = settings.New(state)
	e.cancels = append(e.cancels, settings.Persist(e.settings, st.SnapshotRepo()))

	sp := speech.NewCommandSpeaker()
	if sp.Available() {
		slog.Info("speech engine found", "engine", sp.Engine())
	} else {
		slog.Info("no speech engine found; questions will not be read aloud")
	}
	e.speaker = sp

	slog.Info("medha starting",
		"db", dbPath,
		"duration", cfg.Duration,
		"min_factor", cfg.Gen.MinFactor,
		"max_factor", cfg.Gen.MaxFactor,
		"table", cfg.Gen.Table,
	)
	return e, nil
}
