package commands

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/govalues/fraction"
	"github.com/govalues/fraction/internal/config"
)

// Names of the global flags.
const (
	ConfigFlag    = "config"
	LogLevelFlag  = "log-level"
	PrecisionFlag = "precision"
)

// app is the state shared by all commands.
type app struct {
	cfg    config.Config
	logger zerolog.Logger

	// flags
	configPath string
	logLevel   string
	precision  int
}

// RootCommand constructs the root command with all subcommands.
func RootCommand() *cobra.Command {
	a := &app{logger: zerolog.Nop()}
	cmd := &cobra.Command{
		Use:          "fraction",
		Short:        "Exact rational arithmetic",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, ConfigFlag, "", "path to a TOML config file")
	cmd.PersistentFlags().StringVar(&a.logLevel, LogLevelFlag, "", "log level (trace, debug, info, warn, error, disabled)")
	cmd.PersistentFlags().IntVar(&a.precision, PrecisionFlag, config.AutoPrecision, "digits after the decimal point, -1 for exact")

	cmd.AddCommand(
		parseCommand(a),
		evalCommand(a),
	)
	return cmd
}

// setup loads the config, applies flag overrides and creates the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed(LogLevelFlag) {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed(PrecisionFlag) {
		cfg.Precision = a.precision
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	out := zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	a.logger = zerolog.New(out).Level(cfg.Level()).With().Timestamp().Logger()
	a.logger.Debug().
		Str("config", a.configPath).
		Str("log_level", cfg.LogLevel).
		Int("precision", cfg.Precision).
		Int("vars", len(cfg.Vars)).
		Msg("loaded config")
	return nil
}

// decimal renders f with the configured precision.
func (a *app) decimal(f fraction.Fraction) string {
	if a.cfg.Precision == config.AutoPrecision {
		return fmt.Sprintf("%f", f)
	}
	return fmt.Sprintf("%.*f", a.cfg.Precision, f)
}
