// Package cli implements the bigcalc command tree.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/govalues/bignum"
)

// envPrefix prefixes the environment variables read by bigcalc,
// for example BIGCALC_SCALE or BIGCALC_LOG_LEVEL.
const envPrefix = "BIGCALC"

type app struct {
	v          *viper.Viper
	configFile string
	logger     *slog.Logger
}

// Main returns the root bigcalc command.
// Settings are resolved from flags, then BIGCALC_* environment variables,
// then the optional config file, then flag defaults.
func Main() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.Default(),
	}

	rootCmd := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision integer and decimal calculator",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	fs := rootCmd.PersistentFlags()
	fs.StringVarP(&a.configFile, "config", "c", "", "path to a YAML, JSON or TOML config file")
	fs.String("mode", "decimal", "number type of operands: decimal or int")
	fs.Int("scale", bignum.DefaultScale, "digits after the decimal point kept by decimal division")
	fs.Bool("round", false, "round decimal division half away from zero instead of truncating")
	fs.String("log-fmt", "text", "log format: text or json")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml", "json", "toml")

	if err := a.v.BindPFlags(fs); err != nil {
		panic(fmt.Sprintf("BindPFlags failed: %v", err))
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(a.evalCmd())
	rootCmd.AddCommand(a.factCmd())

	return rootCmd
}

// init reads the config file and configures logging.
func (a *app) init(cmd *cobra.Command) error {
	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %q: %w", a.configFile, err)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString("log-fmt"), a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.logger = logger
	slog.SetDefault(logger)

	if a.configFile != "" {
		a.logger.DebugContext(cmd.Context(), "loaded config", "path", a.v.ConfigFileUsed())
	}
	return nil
}
