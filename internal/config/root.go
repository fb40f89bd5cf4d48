package config

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Root struct {
	// Flags
	Debug        bool
	OutputFormat OutputFormat

	// Runtime values
	Log *slog.Logger
}

func (c *Root) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().VarP(&c.OutputFormat, "output", "o", "output format (json|yaml)")
	cmd.PersistentFlags().BoolVar(&c.Debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().String("profiles-file", "", "profile store file (default is $HOME/.trieve/profiles.yaml)")

	_ = viper.BindPFlag("profiles_file", cmd.PersistentFlags().Lookup("profiles-file"))
}

func (c *Root) Init() {
	cobra.CheckErr(c.init())
}

func (c *Root) init() error {
	viper.SetEnvPrefix("trieve")
	viper.AutomaticEnv()
	return nil
}

// Logger lazily builds the process logger. Debug output goes to stderr
// so that -o json/yaml stays parseable on stdout.
func (c *Root) Logger() *slog.Logger {
	if c.Log == nil {
		level := slog.LevelInfo
		if c.Debug {
			level = slog.LevelDebug
		}
		c.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
	}
	return c.Log
}
