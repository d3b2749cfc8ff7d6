package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/handiism/book-catalog/internal/config"
	"github.com/handiism/book-catalog/internal/logging"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	source     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "bookshelf",
		Short: "Browse the book catalog from the command line",
		Long: `bookshelf fetches the books document, resolves cover images and prints
the catalog. Use bookshelf-tui for the interactive view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a JSON or YAML config file")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.source, "source", "", "URL of the books document (overrides config)")

	cmd.AddCommand(newListCmd(flags), newConfigCmd(flags))
	return cmd
}

// settings resolves the effective settings: config.Resolve, then flags.
func (f *rootFlags) settings() (*config.Settings, error) {
	settings, err := config.Resolve(f.configPath)
	if err != nil {
		return nil, err
	}

	if f.source != "" {
		settings.SourceURL = f.source
	}
	if f.logLevel != "" {
		settings.LogLevel = f.logLevel
	}
	return settings, settings.Validate()
}

func (f *rootFlags) logger(cmd *cobra.Command, settings *config.Settings) (*slog.Logger, error) {
	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(cmd.ErrOrStderr(), level), nil
}
