package commands

import (
	"fmt"
	"log/slog"

	"github.com/jmylchreest/keylab/internal/config"
	"github.com/jmylchreest/keylab/internal/events"
	"github.com/jmylchreest/keylab/internal/utils"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "keylabctl",
		Short:         "Library catalog and light device exercises",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := appFromCmd(cmd); ok {
				return nil
			}
			app, err := setupApp(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(withApp(cmd.Context(), app))
			return nil
		},
	}

	// Add global flags
	cmd.PersistentFlags().String("config", "", "Path to config file")
	cmd.PersistentFlags().String("log-level", config.LogLevelInfo, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", config.LogFormatText, "Log format (text, json)")

	// Add commands
	cmd.AddCommand(newVersionCommand(version, commit, buildDate))
	cmd.AddCommand(NewLibraryCommand())
	cmd.AddCommand(NewDeviceCommand())

	return cmd
}

// setupApp loads the configuration, applies flag overrides and builds the logger
func setupApp(cmd *cobra.Command) (*App, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.ClientConfigFilename, configFile)
	if err != nil {
		logger := utils.SetupErrorLogger()
		logger.Error("failed to load configuration", "error", err)
		return nil, err
	}

	// Flags take precedence over the config file when set explicitly
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.Logging.Level = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-format"); f != nil && f.Changed {
		cfg.Logging.Format = f.Value.String()
	}

	logger, err := utils.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		utils.SetupErrorLogger().Error("invalid logging configuration", "error", err)
		return nil, err
	}
	slog.SetDefault(logger)

	bus := events.NewBus()
	bus.Subscribe(func(e events.Event) {
		logger.Debug("event", "id", e.ID, "type", e.Type, "data", string(e.Data))
	})

	return &App{Config: cfg, Logger: logger, Bus: bus}, nil
}

// newVersionCommand creates the version command
func newVersionCommand(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Version:    %s\n", version)
			fmt.Printf("Commit:     %s\n", commit)
			fmt.Printf("Build Date: %s\n", buildDate)
		},
	}
}

