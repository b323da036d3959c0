// Package cli implements the linkup command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entremotivator/linkup/internal/chat"
	"github.com/entremotivator/linkup/internal/config"
	"github.com/entremotivator/linkup/internal/data"
	"github.com/entremotivator/linkup/internal/logging"
	"github.com/entremotivator/linkup/internal/sheets"
)

// Execute runs the root command.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

// app carries flag values and the loaded configuration across commands.
type app struct {
	configFile string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func newRootCmd(version string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "linkup",
		Short:         "Dashboard over a LinkedIn chat-history spreadsheet",
		Long:          "linkup reads a LinkedIn direct-message export from a Google Sheets worksheet\nand serves it as contact lists, conversation threads, and a searchable feed.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.load()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (json, console)")

	cmd.AddCommand(
		newServeCmd(a),
		newTUICmd(a),
		newContactsCmd(a),
		newStatsCmd(a),
	)

	return cmd
}

func (a *app) load() error {
	loader := config.NewLoader()
	if a.configFile != "" {
		loader.SetConfigFile(a.configFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}

	logging.Init(logging.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.EnableCaller,
	})

	a.cfg = cfg
	return nil
}

// buildProvider wires the record source, owner resolver, and snapshot
// provider shared by every data-facing command.
func (a *app) buildProvider(ctx context.Context) (*data.SheetProvider, *chat.Resolver, error) {
	if err := a.cfg.ValidateSource(); err != nil {
		return nil, nil, err
	}

	client, err := sheets.NewClient(ctx, sheets.Config{
		SpreadsheetID:   a.cfg.Source.SpreadsheetID,
		Worksheet:       a.cfg.Source.Worksheet,
		CredentialsFile: a.cfg.Source.CredentialsFile,
		CredentialsJSON: a.cfg.Source.CredentialsJSON,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init record source: %w", err)
	}

	resolver := chat.NewResolver(chat.Owner{
		Name:       a.cfg.Owner.Name,
		ProfileURL: a.cfg.Owner.ProfileURL,
	})

	provider := data.NewSheetProvider(client, resolver, data.WithTTL(a.cfg.Cache.TTL))
	return provider, resolver, nil
}
