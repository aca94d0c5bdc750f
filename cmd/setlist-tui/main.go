// Command setlist-tui browses the setlist log in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/setlist/internal/config"
	"github.com/handiism/setlist/internal/http"
	ioutils "github.com/handiism/setlist/internal/io"
	"github.com/handiism/setlist/internal/logging"
	"github.com/handiism/setlist/internal/model"
	"github.com/handiism/setlist/internal/setlist"
	"github.com/handiism/setlist/internal/tui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = struct {
	cobra.Command
	configPath string
	dataPath   string
	logFile    string
}{
	Command: cobra.Command{
		Use:           "setlist-tui",
		Short:         "Browse the Grateful Dead setlist log",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	},
}

func init() {
	rootCmd.RunE = browse
	flags := rootCmd.Flags()
	flags.StringVarP(&rootCmd.configPath, "config", "c", "", "Path to a JSON or YAML settings file")
	flags.StringVarP(&rootCmd.dataPath, "data", "d", "", "Setlist TSV path or URL (overrides config)")
	flags.StringVar(&rootCmd.logFile, "log-file", "", "Write logs to this file (the screen is owned by the UI)")
}

func browse(cmd *cobra.Command, args []string) error {
	path := rootCmd.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if rootCmd.dataPath != "" {
		settings.DataPath = rootCmd.dataPath
	}

	logger := zap.NewNop()
	if rootCmd.logFile != "" {
		f, err := os.OpenFile(rootCmd.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		if logger, err = logging.New(settings.LogLevel, logging.FormatJSON, f); err != nil {
			return err
		}
		defer logger.Sync()
	}

	src := ioutils.NewSource(afero.NewOsFs(), http.NewClient())
	load := func(ctx context.Context) ([]*model.Show, error) {
		rows, err := src.ReadRows(ctx, settings.DataPath)
		if err != nil {
			return nil, err
		}
		shows, err := setlist.NewParser(logger).Parse(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", settings.DataPath, err)
		}
		logger.Info("loaded shows", zap.Int("shows", len(shows)), zap.String("data", settings.DataPath))
		return shows, nil
	}

	return tui.Run(cmd.Context(), settings.DataPath, load)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
