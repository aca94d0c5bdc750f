// Command setlist parses the tab-separated setlist log and builds books,
// exports and tagged recordings from it.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/setlist/internal/config"
	"github.com/handiism/setlist/internal/http"
	ioutils "github.com/handiism/setlist/internal/io"
	"github.com/handiism/setlist/internal/logging"
	"github.com/handiism/setlist/internal/model"
	"github.com/handiism/setlist/internal/progress"
	"github.com/handiism/setlist/internal/setlist"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = struct {
	cobra.Command
	configPath string
	dataPath   string
	logLevel   string
	logFormat  string
	verbose    bool

	fs       afero.Fs
	settings *config.Settings
	logger   *zap.Logger
}{
	Command: cobra.Command{
		Use:           "setlist",
		Short:         "Work with the Grateful Dead setlist log",
		SilenceUsage:  true,
		SilenceErrors: true,
	},
	fs: afero.NewOsFs(),
}

func init() {
	rootCmd.PersistentPreRunE = setup
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootCmd.configPath, "config", "c", "", "Path to a JSON or YAML settings file")
	flags.StringVarP(&rootCmd.dataPath, "data", "d", "", "Setlist TSV path or URL (overrides config)")
	flags.StringVar(&rootCmd.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&rootCmd.logFormat, "log-format", "", "Log format: console, json")
	flags.BoolVarP(&rootCmd.verbose, "verbose", "v", false, "Show verbose progress")
}

// setup loads settings, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	path := rootCmd.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.LoadFs(rootCmd.fs, path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	if rootCmd.dataPath != "" {
		settings.DataPath = rootCmd.dataPath
	}
	if rootCmd.logLevel != "" {
		settings.LogLevel = rootCmd.logLevel
	}
	if rootCmd.logFormat != "" {
		settings.LogFormat = rootCmd.logFormat
	}

	logger, err := logging.New(settings.LogLevel, settings.LogFormat, os.Stderr)
	if err != nil {
		return err
	}

	rootCmd.settings = settings
	rootCmd.logger = logger
	logger.Debug("settings loaded", zap.String("config", path), zap.String("data", settings.DataPath))
	return nil
}

// loadShows reads and parses the configured setlist log.
func loadShows(ctx context.Context) ([]*model.Show, error) {
	src := ioutils.NewSource(rootCmd.fs, http.NewClient())
	rows, err := src.ReadRows(ctx, rootCmd.settings.DataPath)
	if err != nil {
		return nil, err
	}
	shows, err := setlist.NewParser(rootCmd.logger).Parse(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rootCmd.settings.DataPath, err)
	}
	rootCmd.logger.Info("loaded shows", zap.Int("shows", len(shows)), zap.String("data", rootCmd.settings.DataPath))
	return shows, nil
}

// printProgress writes progress events to stdout. Verbose events go to the
// debug log instead unless --verbose is set.
func printProgress(event progress.Event) {
	if event.Level == progress.LevelVerbose && !rootCmd.verbose {
		if rootCmd.logger != nil {
			progress.Log(rootCmd.logger)(event)
		}
		return
	}

	prefix := ""
	switch event.Level {
	case progress.LevelError:
		prefix = "✗ "
	case progress.LevelWarning:
		prefix = "! "
	case progress.LevelSuccess:
		prefix = "✓ "
	default:
		prefix = "  "
	}

	fmt.Fprintln(rootCmd.OutOrStdout(), prefix+event.Message)
}

func success(format string, args ...any) {
	progress.Func(printProgress).Send(progress.LevelSuccess, format, args...)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if rootCmd.logger != nil {
		_ = rootCmd.logger.Sync()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "\nInterrupted, cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
