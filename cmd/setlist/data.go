package main

import (
	"bytes"
	"fmt"

	"github.com/handiism/setlist/internal/http"
	ioutils "github.com/handiism/setlist/internal/io"
	"github.com/handiism/setlist/internal/setlist"
	"github.com/spf13/cobra"
)

func init() {
	trimCmd.RunE = trimLog
	trimCmd.Flags().StringVarP(&trimCmd.out, "out", "o", "", "Trimmed TSV path (default from config)")
	rootCmd.AddCommand(&trimCmd.Command)

	exportCmd.RunE = exportJSONL
	exportCmd.Flags().StringVarP(&exportCmd.out, "out", "o", "", "JSONL path (default from config)")
	rootCmd.AddCommand(&exportCmd.Command)

	verifyCmd.RunE = verifyJSONL
	verifyCmd.Flags().StringVar(&verifyCmd.jsonl, "jsonl", "", "JSONL path to compare (default from config)")
	rootCmd.AddCommand(&verifyCmd.Command)

	fetchCmd.RunE = fetchLog
	fetchCmd.Flags().StringVarP(&fetchCmd.out, "out", "o", "", "Local path (default: data path from config)")
	rootCmd.AddCommand(&fetchCmd.Command)
}

var trimCmd = struct {
	cobra.Command
	out string
}{
	Command: cobra.Command{
		Use:   "trim",
		Short: "Rewrite the log keeping only rows of non-empty shows",
		Args:  cobra.NoArgs,
	},
}

var exportCmd = struct {
	cobra.Command
	out string
}{
	Command: cobra.Command{
		Use:   "export",
		Short: "Write the parsed shows as JSON lines",
		Args:  cobra.NoArgs,
	},
}

var verifyCmd = struct {
	cobra.Command
	jsonl string
}{
	Command: cobra.Command{
		Use:   "verify",
		Short: "Check a JSONL export against the TSV log",
		Args:  cobra.NoArgs,
	},
}

var fetchCmd = struct {
	cobra.Command
	out string
}{
	Command: cobra.Command{
		Use:   "fetch <url>",
		Short: "Download a remote setlist log",
		Args:  cobra.ExactArgs(1),
	},
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func trimLog(cmd *cobra.Command, args []string) error {
	out := orDefault(trimCmd.out, rootCmd.settings.TrimmedPath)

	src := ioutils.NewSource(rootCmd.fs, http.NewClient())
	in, err := src.Open(cmd.Context(), rootCmd.settings.DataPath)
	if err != nil {
		return err
	}
	defer in.Close()

	// A malformed log must leave the output untouched.
	var buf bytes.Buffer
	stats, err := setlist.NewParser(rootCmd.logger).Trim(in, &buf)
	if err != nil {
		return fmt.Errorf("%s: %w", rootCmd.settings.DataPath, err)
	}
	if err := ioutils.WriteFile(rootCmd.fs, out, buf.Bytes()); err != nil {
		return err
	}

	success("Wrote %s: %d shows, %d of %d rows kept", out, stats.Shows, stats.RowsOut, stats.RowsIn)
	return nil
}

func exportJSONL(cmd *cobra.Command, args []string) error {
	shows, err := loadShows(cmd.Context())
	if err != nil {
		return err
	}
	out := orDefault(exportCmd.out, rootCmd.settings.JSONLPath)

	var buf bytes.Buffer
	if err := setlist.WriteJSONL(&buf, shows); err != nil {
		return err
	}
	if err := ioutils.WriteFile(rootCmd.fs, out, buf.Bytes()); err != nil {
		return err
	}

	success("Exported %d shows to %s", len(shows), out)
	return nil
}

func verifyJSONL(cmd *cobra.Command, args []string) error {
	shows, err := loadShows(cmd.Context())
	if err != nil {
		return err
	}
	path := orDefault(verifyCmd.jsonl, rootCmd.settings.JSONLPath)

	f, err := rootCmd.fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	exported, err := setlist.ReadJSONL(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := setlist.Verify(shows, exported); err != nil {
		return fmt.Errorf("%s does not match %s: %w", path, rootCmd.settings.DataPath, err)
	}

	success("%s matches %s (%d shows)", path, rootCmd.settings.DataPath, len(shows))
	return nil
}

func fetchLog(cmd *cobra.Command, args []string) error {
	url := args[0]
	if !ioutils.IsURL(url) {
		return fmt.Errorf("not an http(s) URL: %s", url)
	}
	out := fetchCmd.out
	if out == "" {
		out = rootCmd.settings.DataPath
		if ioutils.IsURL(out) {
			return fmt.Errorf("configured data path is a URL, pass --out")
		}
	}

	n, err := http.NewClient().DownloadFile(cmd.Context(), url, rootCmd.fs, out, func(written, total int64) {
		if rootCmd.verbose && total > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "\r%.1f%%", float64(written)/float64(total)*100)
		}
	})
	if rootCmd.verbose {
		fmt.Fprintln(cmd.ErrOrStderr())
	}
	if err != nil {
		return err
	}

	success("Downloaded %s to %s (%d bytes)", url, out, n)
	return nil
}
