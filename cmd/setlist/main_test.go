package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/handiism/setlist/internal/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLog = "1970/02/13\tGrateful Dead\tFillmore East\t\tNew York\tNY\t(early)\n" +
	"I\tCasey Jones\n" +
	"1970/02/13\tGrateful Dead\tFillmore East\t\tNew York\tNY\t(late)\n" +
	"I\tDark Star\n" +
	"1977/05/07\tGrateful Dead\tBoston Garden\t\tBoston\tMA\t\n" +
	"1977/05/08\tGrateful Dead\tBarton Hall\tCornell University\tIthaca\tNY\t\n" +
	"I\tNew Minglewood Blues\n" +
	"E\tOne More Saturday Night\n"

func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	rootCmd.fs = fs

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTrimAndExportCommands(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/gd.tsv", []byte(testLog), 0644))

	out, err := run(t, fs, "--data", "/data/gd.tsv", "trim", "--out", "/data/trimmed.tsv")
	require.NoError(t, err)
	assert.Contains(t, out, "3 shows")

	trimmed, err := afero.ReadFile(fs, "/data/trimmed.tsv")
	require.NoError(t, err)
	assert.NotContains(t, string(trimmed), "Boston Garden")

	_, err = run(t, fs, "--data", "/data/gd.tsv", "export", "--out", "/data/gd.jsonl")
	require.NoError(t, err)

	out, err = run(t, fs, "--data", "/data/trimmed.tsv", "verify", "--jsonl", "/data/gd.jsonl")
	require.NoError(t, err)
	assert.Contains(t, out, "matches")
}

func TestSummaryCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/gd.tsv", []byte(testLog), 0644))

	out, err := run(t, fs, "--data", "/data/gd.tsv", "summary", "cornell")
	require.NoError(t, err)
	assert.Contains(t, out, "Barton Hall, Cornell University")
	assert.Contains(t, out, "1 shows")
}

func TestMalformedLogFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/bad.tsv", []byte("1977/05/08\tGrateful Dead\tBarton Hall\n"), 0644))

	_, err := run(t, fs, "--data", "/data/bad.tsv", "trim", "--out", "/data/out.tsv")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "malformed header row"), err.Error())

	exists, _ := afero.Exists(fs, "/data/out.tsv")
	assert.False(t, exists)
}

func TestPickShow(t *testing.T) {
	early := &model.Show{Date: "1970/02/13", FurtherID: "(early)"}
	late := &model.Show{Date: "1970/02/13", FurtherID: "(late)"}

	_, err := pickShow(nil, "1970/02/14", "")
	assert.Error(t, err)

	_, err = pickShow([]*model.Show{early, late}, "1970/02/13", "")
	assert.Error(t, err)

	got, err := pickShow([]*model.Show{early, late}, "1970/02/13", "(late)")
	require.NoError(t, err)
	assert.Same(t, late, got)

	got, err = pickShow([]*model.Show{early}, "1970/02/13", "")
	require.NoError(t, err)
	assert.Same(t, early, got)
}
