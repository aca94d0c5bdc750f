package tsv

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReader_ReadAll(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "header and continuation rows",
			input: "1977/05/08\tGD\tBarton Hall\t\tIthaca\tNY\t\nI\tNew Minglewood Blues\n\tLoser\n",
			want: [][]string{
				{"1977/05/08", "GD", "Barton Hall", "", "Ithaca", "NY", ""},
				{"I", "New Minglewood Blues"},
				{"", "Loser"},
			},
		},
		{
			name:  "trailing empty fields are kept",
			input: "a\t\t\n",
			want:  [][]string{{"a", "", ""}},
		},
		{
			name:  "blank lines are skipped",
			input: "I\tBertha\n\n\tGood Lovin'\n",
			want:  [][]string{{"I", "Bertha"}, {"", "Good Lovin'"}},
		},
		{
			name:  "quoted field with tab",
			input: "E\t\"Brokedown\tPalace\"\n",
			want:  [][]string{{"E", "Brokedown\tPalace"}},
		},
		{
			name:  "bare quotes inside a field",
			input: "\tThe \"Other\" One\n",
			want:  [][]string{{"", "The \"Other\" One"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewReader(strings.NewReader(tt.input)).ReadAll()
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadAll() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	rows := [][]string{
		{"1977/05/08", "GD", "Barton Hall", "", "Ithaca", "NY", ""},
		{"I", "New Minglewood Blues"},
		{"", "Brokedown\tPalace"},
	}

	var sb strings.Builder
	if err := NewWriter(&sb).WriteAll(rows); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	got, err := NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
