// Package output provides utilities for formatting and displaying command
// results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Row is one labelled value of a pretty result.
type Row struct {
	Label string
	Value string
}

// PrettyTable writes a human-readable table with aligned columns.
func PrettyTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(header) > 0 {
		fmt.Fprintln(tw, strings.Join(header, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// PrettyResult writes a title followed by indented, aligned label/value rows.
func PrettyResult(w io.Writer, title string, rows []Row) error {
	if title != "" {
		fmt.Fprintln(w, title)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "  %s:\t%s\n", row.Label, row.Value)
	}
	return tw.Flush()
}

// Structured writes payload as indented JSON or YAML.
func Structured(w io.Writer, format string, payload any) error {
	switch format {
	case constants.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case constants.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported structured format %s", format)
}
