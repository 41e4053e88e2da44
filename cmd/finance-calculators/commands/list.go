package commands

import (
	"io"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/output"
	"github.com/spf13/cobra"
)

type listEntry struct {
	Identifier  string `json:"identifier" yaml:"identifier"`
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Description string `json:"description" yaml:"description"`
}

func newListCommand(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available calculators in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(outputFormat)
			if err != nil {
				return err
			}

			defs := calculator.Default().List()
			if format == constants.OutputFormatPretty {
				return printTable(cmd.OutOrStdout(), defs)
			}

			entries := make([]listEntry, 0, len(defs))
			for _, def := range defs {
				entries = append(entries, listEntry{
					Identifier:  def.Identifier,
					Name:        def.Name,
					Category:    def.Category,
					Description: def.Description,
				})
			}
			return output.Structured(cmd.OutOrStdout(), format, entries)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format override: pretty, json, yaml")
	return cmd
}

func printTable(w io.Writer, defs []calculator.Definition) error {
	rows := make([][]string, 0, len(defs))
	for _, def := range defs {
		rows = append(rows, []string{def.Identifier, def.Name, def.Category})
	}
	return output.PrettyTable(w, []string{"IDENTIFIER", "NAME", "CATEGORY"}, rows)
}
