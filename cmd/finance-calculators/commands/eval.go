package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type evalOutput struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Result     any    `json:"result" yaml:"result"`
}

func newEvalCommand(a *app) *cobra.Command {
	var (
		inputFile    string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "eval <identifier> [name=value ...]",
		Short: "Evaluate a calculator with the given inputs",
		Long: `Evaluate a calculator. Inputs are given as name=value pairs and/or a YAML
file of name: value entries; pairs on the command line win over the file.
Variables with defaults may be omitted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(outputFormat)
			if err != nil {
				return err
			}

			values, err := collectValues(inputFile, args[1:])
			if err != nil {
				return err
			}

			identifier := args[0]
			def, err := calculator.Default().Lookup(identifier)
			if err != nil {
				return err
			}

			result, err := calculator.Evaluate(def, values)
			if err != nil {
				if !calculator.IsValidationError(err) {
					return err
				}
				for _, fe := range calculator.FieldErrors(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", fe.Name, fe.Message)
				}
				return fmt.Errorf("invalid input for %s", identifier)
			}

			a.logger.Debug("calculator evaluated",
				zap.String("op", "commands.eval"),
				zap.String("identifier", identifier),
			)

			if format == constants.OutputFormatPretty {
				return printResult(cmd.OutOrStdout(), def, result)
			}
			out := evalOutput{Identifier: def.Identifier, Result: result.Value()}
			if result.IsNamed() {
				out.Result = result.Map()
			}
			return output.Structured(cmd.OutOrStdout(), format, out)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML file of input values")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format override: pretty, json, yaml")
	return cmd
}

// collectValues merges the optional YAML input file with name=value pairs.
func collectValues(inputFile string, pairs []string) (map[string]any, error) {
	values := make(map[string]any)

	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse input file %s: %w", inputFile, err)
		}
		if values == nil {
			values = make(map[string]any)
		}
	}

	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name=value, got %q", pair)
		}
		values[name] = value
	}
	return values, nil
}

func printResult(w io.Writer, def calculator.Definition, result calculator.Result) error {
	if !result.IsNamed() {
		return output.PrettyResult(w, def.Name, []output.Row{
			{Label: "Result", Value: calculator.FormatNumber.Format(result.Value())},
		})
	}

	rows := make([]output.Row, 0, len(result.Outputs()))
	for _, out := range result.Outputs() {
		label := out.Name
		display := calculator.FormatNumber
		if spec, ok := def.Output(out.Name); ok {
			if spec.Label != "" {
				label = spec.Label
			}
			display = spec.Format
		}
		rows = append(rows, output.Row{Label: label, Value: display.Format(out.Value)})
	}
	return output.PrettyResult(w, def.Name, rows)
}
