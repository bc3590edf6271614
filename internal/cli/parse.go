package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/numcalc-backend/internal/numword"
)

type parseOptions struct {
	output string
}

type parseResult struct {
	Original string  `json:"original" yaml:"original"`
	Result   float64 `json:"result"   yaml:"result"`
}

func newParseCmd() *cobra.Command {
	opts := parseOptions{output: formatText}
	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Convert Russian number words to a number",
		Example: `  numcalc parse сто двадцать три
  numcalc parse "две тысячи" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.output); err != nil {
				return err
			}
			text := strings.Join(args, " ")
			n, err := numword.Parse(text)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, formatNumber(n), parseResult{Original: text, Result: n})
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", formatText, "output format: text, json or yaml")
	return cmd
}
