package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/numcalc-backend/internal/calc"
)

type calcOptions struct {
	output string
}

type calcResult struct {
	Num1      string  `json:"num1"      yaml:"num1"`
	Num2      string  `json:"num2"      yaml:"num2"`
	Operation string  `json:"operation" yaml:"operation"`
	Result    float64 `json:"result"    yaml:"result"`
}

func newCalcCmd() *cobra.Command {
	opts := calcOptions{output: formatText}
	cmd := &cobra.Command{
		Use:   "calc A OPERATION B",
		Short: "Apply add, subtract, multiply or divide to two operands",
		Long: `Each operand is a numeric literal or Russian number words.
Quote operands that contain spaces. Put negative literals after "--".`,
		Example: `  numcalc calc "двадцать пять" divide 5
  numcalc calc 1.5 multiply "три" -o yaml
  numcalc calc -- -4 subtract 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.output); err != nil {
				return err
			}
			a, op, b := args[0], args[1], args[2]
			res, err := calc.Evaluate(calc.Text(a), calc.Text(b), op)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, formatNumber(res), calcResult{
				Num1:      a,
				Num2:      b,
				Operation: op,
				Result:    res,
			})
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", formatText, "output format: text, json or yaml")
	return cmd
}
