package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexshd/zeck"
)

// NewSeqCommand creates the seq command.
func NewSeqCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seq <fib|lucas> <n>",
		Short: "Print an exact sequence value",
		Long: `Print F(n) or L(n) exactly, at any index. Values are computed with
integer fast doubling; there is no precision ceiling.

Example:
  zeck seq fib 100
  zeck seq lucas 1000`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeq(args[0], args[1], cmd)
		},
	}
	return cmd
}

func runSeq(seq, arg string, cmd *cobra.Command) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("index %q is not an integer", arg)
	}

	var v fmt.Stringer
	switch seq {
	case "fib":
		v, err = zeck.Fibonacci(n)
	case "lucas":
		v, err = zeck.Lucas(n)
	default:
		return fmt.Errorf("unknown sequence %q: must be fib or lucas", seq)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
