package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/zeck"
)

// DecomposeOptions holds flags for the decompose command.
type DecomposeOptions struct {
	*RootOptions
	Lucas bool
}

// NewDecomposeCommand creates the decompose command.
func NewDecomposeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecomposeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "decompose <n>",
		Short: "Decompose an integer over the Fibonacci or Lucas basis",
		Long: `Print the Zeckendorf representation of n, or with --lucas the greedy
Lucas decomposition. Input is parsed as an arbitrary-precision natural.

Example:
  zeck decompose 100
  zeck decompose --lucas 100`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompose(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Lucas, "lucas", false, "use the Lucas basis")

	return cmd
}

func runDecompose(opts *DecomposeOptions, arg string, cmd *cobra.Command) error {
	num, err := zeck.ParseNatural(arg)
	if err != nil {
		return err
	}
	n, _ := num.Int()

	var (
		rep    *zeck.Representation
		letter string
	)
	if opts.Lucas {
		rep, err = zeck.DecomposeLucas(n)
		letter = "L"
	} else {
		rep, err = zeck.DecomposeZeckendorf(n)
		letter = "F"
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rep.Count == 0 {
		fmt.Fprintf(out, "%s = (empty)\n", rep.N)
		return nil
	}

	values := make([]string, rep.Count)
	terms := make([]string, rep.Count)
	for i := range rep.Indices {
		values[i] = rep.Values[i].String()
		terms[i] = fmt.Sprintf("%s(%d)", letter, rep.Indices[i])
	}
	fmt.Fprintf(out, "%s = %s\n", rep.N, strings.Join(values, " + "))
	fmt.Fprintf(out, "%s = %s\n", rep.N, strings.Join(terms, " + "))
	return nil
}
