package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/zeck"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	Config string
	Shards int
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scan [N]",
		Short: "Scan for equilibria of the divergence series",
		Long: `Scan [0, N] for zeros of the cumulative divergence S and check each
against the Lucas boundary theorem. Boundary zeros are printed as
equilibria; zeros away from a boundary are printed as violations.
Violations are findings, not failures: the exit code stays 0.

N defaults to the configured max (10000 without a config file).

Example:
  zeck scan 20
  zeck scan --config scan.yaml --shards 8`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "YAML settings file")
	cmd.Flags().IntVar(&opts.Shards, "shards", 0, "parallel profile shards (0 = sequential)")

	return cmd
}

func runScan(opts *ScanOptions, args []string, cmd *cobra.Command) error {
	settings := DefaultScanSettings()
	if opts.Config != "" {
		var err error
		settings, err = LoadScanSettings(opts.Config)
		if err != nil {
			return err
		}
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bound %q is not an integer", args[0])
		}
		settings.Max = n
	}
	if opts.Shards > 0 {
		settings.Shards = opts.Shards
	}
	if settings.Verbose && !opts.Verbose {
		// The config file can opt into debug logging without the flag.
		slog.SetDefault(slog.New(
			tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
				Level:      slog.LevelDebug,
				TimeFormat: "15:04:05",
			}),
		))
	}

	slog.Debug("starting scan", "max", settings.Max, "shards", settings.Shards)

	var scanOpts []zeck.ScanOption
	if settings.Shards > 1 {
		scanOpts = append(scanOpts, zeck.WithShards(settings.Shards))
	}
	res, err := zeck.FindEquilibria(cmd.Context(), settings.Max, scanOpts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "equilibria in [0, %d]:\n", settings.Max)
	for _, p := range res.Points {
		fmt.Fprintf(out, "  n=%d  %d = L(%d)\n", p.N, p.N+1, p.LucasIndex)
	}
	if len(res.Violations) > 0 {
		fmt.Fprintln(out, "violations:")
		for _, v := range res.Violations {
			fmt.Fprintf(out, "  n=%d  %s\n", v.N, v.Reason)
		}
	}
	fmt.Fprintf(out, "%d equilibria, %d violations\n", len(res.Points), len(res.Violations))

	slog.Debug("scan complete", "points", len(res.Points), "violations", len(res.Violations))
	return nil
}
