package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/incpath/incpath/cmd/flags"
	"github.com/incpath/incpath/cmd/resolve/formatters"
	"github.com/incpath/incpath/resolver"
)

type watchOptions struct {
	settings     flags.SettingsFlags
	outputFormat string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{
		outputFormat: formatters.OutputFormatText.String(),
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch for file changes and rerun include resolution",
		Long: `Watch the configured directories for C/C++ file changes, rerun the resolution
pass after each change, and reprint the report.

Examples:
  incpath watch -p src -s third_party`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	opts.settings.Register(cmd)
	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", opts.outputFormat,
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	formatter, err := formatters.NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	settings, err := opts.settings.Settings()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	printReport(cmd, formatter, settings)

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching for changes, press Ctrl+C to stop\n")

	return watchAndResolve(ctx, settings, func() {
		printReport(cmd, formatter, settings)
	})
}

func printReport(cmd *cobra.Command, formatter formatters.Formatter, settings resolver.Settings) {
	res := resolver.Compute(settings, nil)

	output, err := formatter.Format(res)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "format error: %v\n", err)
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), output)
}
