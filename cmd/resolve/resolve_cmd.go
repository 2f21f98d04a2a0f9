package resolve

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/incpath/incpath/cmd/flags"
	"github.com/incpath/incpath/cmd/resolve/formatters"
	"github.com/incpath/incpath/pathutil"
	"github.com/incpath/incpath/resolver"
)

type resolveOptions struct {
	settings     flags.SettingsFlags
	outputFormat string
	quiet        bool
}

// Cmd represents the resolve command.
var Cmd = NewCommand()

// NewCommand returns a new resolve command instance.
func NewCommand() *cobra.Command {
	opts := &resolveOptions{
		outputFormat: formatters.OutputFormatText.String(),
	}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Compute the include directories a source tree needs",
		Long: `Compute the minimal set of directories to add to the include search path so
that every #include in the parsed sources resolves, and report includes that
are unresolvable or ambiguous.

Examples:
  incpath resolve -p src                      # parse ./src, no search pool
  incpath resolve -p src -s third_party       # resolve against third_party
  incpath resolve -p src -I include -f json   # machine-readable report
  incpath resolve -c incpath.yaml             # directories from a config file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts)
		},
	}

	opts.settings.Register(cmd)
	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", opts.outputFormat,
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress per-file progress output")

	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions) error {
	formatter, err := formatters.NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	settings, err := opts.settings.Settings()
	if err != nil {
		return err
	}

	var progress resolver.ProgressFunc
	if !opts.quiet {
		progress = func(current, total int, filePath string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] %s\n", current, total, pathutil.Display(filePath))
		}
	}

	res := resolver.Compute(settings, progress)

	output, err := formatter.Format(res)
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}
