package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/incpath/incpath/cmd/graph"
	"github.com/incpath/incpath/cmd/resolve"
	"github.com/incpath/incpath/cmd/watch"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "incpath",
	Short: "Compute the include directories a C/C++ source tree needs",
	Long: `Incpath scans C/C++ sources for #include directives and computes the minimal
set of directories to add to the include search path so that every include
resolves. Includes that cannot be resolved, or that are ambiguous across
several candidate directories, are reported with file and line evidence.

Use 'incpath --help' to see all available commands, or 'incpath <command> --help'
for detailed information about a specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(graph.Cmd)
	rootCmd.AddCommand(watch.Cmd)

	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	rootCmd.Version = version

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
}
