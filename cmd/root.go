package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X".
var Version = "dev"

// flags holds the values of the optional flags on the root command.
var flags generateFlags

// rootCmd generates the asset table. All positional arguments are optional and
// fall back to defaults from left to right.
var rootCmd = &cobra.Command{
	Use:   "appfiles-gen [component [source-dir [header [source]]]]",
	Short: "Generate a C lookup table for static web assets embedded in firmware",
	Long: `appfiles-gen scans a directory of static web assets and writes a C header
and source file describing them: one pair of _start/_end symbols per file and a
table of { uri, start, end, content_type } rows that an HTTP handler can search.

The bytes themselves are linked in by the firmware build's file embedding step;
this tool only predicts the symbol names that step produces.

Relative paths are resolved against the directory containing this executable
unless --base-dir is given.`,
	Args:          cobra.MaximumNArgs(4),
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, flags)
	},
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "YAML config file (default: appfiles.yaml in the base directory, if present)")
	f.StringVar(&flags.baseDir, "base-dir", "", "directory relative paths are resolved against (default: executable directory)")
	f.StringVar(&flags.onCollision, "on-collision", "", "what to do when two files map to the same symbol: error or warn")
	f.BoolVar(&flags.dryRun, "dry-run", false, "scan and print the asset table without writing files")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&flags.logFile, "log-file", "", "append logs to this file instead of stderr")
}
