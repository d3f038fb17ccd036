package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// getwd is swapped out in tests to exercise the fatal path.
var getwd = os.Getwd

// workingDirError reports that the current directory could not be resolved.
// It is the only fatal condition.
type workingDirError struct {
	err error
}

func (e *workingDirError) Error() string {
	return fmt.Sprintf("error getting current directory: %v", e.err)
}

func (e *workingDirError) Unwrap() error { return e.err }

var rootCmd = &cobra.Command{
	Use:   "dirsum",
	Short: "Print a one-line summary of the current directory.",
	Long: `dirsum prints the current directory's absolute path, its disk usage
(hidden directories excluded), the checked-out git branch, and a best guess
at the project type based on well-known marker files.`,
	// Arguments and flags (including --help) are ignored; every run prints the summary.
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true, // main prints the single failure line
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := getwd()
		if err != nil {
			return &workingDirError{err: err}
		}
		return printSummary(cmd.OutOrStdout(), summarize(dir))
	},
}

func init() {
	cobra.OnInitialize(initConfig)
}

// summarize gathers every field for dir. The three lookups are independent
// and never fail; each falls back to its own default.
func summarize(dir string) Summary {
	return Summary{
		Path:        dir,
		Size:        formatSize(calculateFolderSize(dir)),
		Branch:      gitBranch(dir),
		ProjectType: detectProjectType(dir),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var wdErr *workingDirError
		if errors.As(err, &wdErr) {
			printError(os.Stderr, "Error getting current directory", wdErr.err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
