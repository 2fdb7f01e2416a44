package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.Flags().Bool("dev", false, "Use the verbose developer logger")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log rejected headers")
	rootCmd.Flags().Bool("unsafe", false, "Store headers without validation")
	rootCmd.Flags().Bool("set", false, "Replace earlier values of a name instead of appending")
	rootCmd.Flags().Bool("wire", false, "Print headers in wire format instead of JSON")
	rootCmd.Flags().Int("capacity", 0, "Expected number of distinct header names")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hdrcheck [file...]",
	Short: "Validate HTTP header blocks",
	Long: `Reads "Name: value" lines from the given files or from stdin,
validates and normalizes them and prints the resulting header map as JSON
or, with --wire, as CRLF-terminated header lines.
Lines starting with SP or HTAB continue the previous header (obsolete line folding).`,
	SilenceUsage: true,
	RunE:         check,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
