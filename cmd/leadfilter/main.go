package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leadfilter",
	Short: "Deduplicate lead records by id and email",
	Long: `leadfilter reads a JSON document of leads, keeps only the most
recently entered record per unique _id and then per unique email, and
writes the survivors as pretty-printed JSON.

Examples:
  # One-shot run with the default file names
  leadfilter process

  # One-shot run with explicit files
  leadfilter process --input leads.json --output filtered_leads_output.json

  # Run the HTTP API
  leadfilter serve`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
