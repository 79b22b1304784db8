/*
Copyright © 2025 Daniel C. Brotsky
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// recordingsCmd represents the recordings command
var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "Administer captured voice recordings",
	Long:  `Commands that report on and maintain the on-disk voice recordings.`,
}

func init() {
	rootCmd.AddCommand(recordingsCmd)
}
