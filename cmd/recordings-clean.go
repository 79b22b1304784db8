/*
Copyright © 2025 Daniel C. Brotsky
*/
package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/whisper-project/donna.server.golang/platform"
	"github.com/whisper-project/donna.server.golang/storage"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove old recordings",
	Long: `Removes captured voice recordings older than the given number
of days. Recordings are never read back by the server, so the only
reason to keep them is the not-yet-built transcription pipeline.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.SetFlags(0)
		env, _ := cmd.Flags().GetString("env")
		days, _ := cmd.Flags().GetInt("days")
		if err := platform.PushConfig(env); err != nil {
			log.Fatalf("Can't load environment %q: %v", env, err)
		}
		defer platform.PopConfig()
		cleanRecordings(days)
	},
}

func init() {
	recordingsCmd.AddCommand(cleanCmd)
	cleanCmd.Args = cobra.NoArgs
	cleanCmd.Flags().StringP("env", "e", "development", "environment to clean")
	cleanCmd.Flags().IntP("days", "d", 30, "remove recordings older than this many days")
}

func cleanRecordings(days int) {
	cutoff := time.Now().AddDate(0, 0, -days)
	removed, err := storage.CleanRecordings(cutoff)
	if err != nil {
		log.Fatalf("Failed to clean recordings: %v", err)
	}
	log.Printf("Removed %d recordings older than %s.", removed, cutoff.Format("2006-01-02"))
}
