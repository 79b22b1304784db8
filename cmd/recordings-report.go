/*
Copyright © 2025 Daniel C. Brotsky
*/
package cmd

import (
	"fmt"
	"log"
	"slices"

	"github.com/spf13/cobra"

	"github.com/whisper-project/donna.server.golang/platform"
	"github.com/whisper-project/donna.server.golang/storage"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report on captured recordings",
	Long: `Lists the captured voice recordings grouped by the user
that captured them, with sizes and capture times.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.SetFlags(0)
		env, _ := cmd.Flags().GetString("env")
		err := platform.PushConfig(env)
		if err != nil {
			log.Fatalf("Can't load configuration: %v", err)
		}
		defer platform.PopConfig()
		reportRecordings()
	},
}

func init() {
	recordingsCmd.AddCommand(reportCmd)
	reportCmd.Args = cobra.NoArgs
	reportCmd.Flags().StringP("env", "e", "development", "The environment to run in")
}

func reportRecordings() {
	infos, err := storage.ListRecordings()
	if err != nil {
		log.Fatalf("Failed to list recordings: %v", err)
	}
	fmt.Printf("Recordings in %s:\n", platform.GetConfig().RecordingsDir)
	if len(infos) == 0 {
		fmt.Printf("\t(none)\n")
		return
	}
	byUser := make(map[string][]storage.RecordingInfo)
	for _, info := range infos {
		byUser[info.UserId] = append(byUser[info.UserId], info)
	}
	users := make([]string, 0, len(byUser))
	for user := range byUser {
		users = append(users, user)
	}
	slices.Sort(users)
	var total int64
	for _, user := range users {
		fmt.Printf("%s:\n", user)
		for _, info := range byUser[user] {
			fmt.Printf("\t%s\t%d bytes\t%s\n",
				info.Filename, info.Size, info.ModTime.Format("2006-01-02 15:04:05"))
			total += info.Size
		}
	}
	fmt.Printf("\n%d recordings from %d users, %d bytes in all.\n",
		len(infos), len(users), total)
}
