/*
Copyright © 2025 Daniel C. Brotsky
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/whisper-project/donna.server.golang/api/web"
	"github.com/whisper-project/donna.server.golang/handlers"
	"github.com/whisper-project/donna.server.golang/lifecycle"
	"github.com/whisper-project/donna.server.golang/platform"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the server.",
	Long:  `Runs the Donna server until it's signaled to stop.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.SetFlags(0)
		env, _ := cmd.Flags().GetString("env")
		address, _ := cmd.Flags().GetString("address")
		port, _ := cmd.Flags().GetString("port")
		err := platform.PushConfig(env)
		if err != nil {
			log.Fatalf("Can't load configuration: %v", err)
		}
		defer platform.PopConfig()
		serve(address, port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Args = cobra.NoArgs
	serveCmd.Flags().StringP("env", "e", "development", "The environment to run in")
	serveCmd.Flags().StringP("address", "a", "127.0.0.1", "The IP address to listen on")
	serveCmd.Flags().StringP("port", "p", "8080", "The port to listen on")
}

func serve(address, port string) {
	r, err := lifecycle.CreateEngine()
	if err != nil {
		panic(err)
	}
	r.GET("/", handlers.RootHandler)
	r.GET("/health", handlers.HealthHandler)
	webGroup := r.Group(platform.GetConfig().ApiPrefix)
	web.AddRoutes(webGroup)
	lifecycle.Startup(r, fmt.Sprintf("%s:%s", address, port))
}
