package cmd

import (
	"fmt"
	"log"
	"os"

	"MeloList/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "melolist",
	Short: "MeloList is a playlist management service.",
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Starting MeloList server...")
		// server.Start handles its own port and logging for startup.
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
