package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootLogLevel string

var rootCmd = &cobra.Command{
	Use:   "organize",
	Short: "organize - Sort the files in a directory into subfolders",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		SetupLogging(rootLogLevel)
	},
}

func SetVersion(v string) {
	rootCmd.Version = v
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
}
