package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	var verbose int
	var logFile string

	rootCmd := &cobra.Command{
		Use:           "ctlbind",
		Short:         "Parse and check mixer control binding descriptors",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(verbose, logFile)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newKeywordsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func configureLogging(verbose int, logFile string) {
	var path *string
	if logFile != "" {
		path = &logFile
	}
	commonlog.Configure(verbose, path)
}
