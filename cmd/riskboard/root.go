package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "riskboard",
	Short:         "Riskboard is a supply-chain risk dashboard for the risk platform backend.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setCommandExecutionContext(commandExecutionContext{
			CommandPath:       cmd.CommandPath(),
			UsesStructuredLog: commandUsesStructuredLogging(cmd),
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd, statusCmd, connectorsCmd, syncCmd, versionCmd)
}
