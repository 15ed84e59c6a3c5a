package main

import (
	"alb-analytics/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

const (
	flagConfig        = "config"
	flagEnvFile       = "env-file"
	flagExternal      = "external"
	flagInternal      = "internal"
	flagForceDownload = "force-download"
	flagYes           = "yes"
)

// Build the cobra command that handles our command line tool.
func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "albstat COMMAND [args]",
		Short:         "Analyze load balancer access logs stored in object storage",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String(flagConfig, "./configs/configs.yml", "Config file (empty to use defaults and ALBSTAT_* env only)")
	rootCmd.PersistentFlags().String(flagEnvFile, ".env", "Env file loaded before the config")

	rootCmd.AddCommand(
		statAPICallsCmd(),
		mergeLogsCmd(),
		logsToCSVCmd(),
		serveCmd(),
	)

	return rootCmd
}

// Execute runs the command line and returns the process exit status. Service
// errors exit with a status per category.
func Execute() int {
	rootCmd := rootCommand()
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	rootCmd.PrintErrln("Error:", err)
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		return 1
	}
	if svcErr.IsInternalError() && svcErr.Cause != nil {
		rootCmd.PrintErrln("Cause:", svcErr.Cause)
	}
	return svcErr.ExitCode()
}

// addWindowFlags registers the flags shared by commands reading a window of logs.
func addWindowFlags(cmd *cobra.Command, withSelection bool) {
	if withSelection {
		cmd.Flags().BoolP(flagExternal, "e", true, "Analyze external ALB")
		cmd.Flags().BoolP(flagInternal, "i", false, "Analyze internal ALB")
	}
	cmd.Flags().Bool(flagForceDownload, false, "Download log objects even when cached")
	cmd.Flags().BoolP(flagYes, "y", false, "Overwrite an existing output without asking")
}
