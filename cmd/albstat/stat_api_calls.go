package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statAPICallsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat-api-calls START END",
		Short: "Count API calls per service, method and normalized url within (START, END)",
		Long: "Downloads the access logs captured between START and END, counts every request\n" +
			"by owning service, method and normalized url, and writes a CSV report.\n" +
			"Bounds are ISO-8601; bounds without an offset are UTC.",
		Args: cobra.ExactArgs(2),
		RunE: runStatAPICalls,
	}
	addWindowFlags(cmd, true)
	return cmd
}

func runStatAPICalls(cmd *cobra.Command, args []string) error {
	req, err := windowRequest(cmd, args, selection(cmd))
	if err != nil {
		return err
	}

	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.cancel()

	service := rt.app.ReportService()
	key, exists, svcErr := service.ReportKey(rt.ctx, req)
	if svcErr != nil {
		return svcErr
	}
	if exists && !confirmOverwrite(cmd, key) {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}
	req.Overwrite = true

	result, svcErr := service.StatAPICalls(rt.ctx, req)
	if svcErr != nil {
		return svcErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s: %d rows from %d records in %d objects (%d downloaded, %d cached).\n",
		result.ReportKey, result.Rows, result.Records, result.Objects, result.Downloaded, result.Cached)
	fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d malformed lines and %d malformed keys; %d records out of window, %d excluded.\n",
		result.SkippedLines, len(result.MalformedKeys), result.OutOfWindow, result.Excluded)
	return nil
}
