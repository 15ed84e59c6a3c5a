package main

import (
	"fmt"

	"alb-analytics/internal/converters"
	"alb-analytics/internal/models"

	"github.com/spf13/cobra"
)

func mergeLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge-logs START END",
		Short: "Merge the decompressed logs of both load balancers within (START, END) into one file",
		Args:  cobra.ExactArgs(2),
		RunE:  runMergeLogs,
	}
	addWindowFlags(cmd, false)
	return cmd
}

func runMergeLogs(cmd *cobra.Command, args []string) error {
	return runExport(cmd, args, converters.ExportMerged, models.ALBSelection{External: true, Internal: true})
}

func logsToCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs-to-csv START END",
		Short: "Convert the logs within (START, END) to CSV with one column per access log field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, converters.ExportCSV, selection(cmd))
		},
	}
	addWindowFlags(cmd, true)
	return cmd
}

func runExport(cmd *cobra.Command, args []string, kind converters.ExportKind, sel models.ALBSelection) error {
	req, err := windowRequest(cmd, args, sel)
	if err != nil {
		return err
	}

	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.cancel()

	service := rt.app.ExportService()
	ingestReq := ingestRequest(req)

	key, exists, svcErr := service.ExportKey(rt.ctx, kind, ingestReq)
	if svcErr != nil {
		return svcErr
	}
	if exists && !confirmOverwrite(cmd, key) {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	var result *converters.ExportResult
	if kind == converters.ExportCSV {
		result, svcErr = service.LogsToCSV(rt.ctx, ingestReq)
	} else {
		result, svcErr = service.MergeLogs(rt.ctx, ingestReq)
	}
	if svcErr != nil {
		return svcErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d bytes from %d objects.\n", result.ExportKey, result.Bytes, result.Objects)
	if kind == converters.ExportCSV {
		fmt.Fprintf(cmd.OutOrStdout(), "Converted %d of %d lines, skipped %d.\n", result.Converted, result.Lines, result.Skipped)
	}
	return nil
}
