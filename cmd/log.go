package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/rvault/internal/audit"
	"github.com/PolarWolf314/rvault/internal/ui"
	"github.com/PolarWolf314/rvault/internal/workflows"
)

var (
	logLimit     int
	logOperation string
	logName      string
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "show only the most recent entries")
	logCmd.Flags().StringVar(&logOperation, "op", "", "filter by operation (init, add, remove, show, clip, otp)")
	logCmd.Flags().StringVar(&logName, "name", "", "filter by secret name")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays what was done to the vault and when, oldest first.
Secret values are never logged.

Examples:
  rvault log
  rvault log -n 10
  rvault log --op show --name bank
  rvault log --json`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	env, _, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	result, err := workflows.Log(cmd.Context(), env, workflows.LogOptions{
		Operation: logOperation,
		Name:      logName,
		Limit:     logLimit,
	})
	if err != nil {
		return err
	}
	Logger.Debugf("Showing %d of %d audit entries", len(result.Entries), result.Total)

	if len(result.Entries) == 0 {
		if result.Total == 0 {
			cmd.PrintErrln("No audit log entries found.")
		} else {
			cmd.PrintErrln("No audit log entries found matching the filters.")
		}
		return nil
	}

	if logJSON {
		return outputLogJSON(cmd.OutOrStdout(), result.Entries)
	}
	outputLogDefault(cmd.OutOrStdout(), result.Entries)
	return nil
}

func outputLogJSON(w io.Writer, entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func outputLogDefault(w io.Writer, entries []audit.Entry) {
	for _, e := range entries {
		details := e.Name
		if e.KeyID != "" {
			details = strings.TrimSpace(details + " " + ui.Muted.Sprint("key "+e.KeyID))
		}
		fmt.Fprintf(w, "%-19s  %-6s  %s\n", workflows.FormatDateTime(e.Timestamp), e.Operation, details)
	}
}
