package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

var (
	scanLimit int
	scanJSON  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan recent messages for one-time passcodes",
	Long: `Reads the most recent messages from the Messages store and lists the
one-time passcodes found, newest first. Each code appears once.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVarP(&scanLimit, "limit", "n", 0, "maximum number of codes to show (0 = all)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output codes as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	if scanService == nil {
		return errNotConfigured("scan")
	}

	records, err := scanService.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanLimit > 0 && len(records) > scanLimit {
		records = records[:scanLimit]
	}

	if scanJSON {
		return outputScanJSON(cmd, records)
	}

	outputScanTable(cmd, records)
	return nil
}

func outputScanJSON(cmd *cobra.Command, records []domain.OTPRecord) error {
	if records == nil {
		records = []domain.OTPRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal codes: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputScanTable(cmd *cobra.Command, records []domain.OTPRecord) {
	if len(records) == 0 {
		cmd.Println("No codes found.")
		return
	}

	cmd.Println("Codes:")
	cmd.Println()
	for i := range records {
		// Format: [N] CODE  sender  time
		cmd.Printf("  [%d] %s  %s  %s\n",
			i+1,
			records[i].Code,
			records[i].Sender,
			records[i].Timestamp.Local().Format("2006-01-02 15:04:05"),
		)
		cmd.Printf("      %s\n", preview(records[i].FullMessage, 72))
		cmd.Println()
	}
}

// preview shortens text to at most limit runes on one line.
func preview(text string, limit int) string {
	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' || r == '\r' {
			runes[i] = ' '
		}
	}
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit-3]) + "..."
}
