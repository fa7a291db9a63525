package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for new one-time passcodes",
	Long: `Polls the Messages store and alerts on every new code. Depending on
your settings a new code is copied to the clipboard, shown in a popup,
posted as a notification, and announced with a sound.

Codes already present when watching starts are not alerted.
Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if monitorService == nil {
		return errNotConfigured("monitor")
	}

	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			cmd.Printf("Watching for codes every %s (%s).\n",
				settings.Monitoring.Interval, settings.Monitoring.DeltaMode.Description())
		}
	}
	cmd.Println("Press Ctrl+C to stop.")

	if err := monitorService.Start(cmd.Context()); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	status := monitorService.Status()
	cmd.Printf("Stopped after %d scans (%d skipped).\n", status.Scans, status.SkippedTicks)
	return nil
}
