package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change polling, detection and alert settings.

Settings are stored in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting and save it.

Keys:
  monitoring.interval         Poll interval in seconds (0.5, 1, 2 or 5)
  monitoring.delta_mode       How new codes are found (set or count)
  monitoring.query_timeout    Store read timeout in seconds (1-60)
  monitoring.watch_store      Scan early when the store changes (true/false)
  detection.min_length        Shortest code length (3-6)
  detection.max_length        Longest code length (6-12)
  alerts.auto_copy            Copy new codes to the clipboard (true/false)
  alerts.show_popup           Show a popup for new codes (true/false)
  alerts.show_notifications   Post a desktop notification (true/false)
  alerts.play_sound           Play a sound for new codes (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Monitoring]")
	cmd.Printf("  Interval: %s\n", settings.Monitoring.Interval)
	cmd.Printf("  Delta Mode: %s\n", settings.Monitoring.DeltaMode.Description())
	cmd.Printf("  Query Timeout: %s\n", settings.Monitoring.QueryTimeout)
	cmd.Printf("  Watch Store: %s\n", yesNo(settings.Monitoring.WatchStore))
	cmd.Println()

	cmd.Println("[Detection]")
	cmd.Printf("  Code Length: %d-%d digits\n", settings.Detection.MinLength, settings.Detection.MaxLength)
	cmd.Println()

	cmd.Println("[Alerts]")
	cmd.Printf("  Auto Copy: %s\n", yesNo(settings.Alerts.AutoCopy))
	cmd.Printf("  Popup: %s\n", yesNo(settings.Alerts.ShowPopup))
	cmd.Printf("  Notifications: %s\n", yesNo(settings.Alerts.ShowNotifications))
	cmd.Printf("  Sound: %s\n", yesNo(settings.Alerts.PlaySound))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	key := strings.ToLower(strings.TrimSpace(args[0]))
	if err := settingsService.Set(key, args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, args[1])
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
