package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show which Messages store will be read",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if scanService == nil {
			return errNotConfigured("scan")
		}

		path, err := scanService.StorePath()
		if err != nil {
			return fmt.Errorf("locate failed: %w", err)
		}

		cmd.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
