// Package cli provides the command-line interface for OneTimePaste.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driving"
	"github.com/aidenappl/OneTimePaste/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flag values.
var (
	verbose   bool
	configDir string
	storePath string
)

// Services wired by SetServices or the bootstrap hook.
var (
	scanService     driving.Scanner
	monitorService  driving.Monitor
	settingsService driving.SettingsService
	clipboard       driven.Clipboard
)

// Options carries the persistent flags to the bootstrap hook.
type Options struct {
	// ConfigDir overrides the configuration directory. Empty uses the default.
	ConfigDir string

	// StorePath overrides the message store location. Empty searches the
	// default candidates.
	StorePath string

	// Verbose enables debug logging.
	Verbose bool
}

// Services groups the driving ports the commands use.
type Services struct {
	Scanner  driving.Scanner
	Monitor  driving.Monitor
	Settings driving.SettingsService

	// Clipboard backs the TUI copy action. Nil disables copying.
	Clipboard driven.Clipboard
}

// BootstrapFunc builds the services once flags are parsed.
type BootstrapFunc func(opts Options) (*Services, error)

var bootstrap BootstrapFunc

var rootCmd = &cobra.Command{
	Use:   "onetimepaste",
	Short: "Find one-time passcodes in your Messages history",
	Long: `OneTimePaste reads the local Messages store, detects one-time passcodes
in recent messages, and copies new codes to the clipboard as they arrive.

The store is opened read-only and is never modified.`,
	SilenceUsage:      true,
	PersistentPreRunE: initialise,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.onetimepaste)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "path to the Messages chat.db")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices wires the services directly, bypassing the bootstrap hook.
func SetServices(svcs *Services) {
	if svcs == nil {
		scanService, monitorService, settingsService, clipboard = nil, nil, nil, nil
		return
	}
	scanService = svcs.Scanner
	monitorService = svcs.Monitor
	settingsService = svcs.Settings
	clipboard = svcs.Clipboard
}

// SetBootstrap registers the hook that builds services after flag parsing.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// Execute runs the root command. Long-running commands stop when ctx is done.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initialise(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil {
		return nil
	}

	svcs, err := bootstrap(Options{
		ConfigDir: configDir,
		StorePath: storePath,
		Verbose:   verbose,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(svcs)
	return nil
}

// errNotConfigured reports a missing service for a command.
func errNotConfigured(service string) error {
	return errors.New(service + " service not configured")
}
