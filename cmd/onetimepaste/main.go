// Command onetimepaste finds one-time passcodes in the local Messages store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aidenappl/OneTimePaste/internal/adapters/driven/alert"
	"github.com/aidenappl/OneTimePaste/internal/adapters/driven/config/file"
	"github.com/aidenappl/OneTimePaste/internal/adapters/driven/config/memory"
	"github.com/aidenappl/OneTimePaste/internal/adapters/driven/storage/chatdb"
	"github.com/aidenappl/OneTimePaste/internal/adapters/driven/storewatch"
	"github.com/aidenappl/OneTimePaste/internal/adapters/driving/cli"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
	"github.com/aidenappl/OneTimePaste/internal/core/services"
	"github.com/aidenappl/OneTimePaste/internal/logger"
	"github.com/aidenappl/OneTimePaste/internal/normalisers/attributedbody"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	// cobra reports the error itself.
	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// configStore opens the TOML config, or falls back to defaults held in
// memory when the directory is unusable.
func configStore(dir string) driven.ConfigStore {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		return memory.NewConfigStore()
	}
	return store
}

// bootstrap wires the adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	settings := services.NewSettingsService(configStore(opts.ConfigDir))

	locator := chatdb.NewLocator(opts.StorePath)
	reader := chatdb.NewReader(attributedbody.New(), logger.Named("reader"))
	scanner := services.NewScanService(locator, reader, settings, logger.Named("scan"))

	clipboard := alert.NewClipboard()
	dispatcher := alert.NewDispatcher(
		clipboard,
		alert.NewNotifier(""),
		alert.NewBeeper(),
		alert.NewTerminalPopup(os.Stdout),
		logger.Named("alert"),
	)

	monitor := services.NewMonitorService(
		scanner,
		settings,
		dispatcher,
		storewatch.New(logger.Named("watch")),
		logger.Named("monitor"),
	)

	return &cli.Services{
		Scanner:   scanner,
		Monitor:   monitor,
		Settings:  settings,
		Clipboard: clipboard,
	}, nil
}
