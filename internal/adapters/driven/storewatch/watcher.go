// Package storewatch signals writes to the message store so the monitor
// can scan ahead of its next tick.
package storewatch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
)

// Ensure Watcher implements the interface.
var _ driven.StoreWatcher = (*Watcher)(nil)

// relevantOps are the operations that can carry new rows.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename

// Watcher watches the directory holding the store. SQLite appends to the
// -wal sidecar before checkpointing, so the store file alone is not enough.
type Watcher struct {
	logger *zap.Logger
}

// New creates a store watcher.
func New(logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{logger: logger}
}

// Watch starts watching the store at path.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	// Capacity one coalesces bursts into a single pending signal.
	changes := make(chan struct{}, 1)
	base := filepath.Base(path)

	go func() {
		defer close(changes)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !IsStoreEvent(event, base) {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				w.logger.Warn("store watcher error", zap.Error(err))
			}
		}
	}()

	return changes, nil
}

// IsStoreEvent reports whether event touches the store named base or one
// of its -wal/-shm/-journal sidecars with an operation that may add rows.
func IsStoreEvent(event fsnotify.Event, base string) bool {
	if event.Op&relevantOps == 0 {
		return false
	}

	name := filepath.Base(event.Name)
	if name == base {
		return true
	}
	suffix, ok := strings.CutPrefix(name, base)
	if !ok {
		return false
	}
	switch suffix {
	case "-wal", "-shm", "-journal":
		return true
	default:
		return false
	}
}
