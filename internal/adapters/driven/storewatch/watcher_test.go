package storewatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStoreEvent(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		op    fsnotify.Op
		match bool
	}{
		{name: "store write", file: "chat.db", op: fsnotify.Write, match: true},
		{name: "wal write", file: "chat.db-wal", op: fsnotify.Write, match: true},
		{name: "shm create", file: "chat.db-shm", op: fsnotify.Create, match: true},
		{name: "journal rename", file: "chat.db-journal", op: fsnotify.Rename, match: true},
		{name: "combined write and chmod", file: "chat.db", op: fsnotify.Write | fsnotify.Chmod, match: true},
		{name: "chmod only", file: "chat.db", op: fsnotify.Chmod, match: false},
		{name: "remove", file: "chat.db-wal", op: fsnotify.Remove, match: false},
		{name: "other file", file: "prefs.plist", op: fsnotify.Write, match: false},
		{name: "similar prefix", file: "chat.db.bak", op: fsnotify.Write, match: false},
		{name: "unknown sidecar", file: "chat.db-tmp", op: fsnotify.Write, match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := fsnotify.Event{Name: filepath.Join("/tmp", "Messages", tt.file), Op: tt.op}
			assert.Equal(t, tt.match, IsStoreEvent(event, "chat.db"))
		})
	}
}

func TestWatcher_SignalsOnStoreWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.db")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := New(nil).Watch(ctx, path)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path+"-wal", []byte("frame"), 0600)
	}()

	select {
	case _, ok := <-changes:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for store change")
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.db")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := New(nil).Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))

	select {
	case <-changes:
		t.Fatal("unexpected signal for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.db")

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := New(nil).Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chat.db")

	changes, err := New(nil).Watch(context.Background(), path)

	assert.Error(t, err)
	assert.Nil(t, changes)
}
