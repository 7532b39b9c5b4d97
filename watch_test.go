package main

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startWatcher(t *testing.T, path string, calls *atomic.Int32) {
	t.Helper()
	fw, err := newFileWatcher(path, func() error {
		calls.Add(1)
		return nil
	}, zap.NewNop().Sugar())
	require.NoError(t, err)
	fw.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
}

func TestFileWatcherReRendersOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flow.napkin")
	require.NoError(t, os.WriteFile(path, []byte("NAPKIN\n"), 0644))

	var calls atomic.Int32
	startWatcher(t, path, &calls)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("NAPKIN\nMODE:diagram\n"), 0644))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestFileWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flow.napkin")
	require.NoError(t, os.WriteFile(path, []byte("NAPKIN\n"), 0644))

	var calls atomic.Int32
	startWatcher(t, path, &calls)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.napkin"), []byte("x"), 0644))

	assert.Never(t, func() bool { return calls.Load() > 0 }, 200*time.Millisecond, 20*time.Millisecond)
}
