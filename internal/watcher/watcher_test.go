package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/speech-digest/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	done  chan string
}

func newRecorder() *recorder {
	return &recorder{done: make(chan string, 16)}
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
	r.done <- path
	return nil
}

func (r *recorder) wait(t *testing.T, n int) []string {
	t.Helper()
	var got []string
	for len(got) < n {
		select {
		case p := <-r.done:
			got = append(got, filepath.Base(p))
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out after %d of %d files", len(got), n)
		}
	}
	sort.Strings(got)
	return got
}

func startWatcher(t *testing.T, dir string, r *recorder) context.CancelFunc {
	t.Helper()
	w, err := New(dir, r.handle, logger.Nop(), 2)
	require.NoError(t, err)
	w.(*implWatcher).settle = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	t.Cleanup(func() {
		cancel()
		assert.ErrorIs(t, <-errCh, context.Canceled)
		_ = w.Stop()
	})
	return cancel
}

func TestWatcher_Backlog(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.txt", "notes.md", ".hidden.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	r := newRecorder()
	startWatcher(t, dir, r)

	assert.Equal(t, []string{"a.txt", "b.pdf"}, r.wait(t, 2))
}

func TestWatcher_NewFile(t *testing.T) {
	dir := t.TempDir()
	r := newRecorder()
	startWatcher(t, dir, r)

	// give the watcher a moment to enter its loop
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.mp4"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "speech.TXT"), []byte("x"), 0644))

	assert.Equal(t, []string{"speech.TXT"}, r.wait(t, 1))
}

func TestIsSpeechFile(t *testing.T) {
	assert.True(t, isSpeechFile("/in/talk.txt"))
	assert.True(t, isSpeechFile("/in/talk.PDF"))
	assert.False(t, isSpeechFile("/in/talk.docx"))
	assert.False(t, isSpeechFile("/in/.talk.txt"))
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), newRecorder().handle, logger.Nop(), 1)
	assert.Error(t, err)
}
