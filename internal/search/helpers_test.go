package search

import (
	"errors"
	"io/fs"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

// countingFS records every ReadDir call and can fail chosen directories.
type countingFS struct {
	FS
	mu     sync.Mutex
	counts map[string]int
	order  []string
	fail   map[string]bool
}

func newCountingFS(inner FS) *countingFS {
	return &countingFS{FS: inner, counts: make(map[string]int), fail: make(map[string]bool)}
}

var errInjected = errors.New("permission denied")

func (c *countingFS) ReadDir(dir string) ([]Entry, error) {
	c.mu.Lock()
	c.counts[dir]++
	c.order = append(c.order, dir)
	fail := c.fail[dir]
	c.mu.Unlock()

	if fail {
		return nil, errInjected
	}
	return c.FS.ReadDir(dir)
}

func (c *countingFS) count(dir string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[dir]
}

func (c *countingFS) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// mapTree builds a MapFS from file paths; entries ending in "/" become empty directories.
func mapTree(paths ...string) fstest.MapFS {
	m := fstest.MapFS{}
	for _, p := range paths {
		if p[len(p)-1] == '/' {
			m[p[:len(p)-1]] = &fstest.MapFile{Mode: fs.ModeDir | 0o755}
			continue
		}
		m[p] = &fstest.MapFile{Data: []byte("x")}
	}
	return m
}

func javaProps(t *testing.T, opts ...Option) *Properties {
	t.Helper()
	props, err := NewProperties("javac.exe",
		[]string{"bin", "jdk*", "java*", "program*"},
		[]string{"windows*", "driver*", "game*"},
		opts...)
	require.NoError(t, err)
	return props
}

// recordingObserver captures notifications for assertions.
type recordingObserver struct {
	mu        sync.Mutex
	started   []string
	widened   []int
	found     []string
	exhausted []int
	failed    []string
}

func (r *recordingObserver) SearchStarted(_ string, roots []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, roots...)
}

func (r *recordingObserver) FrontierWidened(_ int, size int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.widened = append(r.widened, size)
}

func (r *recordingObserver) GoalFound(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.found = append(r.found, path)
}

func (r *recordingObserver) SearchExhausted(rounds int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exhausted = append(r.exhausted, rounds)
}

func (r *recordingObserver) ListFailed(dir string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, dir)
}
