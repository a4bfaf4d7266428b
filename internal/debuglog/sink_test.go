package debuglog

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type bufferCloser struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func (b *bufferCloser) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *bufferCloser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

func (b *bufferCloser) lines(t *testing.T) []map[string]any {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(b.buf.Bytes()))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	return out
}

func TestMain(m *testing.M) {
	// lumberjack starts its mill goroutine on first write and never stops it.
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
		goleak.IgnoreAnyFunction("gopkg.in/natefinch/lumberjack.v2.(*Logger).millRun"),
	)
}

func TestAppendWritesJSONLine(t *testing.T) {
	w := &bufferCloser{}
	s := New(w, Options{})

	ok := s.Append(Event{"location": "renderer", "message": "resize", "data": map[string]any{"w": 800}})
	require.True(t, ok)
	require.NoError(t, s.Close())

	lines := w.lines(t)
	require.Len(t, lines, 1)
	assert.Equal(t, "renderer", lines[0]["location"])
	assert.Equal(t, s.Session(), lines[0]["sessionId"])
	assert.Contains(t, lines[0], "timestamp")
	assert.True(t, w.closed)
}

func TestCallerFieldsWin(t *testing.T) {
	w := &bufferCloser{}
	s := New(w, Options{})
	s.Append(Event{"sessionId": "custom"})
	require.NoError(t, s.Close())

	assert.Equal(t, "custom", w.lines(t)[0]["sessionId"])
}

func TestPostDrainsOnClose(t *testing.T) {
	w := &bufferCloser{}
	s := New(w, Options{Queue: 16})

	for i := 0; i < 10; i++ {
		require.True(t, s.Post(Event{"n": i}))
	}
	require.NoError(t, s.Close())

	assert.Len(t, w.lines(t), 10)
	assert.False(t, s.Post(Event{"late": true}))
	assert.False(t, s.Append(Event{"late": true}))
	assert.Error(t, s.Close())
}

func TestPostRateLimited(t *testing.T) {
	w := &bufferCloser{}
	s := New(w, Options{RateLimit: 0.001, Burst: 2, Queue: 16})

	accepted := 0
	for i := 0; i < 10; i++ {
		if s.Post(Event{"n": i}) {
			accepted++
		}
	}
	require.NoError(t, s.Close())

	assert.Equal(t, 2, accepted)
	assert.Len(t, w.lines(t), 2)
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cursor", "debug.log")
	s, err := Open(Options{Path: path})
	require.NoError(t, err)

	require.True(t, s.Append(Event{"message": "hello"}))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}
