package debuglog

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"hero-particles/internal/utils"

	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"
)

const DefaultPath = ".cursor/debug.log"

// Event is one structured log entry. Keys set by the caller win over the stamped ones.
type Event map[string]any

type Options struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	RateLimit  float64 // events per second accepted by Post, 0 disables limiting
	Burst      int
	Queue      int
}

// Sink appends events as JSON lines. Post is fire and forget through a worker goroutine.
type Sink struct {
	session string
	now     func() time.Time
	limiter *rate.Limiter

	writeMu sync.Mutex
	w       io.WriteCloser

	closeMu sync.RWMutex
	closed  bool
	events  chan Event
	done    chan struct{}
}

// Open creates a sink writing to a size-rotated file.
func Open(opts Options) (*Sink, error) {
	if opts.Path == "" {
		opts.Path = DefaultPath
	}
	if err := utils.EnsureDir(opts.Path); err != nil {
		return nil, fmt.Errorf("creating debug log dir: %w", err)
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	return New(w, opts), nil
}

// New wraps an arbitrary writer. The sink owns w and closes it on Close.
func New(w io.WriteCloser, opts Options) *Sink {
	if opts.Queue <= 0 {
		opts.Queue = 64
	}
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}

	s := &Sink{
		session: uuid.NewString(),
		now:     time.Now,
		limiter: rate.NewLimiter(limit, burst),
		w:       w,
		events:  make(chan Event, opts.Queue),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Sink) Session() string { return s.session }

// Append writes ev synchronously and reports whether the line was written.
func (s *Sink) Append(ev Event) bool {
	line, err := json.Marshal(s.stamp(ev))
	if err != nil {
		utils.Warn("DebugLog: encoding event: %v", err)
		return false
	}
	line = append(line, '\n')

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.w == nil {
		return false
	}
	if _, err := s.w.Write(line); err != nil {
		utils.Warn("DebugLog: write failed: %v", err)
		return false
	}
	return true
}

// Post queues ev for the worker. Events over the rate limit, or arriving while the queue is
// full or after Close, are dropped. It reports whether the event was queued.
func (s *Sink) Post(ev Event) bool {
	s.closeMu.RLock()
	defer s.closeMu.RUnlock()
	if s.closed || !s.limiter.Allow() {
		return false
	}
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

// Close drains queued events, stops the worker and closes the writer.
func (s *Sink) Close() error {
	s.closeMu.Lock()
	if s.closed {
		s.closeMu.Unlock()
		return errors.New("debug log already closed")
	}
	s.closed = true
	close(s.events)
	s.closeMu.Unlock()

	<-s.done

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	err := s.w.Close()
	s.w = nil
	return err
}

func (s *Sink) run() {
	defer close(s.done)
	for ev := range s.events {
		s.Append(ev)
	}
}

func (s *Sink) stamp(ev Event) Event {
	out := make(Event, len(ev)+2)
	out["sessionId"] = s.session
	out["timestamp"] = s.now().UnixMilli()
	for k, v := range ev {
		out[k] = v
	}
	return out
}
