package assets

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/milk9111/fps/logger"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

var (
	ErrNoDecoder    = errors.New("assets: no decoder for extension")
	ErrServerClosed = errors.New("assets: server closed")
	ErrTypeMismatch = errors.New("assets: decoded type mismatch")
)

// ReadFunc fetches the raw bytes of an asset path.
type ReadFunc func(path string) ([]byte, error)

// DecodeFunc turns raw bytes into an asset value.
type DecodeFunc func(data []byte) (any, error)

// Options configures a Server.
type Options struct {
	// Workers bounds concurrent loads. Defaults to 4.
	Workers int
	Read    ReadFunc
	Logger  *zap.Logger
}

type record struct {
	handle UntypedHandle
	state  LoadState
	value  any
	err    error
	took   time.Duration
}

// Server loads assets in the background and answers load-state queries
// without blocking.
type Server struct {
	mu       sync.RWMutex
	records  map[HandleID]*record
	decoders map[string]DecodeFunc
	read     ReadFunc
	pool     *ants.Pool
	log      *zap.Logger
	closed   bool
}

func NewServer(opts Options) (*Server, error) {
	if opts.Read == nil {
		return nil, fmt.Errorf("assets: new server: read func is nil")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	pool, err := ants.NewPool(
		workers,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(p any) {
			log.Error("asset worker panic", zap.Any("panic", p))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("assets: new pool: %w", err)
	}
	return &Server{
		records:  make(map[HandleID]*record),
		decoders: make(map[string]DecodeFunc),
		read:     opts.Read,
		pool:     pool,
		log:      log,
	}, nil
}

// RegisterDecoder maps a file extension (".scn") to a decoder.
func (s *Server) RegisterDecoder(ext string, fn DecodeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decoders[strings.ToLower(ext)] = fn
}

// Load requests an asset and returns its typed handle immediately. Requesting
// a path that is already known returns the existing handle without reloading.
func Load[T any](s *Server, p string) Handle[T] {
	return Handle[T]{UntypedHandle: s.LoadUntyped(p)}
}

// LoadUntyped is Load without a result type.
func (s *Server) LoadUntyped(p string) UntypedHandle {
	h := newUntypedHandle(p)

	s.mu.Lock()
	if _, ok := s.records[h.ID]; ok {
		s.mu.Unlock()
		return h
	}
	rec := &record{handle: h, state: LoadStateLoading}
	s.records[h.ID] = rec
	closed := s.closed
	decode, hasDecoder := s.decoders[strings.ToLower(path.Ext(h.Path))]
	s.mu.Unlock()

	switch {
	case closed:
		s.finish(h, nil, ErrServerClosed, 0)
	case !hasDecoder:
		s.finish(h, nil, fmt.Errorf("%w %q", ErrNoDecoder, path.Ext(h.Path)), 0)
	default:
		if err := s.pool.Submit(func() { s.run(h, decode) }); err != nil {
			s.finish(h, nil, fmt.Errorf("assets: submit %s: %w", h.Path, err), 0)
		}
	}
	return h
}

func (s *Server) run(h UntypedHandle, decode DecodeFunc) {
	start := time.Now()
	var (
		value any
		err   error
	)
	func() {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("assets: decode %s panicked: %v", h.Path, p)
			}
		}()
		var data []byte
		data, err = s.read(h.Path)
		if err != nil {
			err = fmt.Errorf("assets: read %s: %w", h.Path, err)
			return
		}
		value, err = decode(data)
		if err != nil {
			err = fmt.Errorf("assets: decode %s: %w", h.Path, err)
		}
	}()
	s.finish(h, value, err, time.Since(start))
}

func (s *Server) finish(h UntypedHandle, value any, err error, took time.Duration) {
	s.mu.Lock()
	rec, ok := s.records[h.ID]
	if ok {
		rec.took = took
		if err != nil {
			rec.state = LoadStateFailed
			rec.err = err
		} else {
			rec.state = LoadStateLoaded
			rec.value = value
		}
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("asset load failed", zap.String("path", h.Path), zap.Error(err))
		return
	}
	s.log.Debug("asset loaded", zap.String("path", h.Path), zap.Duration("took", took))
}

// LoadState reports the current state of h without blocking on the load.
func (s *Server) LoadState(h UntypedHandle) LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[h.ID]
	if !ok {
		return LoadStateNotLoaded
	}
	return rec.state
}

// Err returns the failure recorded for h, if any.
func (s *Server) Err(h UntypedHandle) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[h.ID]; ok {
		return rec.err
	}
	return nil
}

// Get returns the decoded asset once it is loaded.
func Get[T any](s *Server, h Handle[T]) (*T, error) {
	s.mu.RLock()
	rec, ok := s.records[h.ID]
	var (
		state LoadState
		value any
		err   error
	)
	if ok {
		state, value, err = rec.state, rec.value, rec.err
	}
	s.mu.RUnlock()

	switch {
	case !ok:
		return nil, fmt.Errorf("assets: %s was never requested", h.Path)
	case state == LoadStateFailed:
		return nil, err
	case state != LoadStateLoaded:
		return nil, fmt.Errorf("assets: %s is %s", h.Path, state)
	}
	v, ok := value.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrTypeMismatch, h.Path, value)
	}
	return v, nil
}

// Close stops accepting loads and waits briefly for running ones.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	return s.pool.ReleaseTimeout(2 * time.Second)
}
