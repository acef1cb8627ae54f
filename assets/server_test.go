package assets

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type text struct {
	Value string
}

func decodeText(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, errors.New("empty")
	}
	return &text{Value: string(data)}, nil
}

func newTestServer(t *testing.T, read ReadFunc) *Server {
	t.Helper()
	s, err := NewServer(Options{Workers: 2, Read: read})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	s.RegisterDecoder(".txt", decodeText)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func waitState(t *testing.T, s *Server, h UntypedHandle) LoadState {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		state := s.LoadState(h)
		if state != LoadStateLoading {
			return state
		}
		if time.Now().After(deadline) {
			t.Fatalf("%s still loading", h.Path)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestServerLoad(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		read      ReadFunc
		wantState LoadState
		wantValue string
	}{
		{
			name:      "loaded",
			path:      "notes/a.txt",
			read:      func(string) ([]byte, error) { return []byte("hello"), nil },
			wantState: LoadStateLoaded,
			wantValue: "hello",
		},
		{
			name:      "read_error",
			path:      "notes/b.txt",
			read:      func(string) ([]byte, error) { return nil, errors.New("missing") },
			wantState: LoadStateFailed,
		},
		{
			name:      "decode_error",
			path:      "notes/c.txt",
			read:      func(string) ([]byte, error) { return nil, nil },
			wantState: LoadStateFailed,
		},
		{
			name:      "no_decoder",
			path:      "notes/d.bin",
			read:      func(string) ([]byte, error) { return []byte("x"), nil },
			wantState: LoadStateFailed,
		},
		{
			name:      "read_panics",
			path:      "notes/e.txt",
			read:      func(string) ([]byte, error) { panic("boom") },
			wantState: LoadStateFailed,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t, tc.read)
			h := Load[text](s, tc.path)
			if got := waitState(t, s, h.Untyped()); got != tc.wantState {
				t.Fatalf("expected %s, got %s (err %v)", tc.wantState, got, s.Err(h.Untyped()))
			}
			v, err := Get(s, h)
			if tc.wantState == LoadStateFailed {
				if err == nil || s.Err(h.Untyped()) == nil {
					t.Fatalf("expected failure to be kept on the record")
				}
				return
			}
			if err != nil || v.Value != tc.wantValue {
				t.Fatalf("expected %q, got %v err=%v", tc.wantValue, v, err)
			}
		})
	}
}

func TestServerDedupesPaths(t *testing.T) {
	var reads atomic.Int32
	release := make(chan struct{})
	s := newTestServer(t, func(string) ([]byte, error) {
		reads.Add(1)
		<-release
		return []byte("x"), nil
	})

	a := s.LoadUntyped("dir/x.txt")
	b := s.LoadUntyped("./dir//x.txt")
	if a != b {
		t.Fatalf("expected same handle for equivalent paths, got %v and %v", a, b)
	}
	if s.LoadState(a) != LoadStateLoading {
		t.Fatalf("expected loading before release, got %s", s.LoadState(a))
	}
	close(release)
	waitState(t, s, a)
	if n := reads.Load(); n != 1 {
		t.Fatalf("expected one read, got %d", n)
	}
}

func TestServerUnknownAndClosed(t *testing.T) {
	s := newTestServer(t, func(string) ([]byte, error) { return []byte("x"), nil })
	if got := s.LoadState(newUntypedHandle("never.txt")); got != LoadStateNotLoaded {
		t.Fatalf("expected %s, got %s", LoadStateNotLoaded, got)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	h := s.LoadUntyped("late.txt")
	if got := s.LoadState(h); got != LoadStateFailed {
		t.Fatalf("expected load after close to fail, got %s", got)
	}
	if !errors.Is(s.Err(h), ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", s.Err(h))
	}
}

func TestGetTypeMismatch(t *testing.T) {
	s := newTestServer(t, func(string) ([]byte, error) { return []byte("x"), nil })
	h := Load[int](s, "value.txt")
	waitState(t, s, h.Untyped())
	if _, err := Get(s, h); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}
