package assets

import "testing"

type fakeStates map[HandleID]LoadState

func (f fakeStates) LoadState(h UntypedHandle) LoadState {
	return f[h.ID]
}

func TestPendingSet(t *testing.T) {
	a := newUntypedHandle("a.scn")
	b := newUntypedHandle("b.scn")
	c := newUntypedHandle("c.scn")

	p := NewPendingSet()
	p.Add(b)
	p.Add(a)
	p.Add(c)
	p.Add(b)

	if p.Len() != 3 {
		t.Fatalf("expected 3 handles, got %d", p.Len())
	}
	handles := p.Handles()
	if handles[0] != b || handles[1] != a || handles[2] != c {
		t.Fatalf("expected insertion order b, a, c, got %v", handles)
	}

	tests := []struct {
		name        string
		states      fakeStates
		wantLoading int
		wantFailed  int
	}{
		{"all_loading", fakeStates{a.ID: LoadStateLoading, b.ID: LoadStateLoading, c.ID: LoadStateLoading}, 3, 0},
		{"one_loading", fakeStates{a.ID: LoadStateLoaded, b.ID: LoadStateLoading, c.ID: LoadStateFailed}, 1, 1},
		{"settled", fakeStates{a.ID: LoadStateLoaded, b.ID: LoadStateFailed, c.ID: LoadStateFailed}, 0, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.CountLoading(tc.states); got != tc.wantLoading {
				t.Fatalf("expected %d loading, got %d", tc.wantLoading, got)
			}
			if got := len(p.Failed(tc.states)); got != tc.wantFailed {
				t.Fatalf("expected %d failed, got %d", tc.wantFailed, got)
			}
			if p.Len() != 3 {
				t.Fatalf("counting must not mutate the set")
			}
		})
	}

	p.Clear()
	if p.Len() != 0 {
		t.Fatalf("expected empty set after Clear, got %d", p.Len())
	}
}

func TestCleanPath(t *testing.T) {
	tests := map[string]string{
		"scenes/map.scn":    "scenes/map.scn",
		"./scenes/map.scn":  "scenes/map.scn",
		"/scenes//map.scn":  "scenes/map.scn",
		`scenes\map.scn`:    "scenes/map.scn",
		"a/../scenes/x.scn": "scenes/x.scn",
	}
	for in, want := range tests {
		if got := CleanPath(in); got != want {
			t.Fatalf("CleanPath(%q) = %q, want %q", in, got, want)
		}
	}
}
