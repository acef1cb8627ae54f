package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports prefab files that changed on disk. Bursts of writes to the
// same file within the debounce window are reported once.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Poll returns the base names of prefabs changed since the last call without
// blocking.
func (w *Watcher) Poll() ([]string, error) {
	if w == nil {
		return nil, nil
	}
	var names []string
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return names, nil
			}
			names = append(names, name)
		case err, ok := <-w.Errors:
			if !ok {
				return names, nil
			}
			return names, err
		default:
			return names, nil
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- filepath.Base(event.Name):
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
