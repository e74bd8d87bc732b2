package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reports edits to prefab yaml and tengo scripts on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs, skipping any that do not exist. It fails only when
// none of them can be watched.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	var watched int
	var lastErr error
	for _, dir := range dirs {
		if _, statErr := os.Stat(dir); statErr != nil {
			lastErr = statErr
			continue
		}
		if err := w.Add(dir); err != nil {
			lastErr = err
			continue
		}
		watched++
	}
	if watched == 0 {
		_ = w.Close()
		if lastErr == nil {
			lastErr = os.ErrNotExist
		}
		return nil, lastErr
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// WatchDisk watches the on-disk prefab and script directories used by Load.
func WatchDisk() (*Watcher, error) {
	return NewWatcher(DiskDir(), filepath.Join(DiskDir(), "scripts"))
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
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
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < reloadDebounce {
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

// IsPlayerSpec reports whether a watcher event names the player prefab.
func IsPlayerSpec(name string) bool {
	return filepath.Base(name) == PlayerSpecFile
}

// IsLevelSpec reports whether a watcher event names the level prefab.
func IsLevelSpec(name string) bool {
	return filepath.Base(name) == LevelSpecFile
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
