package styles

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/risksurface/risksurface/internal/errors"
)

// debounceWindow is how long the watcher waits after the last filesystem
// event before reloading. Editors often emit several events per save.
const debounceWindow = 50 * time.Millisecond

// Watcher watches the file backing a custom theme and re-parses it when it
// changes. The parsed theme is handed to the reload callback; it is NOT
// registered here, because the theme registry is only safe to mutate from
// the Bubble Tea event loop. Callers register the theme and call
// SetActiveTheme when they receive the callback.
type Watcher struct {
	watcher *fsnotify.Watcher
	theme   ThemeName
	path    string

	onReload func(ThemeName, *ThemeFile)
	onError  func(error)

	mu     sync.Mutex
	stopCh chan struct{}
}

// NewWatcher creates a watcher for the given custom theme. Built-in themes
// have no backing file and cannot be watched.
func NewWatcher(theme ThemeName) (*Watcher, error) {
	path, ok := ThemeFilePath(string(theme))
	if !ok {
		return nil, errors.NewThemeError("no theme file to watch", errors.ErrThemeNotFound).WithTheme(string(theme))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file: editors that replace the
	// file on save would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &Watcher{
		watcher: watcher,
		theme:   theme,
		path:    filepath.Clean(path),
		stopCh:  make(chan struct{}),
	}, nil
}

// Theme returns the theme name this watcher reloads.
func (w *Watcher) Theme() ThemeName {
	return w.theme
}

// Path returns the watched theme file path.
func (w *Watcher) Path() string {
	return w.path
}

// SetReloadCallback sets the callback invoked after a successful re-parse.
func (w *Watcher) SetReloadCallback(cb func(ThemeName, *ThemeFile)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = cb
}

// SetErrorCallback sets the callback invoked when watching or re-parsing
// fails. Failures leave the last good palette active.
func (w *Watcher) SetErrorCallback(cb func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = cb
}

// Start begins watching for file changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher and cleans up resources.
func (w *Watcher) Stop() {
	close(w.stopCh)
	_ = w.watcher.Close()
}

// watchLoop processes filesystem events.
func (w *Watcher) watchLoop() {
	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

	dirty := false

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about write/create operations on the theme file
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			dirty = true
			debounce.Reset(debounceWindow)

		case <-debounce.C:
			if !dirty {
				continue
			}
			dirty = false
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.notifyError(err)
		}
	}
}

// reload re-parses the theme file and hands the result to the callback.
func (w *Watcher) reload() {
	theme, err := LoadThemeFile(w.path)
	if err != nil {
		w.notifyError(err)
		return
	}

	w.mu.Lock()
	cb := w.onReload
	w.mu.Unlock()

	if cb != nil {
		cb(w.theme, theme)
	}
}

func (w *Watcher) notifyError(err error) {
	w.mu.Lock()
	cb := w.onError
	w.mu.Unlock()

	if cb != nil {
		cb(err)
	}
}
