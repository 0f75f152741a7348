package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long the input must stay quiet before a rebuild.
const watchDebounce = 200 * time.Millisecond

// inputWatcher reports writes to a single file.
//
// The parent directory is watched rather than the file itself: shell
// redirection and most editors replace the file, which drops a file watch.
type inputWatcher struct {
	target  string
	watcher *fsnotify.Watcher
	logger  *log.Logger
}

func newInputWatcher(path string, logger *log.Logger) (*inputWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &inputWatcher{target: abs, watcher: w, logger: logger}, nil
}

// matches reports whether ev changes the watched file's content.
func (w *inputWatcher) matches(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	return err == nil && name == w.target
}

// run calls rebuild once the file has been quiet for debounce after a
// change. Rebuild failures are logged and watching continues. run returns
// nil when ctx is cancelled and closes the watcher.
func (w *inputWatcher) run(ctx context.Context, debounce time.Duration, rebuild func() error) error {
	defer w.watcher.Close()

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.matches(ev) {
				continue
			}
			w.logger.Debugf("Change detected: %s", ev)
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case <-timerC:
			if err := rebuild(); err != nil {
				w.logger.Errorf("Rebuild failed: %v", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnf("Watch error: %v", err)
		}
	}
}
