package data

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounceDelay coalesces the write bursts editors and atomic-save tools
// produce into a single reload.
const debounceDelay = 250 * time.Millisecond

// Watcher observes a marker data file and invokes a callback when it
// changes, so edits to the data show up without restarting the viewer.
type Watcher struct {
	path     string
	log      zerolog.Logger
	fs       *fsnotify.Watcher
	onChange func()
	stop     chan struct{}
}

// Watch starts watching the data file's directory (watching the directory
// rather than the file survives atomic replace-on-save). onChange fires from
// a background goroutine after the debounce delay.
func Watch(path string, log zerolog.Logger, onChange func()) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		log:      log,
		fs:       fs,
		onChange: onChange,
		stop:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.stop)
	return w.fs.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-w.stop:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("marker data changed")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("marker data watcher error")
		case <-pending:
			w.onChange()
		}
	}
}
