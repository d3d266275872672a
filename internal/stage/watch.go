package stage

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports changed stage files in a directory. Events carries the
// path of each changed file after its writes settle; a burst of writes to
// one file is reported once, after the last write.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and closes Events and Errors.
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

	// One timer per file, re-armed on every event, so a path is reported
	// once its burst of writes has been quiet for the debounce interval.
	timers := make(map[string]*time.Timer)
	fired := make(chan string)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsStageFile(event.Name) {
				continue
			}
			if t, ok := timers[event.Name]; ok {
				t.Reset(debounce)
				continue
			}
			path := event.Name
			timers[path] = time.AfterFunc(debounce, func() {
				select {
				case fired <- path:
				case <-w.closeCh:
				}
			})
		case path := <-fired:
			delete(timers, path)
			select {
			case w.Events <- path:
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
