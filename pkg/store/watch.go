package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventCollectionChanged indicates records of the given collection were
	// written or erased.
	EventCollectionChanged EventType = iota

	// EventCollectionsInvalidated signals a change that could not be tied to
	// one collection; callers should reload everything.
	EventCollectionsInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type       EventType
	Collection string
}

const watchQuiet = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Events are delivered
// at most once per collection per quiet period and dropped when the reader
// lags behind. The channel is closed when watching stops.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	w := &watcher{
		p:     p,
		fw:    fw,
		dirs:  map[string]bool{},
		out:   make(chan Event, 64),
		batch: newBatcher(watchQuiet),
	}
	if err := w.addTree(p.basePath); err != nil {
		w.close()
		return nil, err
	}

	go w.run(ctx)
	return w.out, nil
}

type watcher struct {
	p     *persistence
	fw    *fsnotify.Watcher
	dirs  map[string]bool
	out   chan Event
	batch *batcher
}

func (w *watcher) close() {
	if err := w.fw.Close(); err != nil {
		w.p.log.Warn("store: watcher close", "err", err)
	}
}

// addTree watches root and every directory below it.
func (w *watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() || w.dirs[path] {
			return nil
		}
		if err := w.fw.Add(path); err != nil {
			return fmt.Errorf("store: watch %s: %w", path, err)
		}
		w.dirs[path] = true
		return nil
	})
}

func (w *watcher) emit(ev Event) {
	select {
	case w.out <- ev:
	default:
	}
}

func (w *watcher) run(ctx context.Context) {
	// The batcher may still be flushing; stop it before closing out.
	defer close(w.out)
	defer w.batch.stop()
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.p.log.Debug("store: watcher error", "err", err)
			w.batch.add(Event{Type: EventCollectionsInvalidated}, w.emit)
		case fe, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev, ok := w.classify(fe); ok {
				w.batch.add(ev, w.emit)
			}
		}
	}
}

// classify maps a filesystem notification to a store event. Staging writes
// in the temp directory are ignored.
func (w *watcher) classify(fe fsnotify.Event) (Event, bool) {
	if fe.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(fe.Name); err == nil && info.IsDir() {
			// The first record of a collection creates its directory.
			if err := w.addTree(filepath.Clean(fe.Name)); err != nil {
				w.p.log.Warn("store: watch directory", "dir", fe.Name, "err", err)
			}
			return Event{Type: EventCollectionsInvalidated}, true
		}
	}
	if w.p.isTemp(fe.Name) {
		return Event{}, false
	}
	if c := w.p.collectionForPath(fe.Name); c != "" {
		return Event{Type: EventCollectionChanged, Collection: c}, true
	}
	return Event{Type: EventCollectionsInvalidated}, true
}

// collectionForPath derives the collection from a diskv path. Writes staged
// in the temp directory report "" and are ignored by the caller.
func (p *persistence) collectionForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	first, _, _ := strings.Cut(rel, string(os.PathSeparator))
	for _, c := range collections() {
		if first == c {
			return c
		}
	}
	return ""
}

func (p *persistence) isTemp(path string) bool {
	rel, err := filepath.Rel(filepath.Join(p.basePath, tempDir), path)
	return err == nil && !strings.HasPrefix(rel, "..")
}

// batcher collects distinct events and hands them over once the first one
// has waited for the quiet period.
type batcher struct {
	mu      sync.Mutex
	quiet   time.Duration
	timer   *time.Timer
	pending map[Event]struct{}
	order   []Event
	stopped bool
}

func newBatcher(quiet time.Duration) *batcher {
	return &batcher{quiet: quiet, pending: map[Event]struct{}{}}
}

func (b *batcher) add(ev Event, send func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	if _, dup := b.pending[ev]; !dup {
		b.pending[ev] = struct{}{}
		b.order = append(b.order, ev)
	}
	if b.timer == nil {
		b.timer = time.AfterFunc(b.quiet, func() { b.flush(send) })
	}
}

func (b *batcher) flush(send func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.timer = nil
	if b.stopped {
		return
	}
	for _, ev := range b.order {
		send(ev)
	}
	b.pending = map[Event]struct{}{}
	b.order = nil
}

// stop discards pending events; after it returns send is never called.
func (b *batcher) stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
