// Package composer manages the entry being written: field edits, debounced
// draft autosave, image attachments and the final submit.
package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/store"
)

// DefaultDelay is the autosave debounce window.
const DefaultDelay = 3 * time.Second

// ErrEmptyContent rejects a submit without any text.
var ErrEmptyContent = errors.New("composer: content is empty")

// Store is what the composer needs from persistence.
type Store interface {
	store.DraftStore
	AddEntry(ctx context.Context, f entry.Fields) (string, error)
	Tags(ctx context.Context) ([]string, error)
}

// Option configures a Composer.
type Option func(*Composer)

// WithDelay sets the autosave debounce window.
func WithDelay(d time.Duration) Option {
	return func(c *Composer) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithLogger sets the logger autosave failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.log = l
		}
	}
}

// Composer holds one in-progress entry.
//
// Every edit to content, mood or tags stops the pending autosave timer and
// starts a new one, so at most one autosave is pending. Draft writes are
// serialized: a save already running completes before the next one, or a
// submit, touches the store.
type Composer struct {
	store Store
	delay time.Duration
	log   *slog.Logger

	mu        sync.Mutex
	content   string
	mood      mood.ID
	tags      []string
	images    []string
	known     []string
	timer     *time.Timer
	gen       uint64
	lastSaved time.Time

	saveMu sync.Mutex
	saved  uint64 // generation of the newest persisted snapshot, guarded by saveMu
}

// New loads the draft, if any, and the known tags used for suggestions. The
// draft is read only here, never again during the session.
func New(ctx context.Context, s Store, opts ...Option) (*Composer, error) {
	c := &Composer{
		store: s,
		delay: DefaultDelay,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	d, err := s.Draft(ctx)
	if err != nil {
		return nil, err
	}
	if d != nil {
		c.content = d.Content
		c.mood = d.Mood
		c.tags = entry.NormalizeTags(d.Tags)
		c.lastSaved = d.SavedAt.Time
	}

	known, err := s.Tags(ctx)
	if err != nil {
		return nil, err
	}
	c.known = known
	return c, nil
}

// State is a read-only copy of the composer fields.
type State struct {
	Content   string
	Mood      mood.ID
	Tags      []string
	Images    int
	Pending   bool
	LastSaved time.Time
}

func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Content:   c.content,
		Mood:      c.mood,
		Tags:      append([]string(nil), c.tags...),
		Images:    len(c.images),
		Pending:   c.timer != nil,
		LastSaved: c.lastSaved,
	}
}

// SetContent replaces the body text.
func (c *Composer) SetContent(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = s
	c.scheduleLocked()
}

// SetMood selects a mood; the empty id clears the selection.
func (c *Composer) SetMood(m mood.ID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mood = m
	c.scheduleLocked()
}

// AddTag appends a trimmed tag. Empty and duplicate tags are ignored.
func (c *Composer) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tags {
		if t == tag {
			return false
		}
	}
	c.tags = append(c.tags, tag)
	c.scheduleLocked()
	return true
}

// RemoveTag drops tag if present.
func (c *Composer) RemoveTag(tag string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range c.tags {
		if t == tag {
			c.tags = append(c.tags[:i:i], c.tags[i+1:]...)
			c.scheduleLocked()
			return true
		}
	}
	return false
}

// Suggestions lists known tags containing input that are not selected yet.
func (c *Composer) Suggestions(input string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	in := strings.ToLower(strings.TrimSpace(input))
	selected := make(map[string]struct{}, len(c.tags))
	for _, t := range c.tags {
		selected[t] = struct{}{}
	}
	var out []string
	for _, t := range c.known {
		if _, ok := selected[t]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(t), in) {
			out = append(out, t)
		}
	}
	return out
}

// scheduleLocked replaces any pending autosave with a new one. c.mu is held.
func (c *Composer) scheduleLocked() {
	c.cancelLocked()
	gen := c.gen
	c.timer = time.AfterFunc(c.delay, func() { c.fire(gen) })
}

// cancelLocked drops the pending autosave. A timer whose callback already
// started sees the generation change and returns without saving.
func (c *Composer) cancelLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Composer) draftLocked() entry.Draft {
	return entry.Draft{
		Content: c.content,
		Mood:    c.mood,
		Tags:    append([]string{}, c.tags...),
	}
}

func (c *Composer) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	d := c.draftLocked()
	c.mu.Unlock()

	if err := c.save(context.Background(), d, gen); err != nil {
		c.log.Warn("composer: autosave failed", "err", err)
	}
}

// save writes d unless a newer snapshot already reached the store; waiters
// on saveMu are not woken in order.
func (c *Composer) save(ctx context.Context, d entry.Draft, gen uint64) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()
	if d.Empty() || gen <= c.saved {
		return nil
	}
	if err := c.store.SaveDraft(ctx, d); err != nil {
		return err
	}
	c.saved = gen
	c.mu.Lock()
	c.lastSaved = time.Now()
	c.mu.Unlock()
	c.log.Debug("composer: draft saved", "chars", len(d.Content), "tags", len(d.Tags))
	return nil
}

// Flush runs the pending autosave now. Without a pending autosave it does
// nothing.
func (c *Composer) Flush(ctx context.Context) error {
	c.mu.Lock()
	if c.timer == nil {
		c.mu.Unlock()
		return nil
	}
	c.cancelLocked()
	gen := c.gen
	d := c.draftLocked()
	c.mu.Unlock()
	return c.save(ctx, d, gen)
}

// Close drops the pending autosave without saving.
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// Submit commits the entry. Whitespace-only content fails with
// ErrEmptyContent and nothing is written. Once the entry is committed the
// composer is reset, even when clearing the stored draft then fails; that
// error comes back together with the new id.
func (c *Composer) Submit(ctx context.Context) (string, error) {
	c.mu.Lock()
	content := strings.TrimSpace(c.content)
	if content == "" {
		c.mu.Unlock()
		return "", ErrEmptyContent
	}
	c.cancelLocked()
	gen := c.gen
	m := c.mood
	if m == "" {
		m = mood.Default
	}
	f := entry.Fields{
		Content: content,
		Mood:    m,
		Tags:    append([]string(nil), c.tags...),
		Images:  append([]string(nil), c.images...),
	}
	c.mu.Unlock()

	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	id, err := c.store.AddEntry(ctx, f)
	if err != nil {
		// Keep the work safe in the draft since the commit did not happen.
		c.mu.Lock()
		c.scheduleLocked()
		c.mu.Unlock()
		return "", err
	}
	// Autosaves queued behind the commit are older than it; drop them.
	c.saved = gen

	// The entry is committed; never submit the same text twice.
	c.mu.Lock()
	c.content = ""
	c.mood = ""
	c.tags = nil
	c.images = nil
	c.mu.Unlock()

	if err := c.store.ClearDraft(ctx); err != nil {
		return id, fmt.Errorf("entry %s saved, clearing draft: %w", id, err)
	}
	return id, nil
}
