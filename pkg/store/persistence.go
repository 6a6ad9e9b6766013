// Package store persists diary entries, the profile, settings, the draft and
// knowledge cards in an on-disk diskv tree.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/knowledge"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/profile"
)

// Collection names double as the top level directories of the tree.
const (
	CollectionEntries  = "entries"
	CollectionProfile  = "profile"
	CollectionCards    = "cards"
	CollectionSettings = "settings"
	CollectionDraft    = "draft"

	singletonID = "current"
	recordExt   = ".json"
	tempDir     = ".tmp"
)

func collections() []string {
	return []string{CollectionEntries, CollectionProfile, CollectionCards, CollectionSettings, CollectionDraft}
}

// EntryStore is the diary entry collection.
type EntryStore interface {
	AddEntry(ctx context.Context, f entry.Fields) (string, error)
	GetEntry(ctx context.Context, id string) (*entry.Entry, error)
	UpdateEntry(ctx context.Context, id string, p entry.Patch) error
	DeleteEntry(ctx context.Context, id string) error
	PutEntry(ctx context.Context, e *entry.Entry) error
	ListEntries(ctx context.Context) ([]*entry.Entry, error)
	EntriesByTag(ctx context.Context, tag string) ([]*entry.Entry, error)
	EntriesByMood(ctx context.Context, m mood.ID) ([]*entry.Entry, error)
	SearchEntries(ctx context.Context, keyword string) ([]*entry.Entry, error)
	Tags(ctx context.Context) ([]string, error)
	ClearEntries(ctx context.Context) error
}

// DraftStore is the singleton draft.
type DraftStore interface {
	Draft(ctx context.Context) (*entry.Draft, error)
	SaveDraft(ctx context.Context, d entry.Draft) error
	ClearDraft(ctx context.Context) error
}

// ProfileStore holds the singleton profile and settings records.
type ProfileStore interface {
	Profile(ctx context.Context) (*profile.Profile, error)
	SetProfile(ctx context.Context, p profile.Profile) error
	UpdateProfile(ctx context.Context, p profile.Patch) error
	Settings(ctx context.Context) (*profile.Settings, error)
	SetSettings(ctx context.Context, s profile.Settings) error
}

// CardStore is the knowledge card collection.
type CardStore interface {
	Cards(ctx context.Context) ([]knowledge.Card, error)
	CardsByCategory(ctx context.Context, category string) ([]knowledge.Card, error)
	FavoriteCards(ctx context.Context) ([]knowledge.Card, error)
	ToggleFavorite(ctx context.Context, id string) (favorite, found bool, err error)
	EnsureSeeded(ctx context.Context) (int, error)
}

// Persistence defines the persistence contract for the diary.
type Persistence interface {
	EntryStore
	DraftStore
	ProfileStore
	CardStore
	Watch(ctx context.Context) (<-chan Event, error)
}

// Option configures Load.
type Option func(*persistence)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(p *persistence) {
		if l != nil {
			p.log = l
		}
	}
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(p *persistence) {
		if now != nil {
			p.now = now
		}
	}
}

// WithIDs overrides the uuid generator.
func WithIDs(newID func() string) Option {
	return func(p *persistence) {
		if newID != nil {
			p.newID = newID
		}
	}
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, fault("open", "", fmt.Errorf("base path unknown"))
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fault("open", basePath, err)
	}
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, tempDir),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
			PathPerm:          0o755,
			FilePerm:          0o644,
		}),
		basePath: basePath,
		log:      slog.Default(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *slog.Logger
	now      func() time.Time
	newID    func() string
}

func key(collection, id string) string {
	return collection + "/" + id
}

// validID reports whether id names a single record inside a collection.
// Anything else is treated as absent by the id-taking methods.
func validID(id string) bool {
	switch id {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

// keys lists every key of collection.
func (p *persistence) keys(ctx context.Context, collection string) ([]string, error) {
	prefix := collection + "/"
	var out []string
	for k := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// get decodes the record at k into v. A missing record reports false.
func (p *persistence) get(k string, v any) (bool, error) {
	if !p.d.Has(k) {
		return false, nil
	}
	val, err := p.d.Read(k)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fault("read", k, err)
	}
	if err := json.Unmarshal(val, v); err != nil {
		return false, fault("decode", k, err)
	}
	return true, nil
}

func (p *persistence) put(k string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fault("encode", k, err)
	}
	if err := p.d.Write(k, data); err != nil {
		return fault("write", k, err)
	}
	p.log.Debug("store: wrote record", "key", k, "bytes", len(data))
	return nil
}

func (p *persistence) erase(k string) error {
	if !p.d.Has(k) {
		return nil
	}
	if err := p.d.Erase(k); err != nil && !os.IsNotExist(err) {
		return fault("erase", k, err)
	}
	p.log.Debug("store: erased record", "key", k)
	return nil
}

// clear erases every record of collection.
func (p *persistence) clear(ctx context.Context, collection string) error {
	keys, err := p.keys(ctx, collection)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := p.erase(k); err != nil {
			return err
		}
	}
	return nil
}

// replaceSingleton enforces the zero-or-one invariant: clear, then insert one.
func (p *persistence) replaceSingleton(ctx context.Context, collection string, v any) error {
	if err := p.clear(ctx, collection); err != nil {
		return err
	}
	return p.put(key(collection, singletonID), v)
}

func keyToPathTransform(k string) *diskv.PathKey {
	collection, id, ok := strings.Cut(k, "/")
	if !ok {
		return &diskv.PathKey{FileName: k + recordExt}
	}
	return &diskv.PathKey{
		Path:     []string{collection},
		FileName: id + recordExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	name := strings.TrimSuffix(pathKey.FileName, recordExt)
	if len(pathKey.Path) == 0 {
		return name
	}
	return strings.Join(pathKey.Path, "/") + "/" + name
}
