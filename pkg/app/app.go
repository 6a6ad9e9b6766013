package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tableflip.dev/diary/pkg/composer"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/knowledge"
	"tableflip.dev/diary/pkg/profile"
	"tableflip.dev/diary/pkg/store"
	"tableflip.dev/diary/pkg/timeline"
)

// Service provides high-level diary operations on top of persistence so the
// CLI runners and the interactive views share one code path.
type Service struct {
	Persistence store.Persistence
	Log         *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

var (
	errNoPersistence = errors.New("app: no persistence configured")
	// ErrNotReady is returned when the knowledge cards could not be seeded.
	ErrNotReady = errors.New("app: initialization failed")
	// ErrNotFound is returned by lookups the caller asked for explicitly.
	ErrNotFound = errors.New("app: entry not found")
)

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

func (s *Service) ready() error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return nil
}

// Init seeds the knowledge cards on first run. A failure leaves the diary
// unusable and must stop the caller.
func (s *Service) Init(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	n, err := s.Persistence.EnsureSeeded(ctx)
	if err != nil {
		return fmt.Errorf("%w: seeding knowledge cards: %w", ErrNotReady, err)
	}
	if n > 0 {
		s.log().Debug("app: seeded knowledge cards", "count", n)
	}
	return nil
}

// Composer opens the in-progress entry, restoring any saved draft.
func (s *Service) Composer(ctx context.Context, opts ...composer.Option) (*composer.Composer, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	opts = append([]composer.Option{composer.WithLogger(s.log())}, opts...)
	return composer.New(ctx, s.Persistence, opts...)
}

// Entry returns the entry with id, or ErrNotFound.
func (s *Service) Entry(ctx context.Context, id string) (*entry.Entry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	e, err := s.Persistence.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}

// Edit applies p to the entry. Unknown ids are ignored.
func (s *Service) Edit(ctx context.Context, id string, p entry.Patch) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Persistence.UpdateEntry(ctx, id, p)
}

// Delete removes the entry and returns the reloaded collection, newest first.
func (s *Service) Delete(ctx context.Context, id string) ([]*entry.Entry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := s.Persistence.DeleteEntry(ctx, id); err != nil {
		return nil, err
	}
	return s.Persistence.ListEntries(ctx)
}

// Entries lists every entry, newest first.
func (s *Service) Entries(ctx context.Context) ([]*entry.Entry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.ListEntries(ctx)
}

// Tags lists the distinct tags in use.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.Tags(ctx)
}

// Timeline loads the entries and tags and builds the filtered, month grouped
// view.
func (s *Service) Timeline(ctx context.Context, f timeline.Filter) (timeline.View, error) {
	if err := s.ready(); err != nil {
		return timeline.View{}, err
	}
	all, err := s.Persistence.ListEntries(ctx)
	if err != nil {
		return timeline.View{}, err
	}
	return timeline.Build(all, store.DistinctTags(all), f), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.Watch(ctx)
}

// Draft returns the saved draft, nil when there is none.
func (s *Service) Draft(ctx context.Context) (*entry.Draft, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.Draft(ctx)
}

func (s *Service) ClearDraft(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Persistence.ClearDraft(ctx)
}

// ClearAll deletes every entry and the draft. Profile, settings and cards
// are kept.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.Persistence.ClearEntries(ctx); err != nil {
		return err
	}
	if err := s.Persistence.ClearDraft(ctx); err != nil {
		return err
	}
	s.log().Info("app: cleared all entries")
	return nil
}

// Cards lists knowledge cards, optionally narrowed to a category or to
// favorites.
func (s *Service) Cards(ctx context.Context, category string, favorites bool) ([]knowledge.Card, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	switch {
	case favorites:
		return s.Persistence.FavoriteCards(ctx)
	case category == "":
		return s.Persistence.Cards(ctx)
	case !knowledge.ValidCategory(category):
		return nil, fmt.Errorf("%w: %q", knowledge.ErrUnknownCategory, category)
	case category == knowledge.CategoryDaily:
		all, err := s.Persistence.Cards(ctx)
		if err != nil {
			return nil, err
		}
		return knowledge.Daily(all), nil
	}
	return s.Persistence.CardsByCategory(ctx, category)
}

// Browser returns a knowledge browser over every card.
func (s *Service) Browser(ctx context.Context) (*knowledge.Browser, error) {
	cards, err := s.Cards(ctx, "", false)
	if err != nil {
		return nil, err
	}
	return knowledge.NewBrowser(cards), nil
}

// ToggleFavorite flips the favorite flag. found is false for unknown ids.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (favorite, found bool, err error) {
	if err := s.ready(); err != nil {
		return false, false, err
	}
	return s.Persistence.ToggleFavorite(ctx, id)
}

// Profile returns the stored profile, nil when none was set.
func (s *Service) Profile(ctx context.Context) (*profile.Profile, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.Profile(ctx)
}

func (s *Service) SetProfile(ctx context.Context, p profile.Profile) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Persistence.SetProfile(ctx, p)
}

// UpdateProfile merges p into the stored profile. Without a stored profile
// nothing happens.
func (s *Service) UpdateProfile(ctx context.Context, p profile.Patch) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Persistence.UpdateProfile(ctx, p)
}

// Settings returns the stored settings or the defaults.
func (s *Service) Settings(ctx context.Context) (profile.Settings, error) {
	if err := s.ready(); err != nil {
		return profile.Settings{}, err
	}
	st, err := s.Persistence.Settings(ctx)
	if err != nil {
		return profile.Settings{}, err
	}
	if st == nil {
		return profile.DefaultSettings(), nil
	}
	return *st, nil
}

func (s *Service) SetSettings(ctx context.Context, st profile.Settings) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Persistence.SetSettings(ctx, st)
}
