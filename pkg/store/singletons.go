package store

import (
	"context"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/profile"
)

func (p *persistence) Profile(ctx context.Context) (*profile.Profile, error) {
	pr := &profile.Profile{}
	ok, err := p.get(key(CollectionProfile, singletonID), pr)
	if err != nil || !ok {
		return nil, err
	}
	return pr, nil
}

func (p *persistence) SetProfile(ctx context.Context, pr profile.Profile) error {
	if pr.JoinedAt.IsZero() {
		pr.JoinedAt = entry.At(p.now())
	}
	return p.replaceSingleton(ctx, CollectionProfile, pr)
}

// UpdateProfile merges patch into the stored profile. Without a profile it
// does nothing; use SetProfile to create one.
func (p *persistence) UpdateProfile(ctx context.Context, patch profile.Patch) error {
	pr, err := p.Profile(ctx)
	if err != nil || pr == nil {
		return err
	}
	pr.Apply(patch)
	return p.put(key(CollectionProfile, singletonID), pr)
}

func (p *persistence) Settings(ctx context.Context) (*profile.Settings, error) {
	s := &profile.Settings{}
	ok, err := p.get(key(CollectionSettings, singletonID), s)
	if err != nil || !ok {
		return nil, err
	}
	return s, nil
}

func (p *persistence) SetSettings(ctx context.Context, s profile.Settings) error {
	return p.replaceSingleton(ctx, CollectionSettings, s)
}

func (p *persistence) Draft(ctx context.Context) (*entry.Draft, error) {
	d := &entry.Draft{}
	ok, err := p.get(key(CollectionDraft, singletonID), d)
	if err != nil || !ok {
		return nil, err
	}
	return d, nil
}

// SaveDraft replaces the draft and stamps SavedAt.
func (p *persistence) SaveDraft(ctx context.Context, d entry.Draft) error {
	d.Tags = entry.NormalizeTags(d.Tags)
	d.SavedAt = entry.At(p.now())
	return p.replaceSingleton(ctx, CollectionDraft, d)
}

func (p *persistence) ClearDraft(ctx context.Context) error {
	return p.clear(ctx, CollectionDraft)
}
