package store

import (
	"context"
	"sort"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/mood"
)

func (p *persistence) AddEntry(ctx context.Context, f entry.Fields) (string, error) {
	e := entry.New(p.newID(), f, p.now())
	if err := p.put(key(CollectionEntries, e.ID), e); err != nil {
		return "", err
	}
	return e.ID, nil
}

func (p *persistence) GetEntry(ctx context.Context, id string) (*entry.Entry, error) {
	if !validID(id) {
		return nil, nil
	}
	e := &entry.Entry{}
	ok, err := p.get(key(CollectionEntries, id), e)
	if err != nil || !ok {
		return nil, err
	}
	return e, nil
}

// UpdateEntry merges p into the stored entry. A missing id is a no-op.
func (p *persistence) UpdateEntry(ctx context.Context, id string, patch entry.Patch) error {
	e, err := p.GetEntry(ctx, id)
	if err != nil || e == nil {
		return err
	}
	e.Apply(patch, p.now())
	return p.put(key(CollectionEntries, id), e)
}

// DeleteEntry removes the entry. Deleting an unknown id is not an error.
func (p *persistence) DeleteEntry(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	return p.erase(key(CollectionEntries, id))
}

// PutEntry writes e as is, keeping its id and timestamps.
func (p *persistence) PutEntry(ctx context.Context, e *entry.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	rec := e.Clone()
	rec.Tags = entry.NormalizeTags(rec.Tags)
	return p.put(key(CollectionEntries, rec.ID), rec)
}

// ListEntries returns every entry, newest first.
func (p *persistence) ListEntries(ctx context.Context) ([]*entry.Entry, error) {
	keys, err := p.keys(ctx, CollectionEntries)
	if err != nil {
		return nil, err
	}
	all := make([]*entry.Entry, 0, len(keys))
	for _, k := range keys {
		e := &entry.Entry{}
		ok, err := p.get(k, e)
		if err != nil {
			return nil, err
		}
		if ok {
			all = append(all, e)
		}
	}
	SortEntries(all)
	return all, nil
}

func (p *persistence) filter(ctx context.Context, keep func(*entry.Entry) bool) ([]*entry.Entry, error) {
	all, err := p.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entry.Entry, 0, len(all))
	for _, e := range all {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (p *persistence) EntriesByTag(ctx context.Context, tag string) ([]*entry.Entry, error) {
	return p.filter(ctx, func(e *entry.Entry) bool { return e.HasTag(tag) })
}

func (p *persistence) EntriesByMood(ctx context.Context, m mood.ID) ([]*entry.Entry, error) {
	return p.filter(ctx, func(e *entry.Entry) bool { return e.Mood == m })
}

// SearchEntries scans every entry for keyword in the content or a tag.
func (p *persistence) SearchEntries(ctx context.Context, keyword string) ([]*entry.Entry, error) {
	return p.filter(ctx, func(e *entry.Entry) bool { return e.Matches(keyword) })
}

// Tags returns the distinct tags of all entries, sorted.
func (p *persistence) Tags(ctx context.Context) ([]string, error) {
	all, err := p.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctTags(all), nil
}

func (p *persistence) ClearEntries(ctx context.Context) error {
	return p.clear(ctx, CollectionEntries)
}

// DistinctTags collects the tag set of entries in sorted order.
func DistinctTags(entries []*entry.Entry) []string {
	set := make(map[string]struct{})
	for _, e := range entries {
		for _, t := range e.Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// SortEntries orders entries newest first. Equal timestamps fall back to the
// id so the order is deterministic.
func SortEntries(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.CreatedAt.Time
		rt := right.CreatedAt.Time
		if lt.Equal(rt) {
			return left.ID < right.ID
		}
		return lt.After(rt)
	})
}
