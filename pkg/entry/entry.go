// Package entry defines the diary entry record and the in-progress draft.
package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/mood"
)

// Entry is a single committed journal record.
type Entry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Mood      mood.ID   `json:"mood"`
	Tags      []string  `json:"tags"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// Fields are the caller supplied parts of a new entry; the store assigns the
// id and both timestamps.
type Fields struct {
	Content string
	Mood    mood.ID
	Tags    []string
	Images  []string
}

// Patch lists the fields to merge into an existing entry. Nil means keep.
type Patch struct {
	Content *string
	Mood    *mood.ID
	Tags    *[]string
	Images  *[]string
}

// ErrInvalid reports a structurally unusable record.
var ErrInvalid = errors.New("entry: invalid record")

// New builds an entry from fields stamped with id and now.
func New(id string, f Fields, now time.Time) *Entry {
	ts := At(now)
	e := &Entry{
		ID:        id,
		Content:   f.Content,
		Mood:      f.Mood,
		Tags:      NormalizeTags(f.Tags),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if len(f.Images) > 0 {
		e.Images = append([]string(nil), f.Images...)
	}
	return e
}

// Apply merges p into e and refreshes UpdatedAt. ID and CreatedAt never change.
func (e *Entry) Apply(p Patch, now time.Time) {
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Tags != nil {
		e.Tags = NormalizeTags(*p.Tags)
	}
	if p.Images != nil {
		if len(*p.Images) == 0 {
			e.Images = nil
		} else {
			e.Images = append([]string(nil), (*p.Images)...)
		}
	}
	e.UpdatedAt = At(now)
}

// HasTag reports exact membership of tag.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Matches reports whether the content or any tag contains keyword, ignoring
// case. An empty keyword matches everything.
func (e *Entry) Matches(keyword string) bool {
	if keyword == "" {
		return true
	}
	k := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(e.Content), k) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), k) {
			return true
		}
	}
	return false
}

// Validate checks the invariants an imported or hand edited record must hold
// before it can be written.
func (e *Entry) Validate() error {
	switch {
	case strings.TrimSpace(e.ID) == "":
		return fmt.Errorf("%w: missing id", ErrInvalid)
	case strings.ContainsAny(e.ID, `/\`):
		return fmt.Errorf("%w: id %q contains a path separator", ErrInvalid, e.ID)
	case e.ID == "." || e.ID == "..":
		return fmt.Errorf("%w: id %q is not a record name", ErrInvalid, e.ID)
	case e.CreatedAt.IsZero():
		return fmt.Errorf("%w: %s has no createdAt", ErrInvalid, e.ID)
	}
	return nil
}

// Clone returns a deep copy of e.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Tags = append([]string{}, e.Tags...)
	if e.Images != nil {
		cp.Images = append([]string(nil), e.Images...)
	}
	return &cp
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s", e.Mood.Emoji(), e.Content)
}

// NormalizeTags trims tags, drops empty ones and removes duplicates while
// keeping the first occurrence order. The result is never nil so it encodes
// as an empty JSON array.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
