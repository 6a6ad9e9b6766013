// Package mood holds the fixed catalog of moods a diary entry can carry.
package mood

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ID identifies a mood. Stored entries carry the raw string so unknown values
// written by other tools survive a round trip.
type ID string

const (
	Happy    ID = "happy"
	Calm     ID = "calm"
	Loved    ID = "loved"
	Thinking ID = "thinking"
	Tired    ID = "tired"
	Sad      ID = "sad"
	Anxious  ID = "anxious"
	Angry    ID = "angry"

	// Default is applied on submit when the writer picked no mood.
	Default = Calm
)

const (
	fallbackEmoji = "😐"
	fallbackLabel = "未知"
	fallbackColor = "#B8B8B8"
)

// ErrUnknown is returned by Parse for identifiers outside the catalog.
var ErrUnknown = errors.New("mood: unknown mood")

// Mood is the display metadata for a mood identifier.
type Mood struct {
	ID    ID
	Emoji string
	Label string
	Color string
}

var catalog = []Mood{
	{ID: Happy, Emoji: "😊", Label: "开心", Color: "#FFD93D"},
	{ID: Calm, Emoji: "😌", Label: "平静", Color: "#A8D8EA"},
	{ID: Loved, Emoji: "🥰", Label: "被爱", Color: "#FFB6B9"},
	{ID: Thinking, Emoji: "🤔", Label: "思考", Color: "#C9B1FF"},
	{ID: Tired, Emoji: "😴", Label: "疲惫", Color: "#B8B8B8"},
	{ID: Sad, Emoji: "😢", Label: "难过", Color: "#7EC8E3"},
	{ID: Anxious, Emoji: "😰", Label: "焦虑", Color: "#FFA07A"},
	{ID: Angry, Emoji: "😠", Label: "生气", Color: "#FF6B6B"},
}

// All returns the catalog in display order.
func All() []Mood {
	out := make([]Mood, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds the metadata for id.
func Lookup(id ID) (Mood, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Mood{}, false
}

// Resolve is Lookup with the fallback display values filled in for unknown ids.
func Resolve(id ID) Mood {
	if m, ok := Lookup(id); ok {
		return m
	}
	return Mood{ID: id, Emoji: fallbackEmoji, Label: fallbackLabel, Color: fallbackColor}
}

// Parse accepts a mood id, its label or its emoji.
func Parse(s string) (ID, error) {
	v := strings.TrimSpace(s)
	for _, m := range catalog {
		if strings.EqualFold(v, string(m.ID)) || v == m.Label || v == m.Emoji {
			return m.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, s)
}

// Known reports whether id is part of the catalog.
func (id ID) Known() bool {
	_, ok := Lookup(id)
	return ok
}

func (id ID) Emoji() string { return Resolve(id).Emoji }
func (id ID) Label() string { return Resolve(id).Label }
func (id ID) Color() string { return Resolve(id).Color }

func (id ID) String() string {
	return string(id)
}

// RGB parses the mood color. Catalog colors are valid hex, so the fallback
// only matters for hand-edited data.
func (m Mood) RGB() colorful.Color {
	c, err := colorful.Hex(m.Color)
	if err != nil {
		c, _ = colorful.Hex(fallbackColor)
	}
	return c
}

func (m Mood) String() string {
	return fmt.Sprintf("%s %s", m.Emoji, m.Label)
}
