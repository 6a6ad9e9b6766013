package entry

import (
	"strings"

	"tableflip.dev/diary/pkg/mood"
)

// Draft is the single persisted snapshot of an entry still being written.
type Draft struct {
	Content string    `json:"content"`
	Mood    mood.ID   `json:"mood,omitempty"`
	Tags    []string  `json:"tags"`
	SavedAt Timestamp `json:"savedAt"`
}

// Empty reports whether there is nothing worth saving.
func (d Draft) Empty() bool {
	return d.Content == "" && d.Mood == "" && len(d.Tags) == 0
}

// Fields converts the draft into entry fields, trimming the content and
// applying the default mood.
func (d Draft) Fields() Fields {
	m := d.Mood
	if m == "" {
		m = mood.Default
	}
	return Fields{
		Content: strings.TrimSpace(d.Content),
		Mood:    m,
		Tags:    NormalizeTags(d.Tags),
	}
}
