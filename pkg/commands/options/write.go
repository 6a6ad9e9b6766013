package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/mood"
)

// WriteOptions are the composer fields settable from flags.
type WriteOptions struct {
	Mood   string
	Tags   []string
	Images []string
	Draft  bool
}

func moodHelp() string {
	var b strings.Builder
	b.WriteString("Mood of the entry, one of:")
	for _, m := range mood.All() {
		b.WriteString(" ")
		b.WriteString(string(m.ID))
	}
	b.WriteString(". Defaults to " + string(mood.Default) + ".")
	return b.String()
}

func AddWriteArgs(cmd *cobra.Command, o *WriteOptions) {
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "", moodHelp())
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag the entry, repeatable or comma separated.")
	cmd.Flags().StringSliceVar(&o.Images, "image", nil,
		"Attach an image file (5MB max), repeatable.")
	cmd.Flags().BoolVar(&o.Draft, "draft", false,
		"Save as the draft instead of committing the entry.")
}

// MoodCompletions lists mood ids for shell completion.
func MoodCompletions(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	ids := make([]string, 0, len(mood.All()))
	for _, m := range mood.All() {
		ids = append(ids, string(m.ID)+"\t"+m.Emoji+" "+m.Label)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
