package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions narrow the timeline.
type FilterOptions struct {
	Search string
	Tag    string
	Mood   string
	Follow bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only entries whose content or tags contain this text, case-insensitive.")
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Only entries with this exact tag.")
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		"Only entries with this mood (id, label or emoji).")
}

func AddFollowArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVarP(&o.Follow, "follow", "f", false,
		"Keep running and print the timeline again whenever entries change.")
}
