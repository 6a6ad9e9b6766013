package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: base.Wrap80("A personal growth diary on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addWrite(topLevel)
	addTimeline(topLevel)
	addShow(topLevel)
	addDelete(topLevel)
	addTags(topLevel)
	addDraft(topLevel)
	addClear(topLevel)
	addStats(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addCards(topLevel)
	addProfile(topLevel)
	addSettings(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
