package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/knowledge"
	"tableflip.dev/diary/pkg/runner/cards"
	teaui "tableflip.dev/diary/pkg/runner/tea"
)

func addCards(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}
	output := &options.OutputOptions{}
	var (
		category  string
		favorites bool
		full      bool
	)

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Browse the knowledge cards.",
		Example: `
diary cards
diary cards --category 认知 --full
diary cards --favorites
diary cards -i
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			if i.Interactive {
				return teaui.Run(ctx, svc, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			s := cards.List{
				Category:  category,
				Favorites: favorites,
				Full:      full,
				ShowID:    io.ShowID,
				JSON:      output.JSON,
				Service:   svc,
				Out:       output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only cards in this category.")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return knowledge.Categories(), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.Flags().BoolVar(&favorites, "favorites", false, "Only favorite cards.")
	cmd.Flags().BoolVar(&full, "full", false, "Print each card in full.")
	options.InteractiveArgs(cmd, i)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	addFavorite(cmd)

	topLevel.AddCommand(cmd)
}

func addFavorite(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "favorite <id>",
		Aliases: []string{"fav"},
		Short:   "Toggle the favorite flag on a card.",
		Args:    cobra.ExactArgs(1),
		Example: `
diary cards --show-id
diary cards favorite 3b0e...
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := cards.Favorite{
				ID:      args[0],
				JSON:    output.JSON,
				Service: svc,
				Out:     output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
