package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/logging"
	"tableflip.dev/diary/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish]",
		Short:     "Generates shell completion scripts",
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Long: `To load completion run

. <(diary completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(diary completion)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) == 1 {
				shell = args[0]
			}
			switch shell {
			case "zsh":
				return topLevel.GenZshCompletion(os.Stdout)
			case "fish":
				return topLevel.GenFishCompletion(os.Stdout, true)
			case "bash":
				return topLevel.GenBashCompletion(os.Stdout)
			}
			return fmt.Errorf("unsupported shell %q", shell)
		},
	}

	topLevel.AddCommand(cmd)
}

// quiet opens the store without logging or seeding, for completions.
func quiet() *app.Service {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	p, err := store.Load(cfg, store.WithLogger(logging.Discard()))
	if err != nil {
		return nil
	}
	return &app.Service{Persistence: p, Log: logging.Discard()}
}

func tagCompletions(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	svc := quiet()
	if svc == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	tags, err := svc.Tags(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return tags, cobra.ShellCompDirectiveNoFileComp
}

func entryCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	svc := quiet()
	if svc == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	all, err := svc.Entries(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ids := make([]string, 0, len(all))
	for _, e := range all {
		ids = append(ids, e.ID+"\t"+e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
