package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/profile"
)

// ProfileOptions bind every editable profile field.
type ProfileOptions struct {
	Patch profile.Patch
}

func AddProfileArgs(cmd *cobra.Command, o *ProfileOptions) {
	f := cmd.Flags()
	f.StringVar(&o.Patch.Name, "name", "", "Display name.")
	f.StringVar(&o.Patch.Birthday, "birthday", "", "Birthday.")
	f.StringVar(&o.Patch.Sleep, "sleep", "", "Sleep habits.")
	f.StringVar(&o.Patch.EnergySource, "energy", "", "What gives you energy.")
	f.StringVar(&o.Patch.Strengths, "strengths", "", "Strengths.")
	f.StringVar(&o.Patch.Weaknesses, "weaknesses", "", "Weaknesses.")
	f.StringVar(&o.Patch.Motto, "motto", "", "Personal motto.")
	f.StringVar(&o.Patch.LifeMeaning, "meaning", "", "What life means to you.")
}

// SettingsOptions; booleans are only applied when their flag was given.
type SettingsOptions struct {
	Theme         string
	Notifications bool
	AutoSave      bool
}

func AddSettingsArgs(cmd *cobra.Command, o *SettingsOptions) {
	f := cmd.Flags()
	f.StringVar(&o.Theme, "theme", "", "Theme, light or dark.")
	f.BoolVar(&o.Notifications, "notifications", false, "Enable notifications.")
	f.BoolVar(&o.AutoSave, "autosave", true, "Enable draft autosave.")
}

// Changed returns pointers for the boolean flags set on cmd, nil otherwise.
func (o *SettingsOptions) Changed(cmd *cobra.Command) (notifications, autosave *bool) {
	if cmd.Flags().Changed("notifications") {
		notifications = &o.Notifications
	}
	if cmd.Flags().Changed("autosave") {
		autosave = &o.AutoSave
	}
	return notifications, autosave
}
