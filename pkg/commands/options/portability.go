package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Dir    string
	Stdout bool
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Dir, "out", "o", "",
		"Directory the dated export file is written to, defaults to the working directory.")
	cmd.Flags().BoolVar(&o.Stdout, "stdout", false,
		"Write the export document to stdout instead of a file.")
}

// ImportOptions
type ImportOptions struct {
	Mode   string
	DryRun bool
}

func AddImportArgs(cmd *cobra.Command, o *ImportOptions) {
	cmd.Flags().StringVar(&o.Mode, "mode", "skip",
		`What to do with entries whose id already exists: "skip" keeps the stored entry, "fail" aborts the import.`)
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false,
		"Validate and report without writing.")
}
