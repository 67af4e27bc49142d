package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vamosestudar/estudar/internal/app"
)

func init() {
	rootCmd.Flags().Int("assessment", 0, "Open this assessment (document position) directly")
	rootCmd.Flags().Int("subject", 0, "With --assessment, open this subject directly")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")
}

// runApp loads the content and launches the TUI.
func runApp(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	opts := app.Options{
		Catalog:    cat,
		Quiz:       rt.cfg.QuizSettings(),
		Logger:     rt.log,
		SkipSplash: noSplash,
	}
	if cmd.Flags().Changed("assessment") {
		id, _ := cmd.Flags().GetInt("assessment")
		opts.AssessmentID = &id
		if cmd.Flags().Changed("subject") {
			sid, _ := cmd.Flags().GetInt("subject")
			opts.SubjectID = &sid
		}
	}

	return app.Run(opts)
}
