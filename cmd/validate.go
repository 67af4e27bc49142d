package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vamosestudar/estudar/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a content document against the content schema",
	Long: `Validate a content JSON document. Without an argument the configured
content path is checked, or the bundled document when none is configured.

Validation is stricter than loading: entries the app would silently drop are
reported here.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := rt.cfg.Content.Path
		if len(args) == 1 {
			path = args[0]
		}

		data := content.Bundled()
		name := "(bundled)"
		if path != "" {
			b, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read content: %w", err)
			}
			data, name = b, path
		}

		if err := content.Validate(data); err != nil {
			rt.log.Warn("content invalid", zap.String("path", name), zap.Error(err))
			return fmt.Errorf("%s: %w", name, err)
		}

		cat, err := content.Parse(data, rt.log)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		enabled := cat.Enabled()
		questions := 0
		for _, a := range enabled {
			questions += a.QuestionCount()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d registros, %d habilitados, %d questões)\n",
			name, cat.Len(), len(enabled), questions)
		return nil
	},
}
