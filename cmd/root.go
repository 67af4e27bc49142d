package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vamosestudar/estudar/internal/config"
	"github.com/vamosestudar/estudar/internal/content"
	"github.com/vamosestudar/estudar/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "estudar",
	Short: "Study for school assessments in the terminal",
	Long: `Vamos Estudar: browse upcoming assessments, review subject content,
flip study cards, open support materials and take quizzes.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runApp,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("content", "", "Path to a content JSON document (overrides ESTUDAR_CONTENT_PATH)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("env-file", "", "Path to a dotenv file (default ./.env if present)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging, echoed to stderr for non-interactive commands")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// runtime carries what setup resolved for the running command.
type runtime struct {
	cfg config.Config
	log *zap.Logger
}

var rt = runtime{log: zap.NewNop()}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	contentPath, _ := cmd.Flags().GetString("content")
	configFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile:  configFile,
		EnvFile:     envFile,
		ContentPath: contentPath,
	})
	if err != nil {
		return err
	}

	opts := cfg.LogOptions()
	if verbose {
		opts.Level = "debug"
		if cmd.HasParent() {
			opts.Console = cmd.ErrOrStderr()
		}
	}
	log, err := logging.New(opts)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	rt = runtime{cfg: cfg, log: log.With(zap.String("command", cmd.Name()))}
	rt.log.Debug("configured",
		zap.String("content", cfg.Content.Path),
		zap.Int("max_questions_single", cfg.Quiz.MaxQuestionsSingle),
		zap.Int("max_questions_all", cfg.Quiz.MaxQuestionsAll),
	)
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	_ = rt.log.Sync()
}

// loadCatalog opens the configured content document, or the bundled one.
func loadCatalog() (*content.Catalog, error) {
	cat, err := content.Load(rt.cfg.Content.Path, rt.log)
	if err != nil {
		return nil, err
	}
	rt.log.Info("content loaded",
		zap.String("path", rt.cfg.Content.Path),
		zap.Int("records", cat.Len()),
	)
	return cat, nil
}
