package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/vamosestudar/estudar/internal/logging"
	"github.com/vamosestudar/estudar/internal/quiz"
)

// Config is the process configuration. It is loaded once at startup and
// passed by value from then on.
type Config struct {
	Quiz    QuizConfig    `mapstructure:"quiz"`
	Content ContentConfig `mapstructure:"content"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// QuizConfig holds the question caps.
type QuizConfig struct {
	MaxQuestionsSingle int `mapstructure:"max_questions_single" validate:"min=1"`
	MaxQuestionsAll    int `mapstructure:"max_questions_all" validate:"min=1"`
}

// ContentConfig locates the content document. An empty path selects the
// bundled document.
type ContentConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	MaxSize    int    `mapstructure:"max_size" validate:"min=1"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAge     int    `mapstructure:"max_age" validate:"min=0"`
	Compress   bool   `mapstructure:"compress"`
}

// legacyEnv maps keys to the variable names used by earlier deployments.
// The ESTUDAR_ name always wins when both are set.
var legacyEnv = map[string]string{
	"quiz.max_questions_single": "NEXT_PUBLIC_MAX_QUESTIONS_BY_SUBJECT_ON_SINGLE",
	"quiz.max_questions_all":    "NEXT_PUBLIC_MAX_QUESTIONS_BY_SUBJECT_ON_ALL",
}

func setDefaults(v *viper.Viper) {
	q := quiz.DefaultConfig()
	v.SetDefault("quiz.max_questions_single", q.MaxQuestionsSingle)
	v.SetDefault("quiz.max_questions_all", q.MaxQuestionsAll)

	v.SetDefault("content.path", "")

	l := logging.DefaultOptions()
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.level", l.Level)
	v.SetDefault("logging.max_size", l.MaxSize)
	v.SetDefault("logging.max_backups", l.MaxBackups)
	v.SetDefault("logging.max_age", l.MaxAge)
	v.SetDefault("logging.compress", l.Compress)
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ConfigFile is an explicit YAML file. When empty, estudar.yaml is
	// looked up in the user config directory and skipped if missing.
	ConfigFile string

	// EnvFile is a dotenv file loaded before the environment is read.
	// When empty, ./.env is loaded if present.
	EnvFile string

	// ContentPath overrides content.path, typically from --content.
	ContentPath string
}

// Load builds the configuration from defaults, the config file, the
// environment and opts, in increasing priority.
func Load(opts LoadOptions) (Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("estudar")
		v.SetConfigType("yaml")
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("ESTUDAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		primary := "ESTUDAR_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, primary, legacy); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	if opts.ContentPath != "" {
		v.Set("content.path", opts.ContentPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// QuizSettings returns the engine configuration.
func (c Config) QuizSettings() quiz.Config {
	return quiz.Config{
		MaxQuestionsSingle: c.Quiz.MaxQuestionsSingle,
		MaxQuestionsAll:    c.Quiz.MaxQuestionsAll,
	}
}

// LogOptions returns logger options for this configuration.
func (c Config) LogOptions() logging.Options {
	return logging.Options{
		File:       c.Logging.File,
		Level:      c.Logging.Level,
		MaxSize:    c.Logging.MaxSize,
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAge,
		Compress:   c.Logging.Compress,
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/estudar, falling back to
// ~/.config/estudar.
func DefaultConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "estudar"), nil
}
