package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every engine tunable. All values have working defaults;
// a config file only needs the keys it wants to change.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Selector  SelectorConfig  `mapstructure:"selector"`
	Review    ReviewConfig    `mapstructure:"review"`
	Exam      ExamConfig      `mapstructure:"exam"`
	Predictor PredictorConfig `mapstructure:"predictor"`
}

type DatabaseConfig struct {
	Path          string `mapstructure:"path"`
	SnapshotsKept int    `mapstructure:"snapshots_kept"`
}

type SelectorConfig struct {
	ReviewCapRatio     float64 `mapstructure:"review_cap_ratio"`
	WeakCapRatio       float64 `mapstructure:"weak_cap_ratio"`
	RecentWindow       int     `mapstructure:"recent_window"`
	RecentlySeenWindow int     `mapstructure:"recently_seen_window"`
	NeedsWorkThreshold float64 `mapstructure:"needs_work_threshold"`
}

type ReviewConfig struct {
	DefaultEase float64 `mapstructure:"default_ease"`
	MinEase     float64 `mapstructure:"min_ease"`
}

type ExamConfig struct {
	Questions    int `mapstructure:"questions"`
	TimeLimitMin int `mapstructure:"time_limit_min"`
}

type PredictorConfig struct {
	MockBlendWeight float64 `mapstructure:"mock_blend_weight"`
	MinAnswers      int     `mapstructure:"min_answers"`
}

// Load reads configuration from configFile, or from config.yaml in the
// working directory or ~/.config/prepdrill when configFile is empty.
// A missing file is fine; defaults cover everything.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/prepdrill")
	}

	v.SetDefault("database.snapshots_kept", 10)
	v.SetDefault("selector.review_cap_ratio", 0.2)
	v.SetDefault("selector.weak_cap_ratio", 0.4)
	v.SetDefault("selector.recent_window", 10)
	v.SetDefault("selector.recently_seen_window", 50)
	v.SetDefault("selector.needs_work_threshold", 0.70)
	v.SetDefault("review.default_ease", 2.5)
	v.SetDefault("review.min_ease", 1.3)
	v.SetDefault("exam.questions", 150)
	v.SetDefault("exam.time_limit_min", 180)
	v.SetDefault("predictor.mock_blend_weight", 0.6)
	v.SetDefault("predictor.min_answers", 100)

	if err := v.BindEnv("database.path", "PREPDRILL_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind PREPDRILL_DB environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
