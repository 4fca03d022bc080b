package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Notebook  NotebookConfig  `mapstructure:"notebook"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Languages LanguagesConfig `mapstructure:"languages"`
}

type NotebookConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type TemplatesConfig struct {
	// MarkdownDirectory overrides the embedded markdown templates when set.
	MarkdownDirectory string `mapstructure:"markdown_directory" validate:"omitempty,dir"`
}

type OutputsConfig struct {
	StoryDirectory string `mapstructure:"story_directory" validate:"required"`
	DeckDirectory  string `mapstructure:"deck_directory" validate:"required"`
}

type GeminiConfig struct {
	APIKey        string            `mapstructure:"api_key"`
	TextModel     string            `mapstructure:"text_model" validate:"required"`
	ImageModel    string            `mapstructure:"image_model" validate:"required"`
	SpeechModel   string            `mapstructure:"speech_model" validate:"required"`
	RetryAttempts uint              `mapstructure:"retry_attempts"`
	Voices        map[string]string `mapstructure:"voices"`
	DefaultVoice  string            `mapstructure:"default_voice" validate:"required"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

// Enabled reports whether a database mirror is configured.
func (cfg DatabaseConfig) Enabled() bool {
	return cfg.Host != "" && cfg.Database != ""
}

type LanguagesConfig struct {
	Native string `mapstructure:"native" validate:"required,oneof=Chinese English Japanese Korean"`
	Target string `mapstructure:"target" validate:"required,oneof=Chinese English Japanese Korean"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/glossa")
	}

	v.SetDefault("notebook.file", filepath.Join("notebooks", "notebook.json"))
	v.SetDefault("outputs.story_directory", filepath.Join("outputs", "story"))
	v.SetDefault("outputs.deck_directory", filepath.Join("outputs", "decks"))
	v.SetDefault("gemini.text_model", "gemini-3-flash-preview")
	v.SetDefault("gemini.image_model", "gemini-2.5-flash-image")
	v.SetDefault("gemini.speech_model", "gemini-2.5-flash-preview-tts")
	v.SetDefault("gemini.retry_attempts", 2)
	v.SetDefault("gemini.default_voice", "Kore")
	v.SetDefault("gemini.voices", map[string]string{
		"Chinese":  "Kore",
		"English":  "Puck",
		"Japanese": "Kore",
		"Korean":   "Kore",
	})
	v.SetDefault("languages.native", "Chinese")
	v.SetDefault("languages.target", "English")

	// Bind the Gemini secret and model overrides to environment variables only
	// (not from the config file)
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.text_model", "GEMINI_TEXT_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_TEXT_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "GLOSSA_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind GLOSSA_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
