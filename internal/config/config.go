package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/youruser/wishbanner/internal/banner"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Data   DataConfig   `mapstructure:"data"`
	Loader LoaderConfig `mapstructure:"loader"`
	Fonts  FontsConfig  `mapstructure:"fonts"`
	Banner BannerConfig `mapstructure:"banner"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DataConfig struct {
	Dir          string `mapstructure:"dir"`
	Translations string `mapstructure:"translations"`
}

type LoaderConfig struct {
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxBytes int64         `mapstructure:"max_bytes"`
}

// FontsConfig points at TTF files; empty keeps the embedded Go fonts.
type FontsConfig struct {
	Regular string `mapstructure:"regular"`
	Bold    string `mapstructure:"bold"`
}

type BannerConfig struct {
	DefaultTemplate string `mapstructure:"default_template"`
	DefaultLanguage string `mapstructure:"default_language"`
}

// Load reads .env, then config.yaml from ./configs or the working directory,
// then BANNER_* environment overrides (BANNER_SERVER_PORT and so on). The
// plain PORT variable is honoured for the listen port.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("BANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.port", "BANNER_SERVER_PORT", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.max_body_bytes", 24<<20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.translations", "data/translations.yaml")
	v.SetDefault("loader.timeout", 10*time.Second)
	v.SetDefault("loader.max_bytes", 8<<20)
	v.SetDefault("fonts.regular", "")
	v.SetDefault("fonts.bold", "")
	v.SetDefault("banner.default_template", string(banner.ModernGradient))
	v.SetDefault("banner.default_language", string(banner.English))
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if !banner.TemplateID(c.Banner.DefaultTemplate).Valid() {
		return fmt.Errorf("banner.default_template %q: %w", c.Banner.DefaultTemplate, banner.ErrUnknownTemplate)
	}
	if !banner.Language(c.Banner.DefaultLanguage).Valid() {
		return fmt.Errorf("banner.default_language %q: %w", c.Banner.DefaultLanguage, banner.ErrUnsupportedLanguage)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New("server.max_body_bytes must be positive")
	}
	if c.Loader.Timeout <= 0 {
		return errors.New("loader.timeout must be positive")
	}
	return nil
}
