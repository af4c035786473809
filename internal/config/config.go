package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Limits applied to user-supplied engine input before the engine runs.
// The engine functions themselves are total; the host enforces these.
const (
	DefaultMaxFilenameLength = 512
	DefaultMaxTemplateLength = 256
	DefaultMaxRules          = 20
)

type Config struct {
	SentryDSN string `mapstructure:"sentry_dsn"`
	LogLevel  string `mapstructure:"log_level"`
	Debug     bool   `mapstructure:"debug"`
	Server    struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Probe struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"probe"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Engine struct {
		MaxFilenameLength int `mapstructure:"max_filename_length"`
		MaxTemplateLength int `mapstructure:"max_template_length"`
		MaxRules          int `mapstructure:"max_rules"`
	} `mapstructure:"engine"`
	Store struct {
		Provider   string `mapstructure:"provider"`
		TTL        string `mapstructure:"ttl"` // Go duration string like "1h", "24h", etc.
		MaxEntries int    `mapstructure:"max_entries"`
		Redis      struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"store"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	// Parse and set log level from config
	level := zerolog.InfoLevel // default
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}
	if config.Debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	// Set the global log level
	zerolog.SetGlobalLevel(level)

	// Update logger with the configured level
	logger = logger.Level(level)

	logger.Info().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
	logger.Info().Msg("Configuration loaded successfully")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable support
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Add specific environment variable for log level
	_ = viper.BindEnv("log_level", "LOG_LEVEL")
	_ = viper.BindEnv("sentry_dsn", "SENTRY_DSN")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.address", "localhost")
	viper.SetDefault("probe.enabled", true)
	viper.SetDefault("probe.port", 8081)
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.port", 9090)
	viper.SetDefault("engine.max_filename_length", DefaultMaxFilenameLength)
	viper.SetDefault("engine.max_template_length", DefaultMaxTemplateLength)
	viper.SetDefault("engine.max_rules", DefaultMaxRules)
	viper.SetDefault("store.provider", "memory")
	viper.SetDefault("store.ttl", "24h")
	viper.SetDefault("store.max_entries", 10000)
	viper.SetDefault("debug", false)

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func GetConfig() *Config {
	return globalConfig
}

func GetLogger() zerolog.Logger {
	return logger
}
