package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	// HorizonModeDrop discards events past the horizon and keeps draining
	// the queue; HorizonModeHalt stops the run at the first such event.
	HorizonModeDrop = "drop"
	HorizonModeHalt = "halt"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

// GeneratorConfig bounds the random scenario generator.
type GeneratorConfig struct {
	Drivers     int   `mapstructure:"drivers"`
	Riders      int   `mapstructure:"riders"`
	GridRows    int   `mapstructure:"grid_rows"`
	GridCols    int   `mapstructure:"grid_cols"`
	MaxSpeed    int   `mapstructure:"max_speed"`
	MaxPatience int64 `mapstructure:"max_patience"`
	Duration    int64 `mapstructure:"duration"`
}

type Config struct {
	Seed        int64  `mapstructure:"seed"`
	ScriptFile  string `mapstructure:"script_file"`
	Horizon     int64  `mapstructure:"horizon"`
	HorizonMode string `mapstructure:"horizon_mode"`
	LogLevel    string `mapstructure:"log_level"`

	OutputFormat      string `mapstructure:"output_format"` // console, json, parquet, postgres
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	OutputDestination string `mapstructure:"output_destination"` // local or a cloud provider

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Generator    GeneratorConfig    `mapstructure:"generator"`
}

// LoadConfig initializes and reads the configuration using Viper.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()

	viper.SetDefault("horizon_mode", HorizonModeDrop)
	viper.SetDefault("output_format", "console")
	viper.SetDefault("output_folder", "ridehail_output")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("generator.drivers", 10)
	viper.SetDefault("generator.riders", 50)
	viper.SetDefault("generator.grid_rows", 50)
	viper.SetDefault("generator.grid_cols", 50)
	viper.SetDefault("generator.max_speed", 5)
	viper.SetDefault("generator.max_patience", 30)
	viper.SetDefault("generator.duration", 200)

	if err := viper.ReadInConfig(); err != nil {
		// a missing config file is fine, flags and defaults still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks cross-field constraints that viper cannot express.
func (cfg *Config) Validate() error {
	switch cfg.HorizonMode {
	case HorizonModeDrop, HorizonModeHalt:
	default:
		return fmt.Errorf("invalid horizon_mode %q: must be %q or %q",
			cfg.HorizonMode, HorizonModeDrop, HorizonModeHalt)
	}
	if cfg.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %d", cfg.Horizon)
	}
	switch cfg.OutputFormat {
	case "console", "json", "parquet", "postgres":
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
	return nil
}
