package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type Config struct {
	SalesSeed       int64     `mapstructure:"sales_seed"`
	PerformanceSeed int64     `mapstructure:"performance_seed"`
	StartDate       time.Time `mapstructure:"start_date"`
	EndDate         time.Time `mapstructure:"end_date"`

	OpenHour          int      `mapstructure:"open_hour"`
	CloseHour         int      `mapstructure:"close_hour"`
	BaseTablesPerHour int      `mapstructure:"base_tables_per_hour"`
	LunchRushFactor   float64  `mapstructure:"lunch_rush_factor"`
	DinnerRushFactor  float64  `mapstructure:"dinner_rush_factor"`
	SlowPeriodFactor  float64  `mapstructure:"slow_period_factor"`
	WeekendFactor     float64  `mapstructure:"weekend_factor"`
	HolidayFactor     float64  `mapstructure:"holiday_factor"`
	Holidays          []string `mapstructure:"holidays"` // YYYY-MM-DD

	TablesPerServer float64 `mapstructure:"tables_per_server"`
	TablesPerHost   float64 `mapstructure:"tables_per_host"`
	CoversPerCook   float64 `mapstructure:"covers_per_cook"`

	DefaultHourlyRate float64            `mapstructure:"default_hourly_rate"`
	HourlyRates       map[string]float64 `mapstructure:"hourly_rates"` // per-staff overrides
	SkillLevels       map[string]float64 `mapstructure:"skill_levels"` // per-server, 1.0-5.0

	PopularityWeights map[string]float64 `mapstructure:"popularity_weights"` // category -> weight
	UsageWindowDays   int                `mapstructure:"usage_window_days"`

	ServerCount int `mapstructure:"server_count"`
	HostCount   int `mapstructure:"host_count"`
	CookCount   int `mapstructure:"cook_count"`

	OutputFormat      string             `mapstructure:"output_format"`
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"` // local or a cloud provider
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`

	PostgresEnabled bool           `mapstructure:"postgres_enabled"`
	Database        DatabaseConfig `mapstructure:"database"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	config.ApplyDefaults()
	return &config, nil
}

// ApplyDefaults fills zero-valued fields with the documented fallbacks. This
// is the single place fallbacks are applied; generators read the config as-is.
func (cfg *Config) ApplyDefaults() {
	if cfg.SalesSeed == 0 {
		cfg.SalesSeed = 12345
	}
	if cfg.PerformanceSeed == 0 {
		cfg.PerformanceSeed = 54321
	}
	if cfg.OpenHour == 0 && cfg.CloseHour == 0 {
		cfg.OpenHour = 9
		cfg.CloseHour = 22
	}
	if cfg.BaseTablesPerHour == 0 {
		cfg.BaseTablesPerHour = 4
	}
	if cfg.LunchRushFactor == 0 {
		cfg.LunchRushFactor = 1.5
	}
	if cfg.DinnerRushFactor == 0 {
		cfg.DinnerRushFactor = 1.8
	}
	if cfg.SlowPeriodFactor == 0 {
		cfg.SlowPeriodFactor = 0.6
	}
	if cfg.WeekendFactor == 0 {
		cfg.WeekendFactor = 1.3
	}
	if cfg.HolidayFactor == 0 {
		cfg.HolidayFactor = 1.5
	}
	if cfg.TablesPerServer == 0 {
		cfg.TablesPerServer = 4
	}
	if cfg.TablesPerHost == 0 {
		cfg.TablesPerHost = 12
	}
	if cfg.CoversPerCook == 0 {
		cfg.CoversPerCook = 15
	}
	if cfg.DefaultHourlyRate == 0 {
		cfg.DefaultHourlyRate = 16.50
	}
	if cfg.UsageWindowDays == 0 {
		cfg.UsageWindowDays = 30
	}
	if cfg.ServerCount == 0 {
		cfg.ServerCount = 8
	}
	if cfg.HostCount == 0 {
		cfg.HostCount = 2
	}
	if cfg.CookCount == 0 {
		cfg.CookCount = 4
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "json"
	}
	if cfg.OutputFolder == "" {
		cfg.OutputFolder = "restosim_output"
	}
	if cfg.OutputDestination == "" {
		cfg.OutputDestination = "local"
	}
}

// IsHoliday reports whether the given ISO date is in the holiday calendar.
func (cfg *Config) IsHoliday(date string) bool {
	for _, h := range cfg.Holidays {
		if h == date {
			return true
		}
	}
	return false
}

// HourlyRate returns the per-staff override or the configured default.
func (cfg *Config) HourlyRate(staffID string) float64 {
	if rate, ok := cfg.HourlyRates[staffID]; ok {
		return rate
	}
	return cfg.DefaultHourlyRate
}
