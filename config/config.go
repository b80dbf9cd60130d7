package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Internal trust boundary for the assignment endpoint.
	InternalAPIKey string `mapstructure:"INTERNAL_API_KEY"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisRateDB   int    `mapstructure:"REDIS_RATE_DB"`

	// Weather provider.
	WeatherAPIURL string  `mapstructure:"WEATHER_API_URL"`
	WeatherAPIKey string  `mapstructure:"WEATHER_API_KEY"`
	SchoolLat     float64 `mapstructure:"SCHOOL_LAT"`
	SchoolLon     float64 `mapstructure:"SCHOOL_LON"`

	// Wind thresholds in knots.
	WindMinKnots float64 `mapstructure:"WIND_MIN_KNOTS"`
	WindMaxKnots float64 `mapstructure:"WIND_MAX_KNOTS"`

	// Rate limiting.
	RateLimit      int `mapstructure:"RATE_LIMIT"`
	RateWindowSecs int `mapstructure:"RATE_WINDOW_SECS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_RATE_DB", 1)
	viper.SetDefault("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("WEATHER_API_KEY", "")
	viper.SetDefault("SCHOOL_LAT", 0.0)
	viper.SetDefault("SCHOOL_LON", 0.0)
	viper.SetDefault("WIND_MIN_KNOTS", 8.0)
	viper.SetDefault("WIND_MAX_KNOTS", 30.0)
	viper.SetDefault("RATE_LIMIT", 60)
	viper.SetDefault("RATE_WINDOW_SECS", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
