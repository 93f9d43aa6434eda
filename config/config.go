package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisOTPDB     int    `mapstructure:"REDIS_OTP_DB"`

	RedisReminderQueueDB int `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Onboarding flow settings.
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`
	OTPTTLMinutes     int    `mapstructure:"OTP_TTL_MINUTES"`
	ResendCooldownSec int    `mapstructure:"RESEND_COOLDOWN_SEC"`
	AppScheme         string `mapstructure:"APP_SCHEME"`
	DeepLinkSource    string `mapstructure:"DEEP_LINK_SOURCE"`
	PlayStoreURL      string `mapstructure:"PLAY_STORE_URL"`
	AppStoreURL       string `mapstructure:"APP_STORE_URL"`

	// Default nutritionist assignment (prototype stand-in for a real roster).
	NutritionistID       string `mapstructure:"NUTRITIONIST_ID"`
	NutritionistName     string `mapstructure:"NUTRITIONIST_NAME"`
	NutritionistCalendar string `mapstructure:"NUTRITIONIST_CALENDAR"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_OTP_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("OTP_TTL_MINUTES", 5)
	viper.SetDefault("RESEND_COOLDOWN_SEC", 60)
	viper.SetDefault("APP_SCHEME", "lillia")
	viper.SetDefault("DEEP_LINK_SOURCE", "web_onboarding")
	viper.SetDefault("PLAY_STORE_URL", "https://play.google.com/store/apps/details?id=com.lillia.health")
	viper.SetDefault("APP_STORE_URL", "https://apps.apple.com/app/lillia-health/id123456789")
	viper.SetDefault("NUTRITIONIST_ID", "NUT_001")
	viper.SetDefault("NUTRITIONIST_NAME", "Dr. Sarah Johnson")
	viper.SetDefault("NUTRITIONIST_CALENDAR", "prototype-calendar@example.com")

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
