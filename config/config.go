package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Routine Planner specifics
	Firebase       FirebaseConfig
	Engine         EngineConfig
	GoogleCalendar GoogleCalendarConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// FirebaseConfig points at the Realtime Database. An empty DatabaseURL
// selects the in-memory store instead.
type FirebaseConfig struct {
	DatabaseURL string
	AuthToken   string
}

// EngineConfig tunes the slot allocation engine.
type EngineConfig struct {
	HorizonDays       int
	MaxBlocksPerDay   int
	SleepStart        string
	SleepEnd          string
	Timezone          string
	ShortfallPolicy   string
	EvictionPlacement string
	SessionTTL        time.Duration
	Lectures          []LectureConfig
}

// LectureConfig is one fixed weekly lecture entry of the calendar template.
type LectureConfig struct {
	Weekday string   `yaml:"weekday"`
	Times   []string `yaml:"times"`
	Label   string   `yaml:"label"`
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Firebase Realtime Database
	cfg.Firebase.DatabaseURL = viper.GetString("firebase.database_url")
	cfg.Firebase.AuthToken = expandEnvVar(viper.GetString("firebase.auth_token"))
	if dbURL := viper.GetString("firebase_database_url"); dbURL != "" {
		cfg.Firebase.DatabaseURL = dbURL
	}
	if token := viper.GetString("firebase_auth_token"); token != "" {
		cfg.Firebase.AuthToken = token
	}

	// Engine
	cfg.Engine.HorizonDays = viper.GetInt("engine.horizon_days")
	cfg.Engine.MaxBlocksPerDay = viper.GetInt("engine.max_blocks_per_day")
	cfg.Engine.SleepStart = viper.GetString("engine.sleep_start")
	cfg.Engine.SleepEnd = viper.GetString("engine.sleep_end")
	cfg.Engine.Timezone = viper.GetString("engine.timezone")
	cfg.Engine.ShortfallPolicy = viper.GetString("engine.shortfall_policy")
	cfg.Engine.EvictionPlacement = viper.GetString("engine.eviction_placement")
	cfg.Engine.SessionTTL = viper.GetDuration("engine.session_ttl")

	// Lecture table
	if viper.IsSet("engine.lectures") {
		lecturesRaw := viper.Get("engine.lectures")
		if lecturesList, ok := lecturesRaw.([]interface{}); ok {
			for _, entry := range lecturesList {
				if lectureMap, ok := entry.(map[string]interface{}); ok {
					lecture := LectureConfig{
						Weekday: getStringFromMap(lectureMap, "weekday"),
						Times:   getStringSliceFromMap(lectureMap, "times"),
						Label:   getStringFromMap(lectureMap, "label"),
					}
					cfg.Engine.Lectures = append(cfg.Engine.Lectures, lecture)
				}
			}
		}
	}

	// Google Calendar (optional mirror)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

// ParseWeekday maps a lowercase weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("engine.horizon_days", 30)
	viper.SetDefault("engine.max_blocks_per_day", 4)
	viper.SetDefault("engine.sleep_start", "01:00")
	viper.SetDefault("engine.sleep_end", "07:30")
	viper.SetDefault("engine.timezone", "Europe/Moscow")
	viper.SetDefault("engine.shortfall_policy", "legacy")
	viper.SetDefault("engine.eviction_placement", "after-deadline")
	viper.SetDefault("engine.session_ttl", "15m")

	viper.SetDefault("rate_limit.per_min", 120)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getStringSliceFromMap(m map[string]interface{}, key string) []string {
	val, ok := m[key]
	if !ok {
		return nil
	}
	list, ok := val.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if str, ok := item.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
