package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Seed
		Housekeeping
		Tasks
		Client
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Seed struct {
		OnStartup bool // seed the built-in alphabet dataset when the server starts
	}
	Housekeeping struct {
		Enabled   bool
		Schedule  string        // Cron format: "0 3 * * *" = daily at 03:00
		Retention time.Duration // how long completed sessions are kept
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	Client struct {
		ServerURL      string
		RequestTimeout time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("seed_on_startup", true)

	// Housekeeping defaults
	v.SetDefault("housekeeping_enabled", true)
	v.SetDefault("housekeeping_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("housekeeping_retention", "720h")     // 30 days

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	// Practice client defaults
	v.SetDefault("server_url", DefaultServerURL)
	v.SetDefault("request_timeout", "5s")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Seed: Seed{
			OnStartup: v.GetBool("SEED_ON_STARTUP"),
		},
		Housekeeping: Housekeeping{
			Enabled:   v.GetBool("HOUSEKEEPING_ENABLED"),
			Schedule:  v.GetString("HOUSEKEEPING_SCHEDULE"),
			Retention: v.GetDuration("HOUSEKEEPING_RETENTION"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Client: Client{
			ServerURL:      v.GetString("SERVER_URL"),
			RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		},
	}
}
