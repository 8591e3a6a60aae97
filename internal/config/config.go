package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"

	GeolocationStatic = "static"
	GeolocationIPInfo = "ipinfo"
)

type Config struct {
	Environment string `toml:"-"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// map & form
	MapContainer   string   `toml:"map_container"`
	MapZoomLevel   int      `toml:"map_zoom_level"`
	FormResetDelay Duration `toml:"form_reset_delay"`
	PanDuration    Duration `toml:"pan_duration"`
	// storage
	StorageBackend  string `toml:"storage_backend"`
	StoragePath     string `toml:"storage_path"`
	MemoryCacheSize int    `toml:"memory_cache_size"`
	RedisHost       string `toml:"redis_host"`
	RedisPort       string `toml:"redis_port"`
	RedisKeyPrefix  string `toml:"redis_key_prefix"`
	PostgresHost    string `toml:"postgres_host"`
	PostgresPort    string `toml:"postgres_port"`
	PostgresDBName  string `toml:"postgres_db_name"`
	// geolocation
	Geolocation     string  `toml:"geolocation"`
	StaticLatitude  float64 `toml:"static_latitude"`
	StaticLongitude float64 `toml:"static_longitude"`
	// telemetry
	MetricsAddr    string `toml:"metrics_addr"`
	TracingEnabled bool   `toml:"tracing_enabled"`
}

// Duration lets TOML values like "1s" or "250ms" decode into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env,
// with defaults filled in and values validated.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	return fromToml(&t, env)
}

// Parse is like Load, but reads the TOML document from a string.
func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}

	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.MapContainer == "" {
		c.MapContainer = "map"
	}
	if c.MapZoomLevel == 0 {
		c.MapZoomLevel = 13
	}
	if c.FormResetDelay.Duration == 0 {
		c.FormResetDelay.Duration = time.Second
	}
	if c.PanDuration.Duration == 0 {
		c.PanDuration.Duration = time.Second
	}
	if c.StorageBackend == "" {
		c.StorageBackend = StorageMemory
	}
	if c.MemoryCacheSize == 0 {
		c.MemoryCacheSize = 64 * 1024 * 1024
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.RedisKeyPrefix == "" {
		c.RedisKeyPrefix = "mapty::"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.Geolocation == "" {
		c.Geolocation = GeolocationStatic
	}
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageMemory:
	case StorageFile:
		if c.StoragePath == "" {
			return fmt.Errorf("storage backend [%s] needs storage_path", c.StorageBackend)
		}
	case StorageRedis:
		if c.RedisHost == "" {
			return fmt.Errorf("storage backend [%s] needs redis_host", c.StorageBackend)
		}
	case StoragePostgres:
		if c.PostgresHost == "" || c.PostgresDBName == "" {
			return fmt.Errorf("storage backend [%s] needs postgres_host and postgres_db_name", c.StorageBackend)
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}

	switch c.Geolocation {
	case GeolocationStatic, GeolocationIPInfo:
	default:
		return fmt.Errorf("unknown geolocation provider: %s", c.Geolocation)
	}

	if c.MapZoomLevel < 0 || c.MapZoomLevel > 19 {
		return fmt.Errorf("map zoom level out of range: %d", c.MapZoomLevel)
	}
	if c.FormResetDelay.Duration < 0 || c.PanDuration.Duration < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}
