package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Database   DatabaseConfig   `yaml:"database"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Import     ImportConfig     `yaml:"import"`
	Review     ReviewConfig     `yaml:"review"`
	Reminder   ReminderConfig   `yaml:"reminder"`
	Progress   ProgressConfig   `yaml:"progress"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Driver     string `yaml:"driver"      env:"STORE_DRIVER"      env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite_path" env:"STORE_SQLITE_PATH" env-default:"./wordbook.db"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used when
// store.driver is postgres.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// DictionaryConfig holds word library and dictionary lookup settings.
type DictionaryConfig struct {
	MaxWordsInLibrary int           `yaml:"max_words_in_library" env:"DICT_MAX_WORDS_IN_LIBRARY" env-default:"10000"`
	APIBaseURL        string        `yaml:"api_base_url"         env:"DICT_API_BASE_URL"         env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout           time.Duration `yaml:"timeout"              env:"DICT_TIMEOUT"              env-default:"5s"`
	RetryDelay        time.Duration `yaml:"retry_delay"          env:"DICT_RETRY_DELAY"          env-default:"1s"`
	CacheSize         int           `yaml:"cache_size"           env:"DICT_CACHE_SIZE"           env-default:"2048"`
}

// ImportConfig holds CSV import settings.
type ImportConfig struct {
	MaxWordsPerImport int `yaml:"max_words_per_import" env:"IMPORT_MAX_WORDS"          env-default:"1000"`
	EnrichConcurrency int `yaml:"enrich_concurrency"   env:"IMPORT_ENRICH_CONCURRENCY" env-default:"4"`
	ProgressEvery     int `yaml:"progress_every"       env:"IMPORT_PROGRESS_EVERY"     env-default:"10"`
}

// ReviewConfig holds review scheduling settings.
type ReviewConfig struct {
	MaxWordsPerSession int `yaml:"max_words_per_session" env:"REVIEW_MAX_WORDS_PER_SESSION" env-default:"50"`
}

// ReminderConfig holds the due-review reminder settings.
type ReminderConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"REMINDER_ENABLED"  env-default:"true"`
	Interval time.Duration `yaml:"interval" env:"REMINDER_INTERVAL" env-default:"5m"`
}

// ProgressConfig holds statistics settings.
type ProgressConfig struct {
	Timezone    string `yaml:"timezone"     env:"PROGRESS_TIMEZONE"     env-default:"UTC"`
	HeatmapDays int    `yaml:"heatmap_days" env:"PROGRESS_HEATMAP_DAYS" env-default:"365"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
