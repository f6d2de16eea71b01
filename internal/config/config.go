package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const defaultLLMTimeout = 60 * time.Second

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// web origins allowed by CORS
	AllowedOrigins []string `toml:"allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	SentryDSN     string `toml:"-"`

	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresPassword string `toml:"-"`

	// redis
	RedisHost     string `toml:"redis_host"`
	RedisPort     string `toml:"redis_port"`
	RedisPassword string `toml:"-"`

	// metrics & tracing
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	HoneycombEnabled      bool   `toml:"honeycomb_enabled"`

	// auth
	AppSecretHash string `toml:"-"`
	MCPSecret     string `toml:"-"`

	// AI limits
	DailyPlanLimit     int `toml:"daily_plan_limit"`
	DailyGuidanceLimit int `toml:"daily_guidance_limit"`
	DailyAnalysisLimit int `toml:"daily_analysis_limit"`
	BurstPerMinute     int `toml:"burst_per_minute"`
	APIRequestsPerMin  int `toml:"api_requests_per_minute"`
	MaxRequestBodyKB   int `toml:"max_request_body_kb"`

	DefaultCycleLength int `toml:"default_cycle_length"`

	LLM LLMConfig `toml:"llm"`

	// caches
	DashboardCacheSizeMB int      `toml:"dashboard_cache_size_mb"`
	ReferenceCacheTTL    duration `toml:"reference_cache_ttl"`
}

type LLMConfig struct {
	BaseURL             string   `toml:"base_url"`
	APIKey              string   `toml:"-"`
	Model               string   `toml:"model"`
	Timeout             duration `toml:"timeout"`
	MaxRetries          int      `toml:"max_retries"`
	OptimizeTemperature float64  `toml:"optimize_temperature"`
	OptimizeMaxTokens   int      `toml:"optimize_max_tokens"`
	GuidanceTemperature float64  `toml:"guidance_temperature"`
	GuidanceMaxTokens   int      `toml:"guidance_max_tokens"`
	CostInPer1K         float64  `toml:"cost_in_per_1k_eur"`
	CostOutPer1K        float64  `toml:"cost_out_per_1k_eur"`
}

// duration reads "90s" style strings from toml.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the env section of the TOML file, applies the secrets from the
// environment and validates the result.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.LLM.APIKey, "GYMCOACH_LLM_API_KEY")
	set(&c.RedisPassword, "GYMCOACH_REDIS_PASS")
	set(&c.PostgresPassword, "GYMCOACH_DB_PASS")
	set(&c.AppSecretHash, "GYMCOACH_APP_SECRET_HASH")
	set(&c.MCPSecret, "GYMCOACH_MCP_SECRET")
	set(&c.SentryDSN, "SENTRY_DSN")
}

// Validate fills defaults and clamps ranges. Only a missing port is an error.
func (c *Config) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	switch {
	case c.DefaultCycleLength == 0:
		c.DefaultCycleLength = training.DefaultCycleLength
	case c.DefaultCycleLength < training.MinCycleLength:
		c.DefaultCycleLength = training.MinCycleLength
	case c.DefaultCycleLength > training.MaxCycleLength:
		c.DefaultCycleLength = training.MaxCycleLength
	}

	if c.LLM.Timeout.Duration <= 0 {
		c.LLM.Timeout.Duration = defaultLLMTimeout
	}
	if c.LLM.MaxRetries < 0 {
		c.LLM.MaxRetries = 0
	}
	if c.LLM.OptimizeMaxTokens <= 0 {
		c.LLM.OptimizeMaxTokens = 2000
		c.LLM.OptimizeTemperature = 0.3
	}
	if c.LLM.GuidanceMaxTokens <= 0 {
		c.LLM.GuidanceMaxTokens = 200
		c.LLM.GuidanceTemperature = 0.7
	}

	if c.DailyPlanLimit <= 0 {
		c.DailyPlanLimit = 5
	}
	if c.DailyGuidanceLimit <= 0 {
		c.DailyGuidanceLimit = 30
	}
	if c.DailyAnalysisLimit <= 0 {
		c.DailyAnalysisLimit = 10
	}
	if c.APIRequestsPerMin <= 0 {
		c.APIRequestsPerMin = 120
	}
	if c.MaxRequestBodyKB <= 0 {
		c.MaxRequestBodyKB = 512
	}

	return nil
}
