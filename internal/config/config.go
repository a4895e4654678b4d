package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	AI        AIConfig
	KIE       KIEConfig       `mapstructure:"kie"`
	Poster    PosterConfig    `mapstructure:"poster"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Session   SessionConfig   `mapstructure:"session"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`

	// 配置文件实际路径（未找到配置文件时为空）
	File string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// AIConfig OpenAI 兼容接口配置，APIKey 为空时走确定性生成
type AIConfig struct {
	BaseURL          string        `mapstructure:"base_url"`
	APIKey           string        `mapstructure:"api_key"`
	Model            string        `mapstructure:"model"`
	Timeout          time.Duration `mapstructure:"timeout"`
	ParseTemperature float64       `mapstructure:"parse_temperature"`
	PlanTemperature  float64       `mapstructure:"plan_temperature"`
	ParseTimeout     time.Duration `mapstructure:"parse_timeout"`
	PlanTimeout      time.Duration `mapstructure:"plan_timeout"`
	LogCalls         bool          `mapstructure:"log_calls"`
}

// KIEConfig 图像生成服务配置
type KIEConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Prompt      string        `mapstructure:"prompt"`
	AspectRatio string        `mapstructure:"aspect_ratio"`
	Resolution  string        `mapstructure:"resolution"`
	Format      string        `mapstructure:"output_format"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// PosterConfig 海报生成轮询参数
type PosterConfig struct {
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	MaxPollAttempts int           `mapstructure:"max_poll_attempts"`
	TemplateBaseURL string        `mapstructure:"template_base_url"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	MaxUploadSize int64  `mapstructure:"max_upload_size"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioSecure   bool   `mapstructure:"minio_secure"`
	MinioRegion   string `mapstructure:"minio_region"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

// SessionConfig 会话存储（仅临时状态，不做持久化）
type SessionConfig struct {
	Store string        `mapstructure:"store"`
	TTL   time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.timeout", 30*time.Second)
	v.SetDefault("ai.parse_temperature", 0.3)
	v.SetDefault("ai.plan_temperature", 0.7)
	v.SetDefault("ai.parse_timeout", 20*time.Second)
	v.SetDefault("ai.plan_timeout", 60*time.Second)

	v.SetDefault("kie.base_url", "https://api.kie.ai")
	v.SetDefault("kie.model", "nano-banana-pro")
	v.SetDefault("kie.prompt", DefaultCalendarPrompt)
	v.SetDefault("kie.aspect_ratio", "4:3")
	v.SetDefault("kie.resolution", "1K")
	v.SetDefault("kie.output_format", "png")
	v.SetDefault("kie.timeout", 60*time.Second)

	v.SetDefault("poster.poll_interval", 2*time.Second)
	v.SetDefault("poster.max_poll_attempts", 60)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "data")
	v.SetDefault("storage.max_upload_size", 10<<20)
	v.SetDefault("storage.minio_region", "us-east-2")

	v.SetDefault("session.store", "memory")
	v.SetDefault("session.ttl", 24*time.Hour)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)

	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
}

func bindEnv(v *viper.Viper) {
	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.port", "PORT")

	// AI
	v.BindEnv("ai.base_url", "AI_BASE_URL")
	v.BindEnv("ai.api_key", "OPENAI_API_KEY", "AI_API_KEY")
	v.BindEnv("ai.model", "AI_MODEL")

	// KIE
	v.BindEnv("kie.base_url", "KIE_BASE_URL")
	v.BindEnv("kie.api_key", "KIE_API_KEY")
	v.BindEnv("kie.model", "KIE_MODEL")
	v.BindEnv("kie.prompt", "CALENDAR_PROMPT")
	v.BindEnv("poster.template_base_url", "TEMPLATE_BASE_URL")

	// Storage
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.public_base_url", "PUBLIC_FILE_BASE")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY", "AWS_ACCESS_KEY_ID")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET", "S3_BUCKET")
	v.BindEnv("storage.minio_region", "AWS_REGION")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")

	// Session / Redis
	v.BindEnv("session.store", "SESSION_STORE")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")
}

// LoadConfig 读取 path 目录下的 config.yaml；文件不存在时只使用默认值和环境变量
func LoadConfig(path string) (*Config, error) {
	// .env 不存在不算错误
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SPRINTWISE")
	v.AutomaticEnv()

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

// Validate 校验取值范围
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server.mode %q (must be debug, release or test)", c.Server.Mode)
	}
	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 {
		return fmt.Errorf("rate_limit.max_requests and rate_limit.window_minutes must be positive")
	}
	if c.Poster.PollInterval <= 0 {
		return fmt.Errorf("poster.poll_interval must be positive, got %s", c.Poster.PollInterval)
	}
	if c.Poster.MaxPollAttempts <= 0 {
		return fmt.Errorf("poster.max_poll_attempts must be positive, got %d", c.Poster.MaxPollAttempts)
	}
	switch c.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown session.store %q (must be memory or redis)", c.Session.Store)
	}
	switch c.Storage.Type {
	case "local", "minio", "s3", "oss":
	default:
		return fmt.Errorf("unknown storage.type %q", c.Storage.Type)
	}
	return nil
}

// PublicBaseURL 文件与模板对外可访问的根地址，未配置时指向本服务
func (c *Config) PublicBaseURL() string {
	if base := strings.TrimRight(c.Storage.PublicBaseURL, "/"); base != "" {
		return base
	}
	return "http://localhost:" + c.Server.Port
}

// Default 返回仅含默认值的配置，测试与离线命令使用
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

const DefaultCalendarPrompt = `You have two input images:
1. USER IMAGE: a photo of the person (selfie or portrait)
2. REFERENCE CALENDAR: a themed 30-day planner template

Produce an exact replica of the reference calendar with one change: every human or cartoon character in the
reference is replaced by a stylized version of the person from the user image.

- Keep the layout, proportions, colours, borders and decorative elements identical.
- Keep the 30-day grid in the same position with the same cell sizes, and leave every cell empty.
- Match the reference's drawing style, and keep each character's pose, position and size.
- Output a single character: the user, in the reference style.

The output is used as a base image; goals are overlaid later at fixed pixel positions.`
