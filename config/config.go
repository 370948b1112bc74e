package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Mode string `mapstructure:"mode"` // debug | release
	} `mapstructure:"server"`

	Admin struct {
		ID string `mapstructure:"id"`
	} `mapstructure:"admin"`

	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`

	Snapshot struct {
		Backend  string        `mapstructure:"backend"` // redis | database | none
		Interval time.Duration `mapstructure:"interval"`
		RedisKey string        `mapstructure:"redis_key"`
	} `mapstructure:"snapshot"`

	Database struct {
		Driver string `mapstructure:"driver"` // postgres | sqlite
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Sentry struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"sentry"`

	Tracing struct {
		Enabled  bool   `mapstructure:"enabled"`
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"tracing"`

	RateLimit struct {
		RPS   float64 `mapstructure:"rps"`
		Burst int     `mapstructure:"burst"`
	} `mapstructure:"ratelimit"`
}

// Load 读取 config.yaml，环境变量（SOCIALNET_ 前缀）可覆盖
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("SOCIALNET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("snapshot.backend", "none")
	v.SetDefault("snapshot.interval", "5m")
	v.SetDefault("snapshot.redis_key", "socialnet:snapshot")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "socialnet.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("log.level", "info")
	v.SetDefault("ratelimit.rps", 50)
	v.SetDefault("ratelimit.burst", 100)

	if err := v.ReadInConfig(); err != nil {
		// 允许无配置文件启动，全部走默认值与环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Admin.ID == "" {
		return nil, fmt.Errorf("admin.id is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}
	return &cfg, nil
}
