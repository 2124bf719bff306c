package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedConfig "leafsmp/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Ticket    sharedConfig.TicketConfig    `mapstructure:"ticket"`
	Minecraft sharedConfig.MinecraftConfig `mapstructure:"minecraft"`
	Storage   sharedConfig.StorageConfig   `mapstructure:"storage"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Upload    sharedConfig.UploadConfig    `mapstructure:"upload"`
}

// DefaultJWTSecret is only meant for local development.
const DefaultJWTSecret = "change-me-in-production"

// Load reads configs/config.yaml (optional) and LEAFSMP_* environment variables.
func Load(env string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("LEAFSMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case sharedConfig.StorageDriverMemory, sharedConfig.StorageDriverSQLite, sharedConfig.StorageDriverMySQL:
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret must not be empty")
	}
	if c.Auth.JWT.ExpireHours <= 0 {
		return fmt.Errorf("auth.jwt.expire_hours must be positive")
	}
	for i, admin := range c.Auth.Admins {
		if admin.Username == "" {
			return fmt.Errorf("auth.admins[%d].username is required", i)
		}
		if admin.Password == "" && admin.PasswordHash == "" {
			return fmt.Errorf("auth.admins[%d] needs password or password_hash", i)
		}
	}
	if c.Ticket.NumberPrefix == "" {
		return fmt.Errorf("ticket.number_prefix must not be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5000"})
	v.SetDefault("server.sse_keepalive_seconds", 30)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.jwt.secret", DefaultJWTSecret)
	v.SetDefault("auth.jwt.expire_hours", 24)
	v.SetDefault("auth.password.bcrypt_cost", 12)

	v.SetDefault("ticket.number_prefix", "LEAF")

	v.SetDefault("minecraft.host", "play.leafsmp.org")
	v.SetDefault("minecraft.port", 25590)
	v.SetDefault("minecraft.status_api_url", "https://api.mcsrvstat.us/2")
	v.SetDefault("minecraft.timeout_seconds", 5)
	v.SetDefault("minecraft.default_version", "1.20.x")
	v.SetDefault("minecraft.default_max_players", 500)

	v.SetDefault("storage.driver", sharedConfig.StorageDriverMemory)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "leafsmp")
	v.SetDefault("database.sqlite_path", "leafsmp.db")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.from_address", "noreply@leafsmp.org")
	v.SetDefault("email.from_name", "LeafSMP")

	v.SetDefault("upload.max_bytes", 5<<20)
	v.SetDefault("upload.public_prefix", "/uploads")
}
