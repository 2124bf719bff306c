package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// SSEKeepaliveSeconds spaces the comment frames that keep chat streams
	// open through proxies.
	SSEKeepaliveSeconds int `mapstructure:"sse_keepalive_seconds"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *ServerConfig) SSEKeepalive() time.Duration {
	if s.SSEKeepaliveSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.SSEKeepaliveSeconds) * time.Second
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

func (j *JWTConfig) TTL() time.Duration {
	return time.Duration(j.ExpireHours) * time.Hour
}

// AdminCredentialConfig is one staff login. PasswordHash (bcrypt) wins over
// Password when both are set.
type AdminCredentialConfig struct {
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type AuthConfig struct {
	JWT      JWTConfig               `mapstructure:"jwt"`
	Password PasswordConfig          `mapstructure:"password"`
	Admins   []AdminCredentialConfig `mapstructure:"admins"`
}

type TicketConfig struct {
	NumberPrefix string `mapstructure:"number_prefix"`
}

type MinecraftConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	StatusAPIURL   string `mapstructure:"status_api_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	DefaultVersion string `mapstructure:"default_version"`
	DefaultMax     int    `mapstructure:"default_max_players"`
}

func (m *MinecraftConfig) Timeout() time.Duration {
	if m.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(m.TimeoutSeconds) * time.Second
}

const (
	StorageDriverMemory = "memory"
	StorageDriverSQLite = "sqlite"
	StorageDriverMySQL  = "mysql"
)

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

func (s *StorageConfig) UsesDatabase() bool {
	return s.Driver == StorageDriverSQLite || s.Driver == StorageDriverMySQL
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	StaffAddress string `mapstructure:"staff_address"`
}

type UploadConfig struct {
	MaxBytes     int64  `mapstructure:"max_bytes"`
	PublicPrefix string `mapstructure:"public_prefix"`
}
