// Package config loads server settings from built-in defaults, an optional
// YAML file and TODO_ environment variables, in that order of precedence.
package config

import "time"

// Store drivers.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	GRPC      GRPCConfig      `koanf:"grpc"`
	Admin     AdminConfig     `koanf:"admin"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	DB        DBConfig        `koanf:"db"`
	Auth      AuthConfig      `koanf:"auth"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

type GRPCConfig struct {
	Addr           string        `koanf:"addr"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// AdminConfig は /metrics と /healthz を出す HTTP サーバ
type AdminConfig struct {
	Addr string `koanf:"addr"`
}

type LogConfig struct {
	Level       string `koanf:"level"`
	Development bool   `koanf:"development"`
}

type StoreConfig struct {
	Driver  string        `koanf:"driver"`
	SQLite  SQLiteConfig  `koanf:"sqlite"`
	Breaker BreakerConfig `koanf:"breaker"`
}

type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// BreakerConfig は SQL バックエンドのサーキットブレーカ設定。
// MaxFailures が 0 なら無効。
type BreakerConfig struct {
	MaxFailures int           `koanf:"max_failures"`
	Timeout     time.Duration `koanf:"timeout"`
}

type DBConfig struct {
	Host            string        `koanf:"host"`
	Port            string        `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	ConnectAttempts int           `koanf:"connect_attempts"`
	ConnectInterval time.Duration `koanf:"connect_interval"`
}

// AuthConfig: Secret が空なら認証なし
type AuthConfig struct {
	Secret string `koanf:"secret"`
}

type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
