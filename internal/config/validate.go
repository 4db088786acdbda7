package config

import (
	"errors"
	"fmt"
)

// Validate は全項目をチェックしてエラーをまとめて返す
func (c *Config) Validate() error {
	return errors.Join(
		c.GRPC.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.DB.validate(c.Store.Driver),
		c.Telemetry.validate(),
	)
}

func (g *GRPCConfig) validate() error {
	var errs []error
	if g.Addr == "" {
		errs = append(errs, errors.New("grpc.addr must not be empty"))
	}
	if g.RequestTimeout <= 0 {
		errs = append(errs, errors.New("grpc.request_timeout must be positive"))
	}
	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level)
	}
}

func (s *StoreConfig) validate() error {
	var errs []error

	switch s.Driver {
	case DriverMemory, DriverMySQL:
	case DriverSQLite:
		if s.SQLite.Path == "" {
			errs = append(errs, errors.New("store.sqlite.path must not be empty when driver is sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: memory, mysql, sqlite; got %q", s.Driver))
	}

	if s.Breaker.MaxFailures < 0 {
		errs = append(errs, fmt.Errorf("store.breaker.max_failures must be >= 0, got %d", s.Breaker.MaxFailures))
	}
	if s.Breaker.MaxFailures > 0 && s.Breaker.Timeout <= 0 {
		errs = append(errs, errors.New("store.breaker.timeout must be positive"))
	}
	return errors.Join(errs...)
}

// MySQL 以外では db.* は見ない
func (d *DBConfig) validate(driver string) error {
	if driver != DriverMySQL {
		return nil
	}

	var errs []error
	if d.Host == "" {
		errs = append(errs, errors.New("db.host must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("db.name must not be empty"))
	}
	if d.ConnectAttempts < 1 {
		errs = append(errs, fmt.Errorf("db.connect_attempts must be >= 1, got %d", d.ConnectAttempts))
	}
	if d.ConnectInterval <= 0 {
		errs = append(errs, errors.New("db.connect_interval must be positive"))
	}
	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error
	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}
	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}
	return errors.Join(errs...)
}
