// Package mysql は MySQL 用の接続・スキーマ・エラー分類。
// Repository 本体は sqlstore を使う。
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
	"github.com/hijjiri/todo-grpc/internal/infrastructure/sqlstore"
)

// MySQL のエラー番号
const (
	errDupEntry         = 1062
	errLockDeadlock     = 1213
	errLockWaitTimeout  = 1205
	errTooManyConns     = 1040
	errServerShutdown   = 1053
	errConnCountExceeds = 1203
)

const schema = `
CREATE TABLE IF NOT EXISTS ` + sqlstore.TableName + ` (
    id VARCHAR(64) NOT NULL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    completed BOOLEAN NOT NULL DEFAULT FALSE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string

	ConnectAttempts int
	ConnectInterval time.Duration
}

// DSN は go-sql-driver/mysql 用の接続文字列を組み立てる。
// clientFoundRows は UPDATE が「値が同じでも 1 行」と返すために必須。
func DSN(cfg Config) string {
	c := mysql.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	c.DBName = cfg.Name
	c.ParseTime = true
	c.Loc = time.UTC
	c.Timeout = 5 * time.Second
	c.ClientFoundRows = true
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

// Open は接続を開き、ping が通るまで待ってから schema を流す。
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := pingWithRetry(ctx, db, logger, cfg.ConnectAttempts, cfg.ConnectInterval); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("connected to MySQL",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port),
		zap.String("db", cfg.Name),
	)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func pingWithRetry(ctx context.Context, db *sql.DB, logger *zap.Logger, maxAttempts int, interval time.Duration) error {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	var lastErr error
	for i := 1; i <= maxAttempts; i++ {
		lastErr = db.PingContext(ctx)
		if lastErr == nil {
			return nil
		}

		logger.Warn("failed to ping db",
			zap.Int("attempt", i),
			zap.Int("maxAttempts", maxAttempts),
			zap.Error(lastErr),
		)
		if i == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return fmt.Errorf("%w: ping db after %d attempts: %w", domain_todo.ErrUnavailable, maxAttempts, lastErr)
}

// Classify は sqlstore.Classifier の MySQL 版。
func Classify(err error) error {
	if errors.Is(err, mysql.ErrInvalidConn) {
		return fmt.Errorf("%w: %w", domain_todo.ErrUnavailable, err)
	}

	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return nil
	}

	switch me.Number {
	case errDupEntry:
		return fmt.Errorf("%w: %w", domain_todo.ErrConflict, err)
	case errTooManyConns, errServerShutdown, errConnCountExceeds, errLockDeadlock, errLockWaitTimeout:
		return fmt.Errorf("%w: %w", domain_todo.ErrUnavailable, err)
	}
	return nil
}
