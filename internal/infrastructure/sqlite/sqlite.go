// Package sqlite は SQLite（modernc.org/sqlite, CGO 不要）用の接続とスキーマ、
// エラー分類を提供する。Repository 本体は sqlstore を使う。
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite" // registers the "sqlite" driver
	sqlite3 "modernc.org/sqlite/lib"

	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
	"github.com/hijjiri/todo-grpc/internal/infrastructure/sqlstore"
)

const schema = `
CREATE TABLE IF NOT EXISTS ` + sqlstore.TableName + ` (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0
);
`

// Open はファイルを開いてスキーマを流した *sql.DB を返す。
// 親ディレクトリが無ければ作る。
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("sqlite: path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite は書き込みが 1 本なので、接続も 1 本に絞って "database is locked" を避ける
	db.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func dsn(path string) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + path + "?" + q.Encode()
}

// Migrate はテーブルが無ければ作る。
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Classify は sqlstore.Classifier の SQLite 版。
func Classify(err error) error {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return nil
	}

	code := se.Code()
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return fmt.Errorf("%w: %w", domain_todo.ErrConflict, err)
	}

	// 拡張コードの下位 8bit が基本コード
	switch code & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		if strings.Contains(se.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %w", domain_todo.ErrConflict, err)
		}
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_IOERR, sqlite3.SQLITE_CANTOPEN:
		return fmt.Errorf("%w: %w", domain_todo.ErrUnavailable, err)
	}
	return nil
}
