// Package sqlstore は database/sql の上に ItemRepository と UnitOfWork を実装する。
// 方言ごとの差（DDL・エラー番号）は mysql / sqlite パッケージ側が Classifier で埋める。
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
)

var _ domain_todo.UnitOfWork = (*Store)(nil)

// テーブル名は方言パッケージの DDL と揃える
const TableName = "todo_items"

// Classifier はドライバ固有のエラーを domain のエラー分類
// （ErrConflict / ErrUnavailable）でラップして返す。知らないエラーなら nil。
type Classifier func(err error) error

// Config は Store の挙動を決める設定。
type Config struct {
	Name     string     // ログ・breaker 用の名前（"mysql" など）
	Classify Classifier // nil なら共通判定のみ

	ReadRetry RetryPolicy

	// BreakerMaxFailures 回連続で ErrUnavailable になったら breaker を開く。0 以下で無効。
	BreakerMaxFailures int
	BreakerTimeout     time.Duration
}

// Store は 1 つの *sql.DB に対する UnitOfWork。
type Store struct {
	db     *sql.DB
	items  *ItemRepository
	logger *zap.Logger
}

func New(db *sql.DB, cfg Config, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Name == "" {
		cfg.Name = "sqlstore"
	}

	return &Store{
		db: db,
		items: &ItemRepository{
			db:       db,
			classify: chainClassifier(cfg.Classify),
			retry:    cfg.ReadRetry,
			breaker:  newBreaker(cfg, logger),
		},
		logger: logger,
	}
}

func (s *Store) TodoItems() domain_todo.ItemRepository {
	return s.items
}

// Breaker の状態をヘルスチェック用に返す
func (s *Store) Healthy() bool {
	return s.items.breaker.healthy()
}

// ---- トランザクション ----

// context にぶら下げる用のキー
type txKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// Repository 側で「この ctx に Tx がぶら下がっているか？」を見るためのヘルパ
func TxFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// WithinTx は ctx を引き継いだトランザクションを開始し、fn をその中で実行する。
// fn 内では ctx から Tx が見えるので、Repository は自動的に Tx 側で SQL を流す。
// 既に Tx 付きの ctx なら新しく貼らずに外側へ相乗りする。
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", s.items.classify(err))
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("failed to rollback tx", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", s.items.classify(err))
	}
	return nil
}
