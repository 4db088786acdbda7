package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
)

var _ domain_todo.ItemRepository = (*ItemRepository)(nil)

var tracer = otel.Tracer("github.com/hijjiri/todo-grpc/internal/infrastructure/sqlstore")

// *sql.DB と *sql.Tx の共通部分
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type ItemRepository struct {
	db       *sql.DB
	classify Classifier
	retry    RetryPolicy
	breaker  *breaker
}

const (
	selectAllQuery = "SELECT id, name, completed FROM " + TableName + " ORDER BY id"
	selectOneQuery = "SELECT id, name, completed FROM " + TableName + " WHERE id = ?"
	insertQuery    = "INSERT INTO " + TableName + " (id, name, completed) VALUES (?, ?, ?)"
	updateQuery    = "UPDATE " + TableName + " SET name = ?, completed = ? WHERE id = ?"
	deleteQuery    = "DELETE FROM " + TableName + " WHERE id = ?"
	countQuery     = "SELECT COUNT(*) FROM " + TableName
)

// FindAll は全件を id 順で返す
func (r *ItemRepository) FindAll(ctx context.Context) ([]*domain_todo.Item, error) {
	var items []*domain_todo.Item
	err := r.run(ctx, "FindAll", true, func(ctx context.Context, q querier) error {
		rows, err := q.QueryContext(ctx, selectAllQuery)
		if err != nil {
			return err
		}
		defer rows.Close()

		items = items[:0]
		for rows.Next() {
			var it domain_todo.Item
			if err := rows.Scan(&it.ID, &it.Name, &it.Completed); err != nil {
				return err
			}
			items = append(items, &it)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	if items == nil {
		items = []*domain_todo.Item{}
	}
	return items, nil
}

func (r *ItemRepository) Find(ctx context.Context, id string) (*domain_todo.Item, error) {
	var it domain_todo.Item
	err := r.run(ctx, "Find", true, func(ctx context.Context, q querier) error {
		err := q.QueryRowContext(ctx, selectOneQuery, id).Scan(&it.ID, &it.Name, &it.Completed)
		if errors.Is(err, sql.ErrNoRows) {
			return domain_todo.ErrNotFound
		}
		return err
	}, attribute.String("todo.item_id", id))
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", id, err)
	}
	return &it, nil
}

func (r *ItemRepository) Add(ctx context.Context, item *domain_todo.Item) (*domain_todo.Item, error) {
	if item == nil || item.ID == "" {
		return nil, domain_todo.ErrInvalidID
	}

	err := r.run(ctx, "Add", false, func(ctx context.Context, q querier) error {
		_, err := q.ExecContext(ctx, insertQuery, item.ID, item.Name, item.Completed)
		return err
	}, attribute.String("todo.item_id", item.ID))
	if err != nil {
		return nil, fmt.Errorf("add %q: %w", item.ID, err)
	}
	return item.Clone(), nil
}

// Update は 1 行も当たらなければ ErrNotFound を返す。
// MySQL は DSN の clientFoundRows=true 前提（値が同じでも 1 行と数える）。
func (r *ItemRepository) Update(ctx context.Context, item *domain_todo.Item) error {
	if item == nil || item.ID == "" {
		return domain_todo.ErrInvalidID
	}

	err := r.run(ctx, "Update", false, func(ctx context.Context, q querier) error {
		res, err := q.ExecContext(ctx, updateQuery, item.Name, item.Completed, item.ID)
		if err != nil {
			return err
		}
		return requireAffected(res)
	}, attribute.String("todo.item_id", item.ID))
	if err != nil {
		return fmt.Errorf("update %q: %w", item.ID, err)
	}
	return nil
}

// Remove は削除件数 0 なら ErrNotFound（find と remove の間に消されたケースも含む）
func (r *ItemRepository) Remove(ctx context.Context, item *domain_todo.Item) error {
	if item == nil || item.ID == "" {
		return domain_todo.ErrInvalidID
	}

	err := r.run(ctx, "Remove", false, func(ctx context.Context, q querier) error {
		res, err := q.ExecContext(ctx, deleteQuery, item.ID)
		if err != nil {
			return err
		}
		return requireAffected(res)
	}, attribute.String("todo.item_id", item.ID))
	if err != nil {
		return fmt.Errorf("remove %q: %w", item.ID, err)
	}
	return nil
}

func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.run(ctx, "Count", true, func(ctx context.Context, q querier) error {
		return q.QueryRowContext(ctx, countQuery).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain_todo.ErrNotFound
	}
	return nil
}

// run は 1 操作分の共通処理：span → breaker → (読み取りかつ Tx 外なら) retry → エラー分類。
func (r *ItemRepository) run(
	ctx context.Context,
	op string,
	read bool,
	fn func(ctx context.Context, q querier) error,
	attrs ...attribute.KeyValue,
) error {
	ctx, span := tracer.Start(ctx, "sqlstore."+op, trace.WithAttributes(attrs...))
	defer span.End()

	var q querier = r.db
	tx, inTx := TxFromContext(ctx)
	if inTx {
		q = tx
	}

	err := r.breaker.do(func() error {
		call := func() error { return fn(ctx, q) }
		if read && !inTx {
			return r.classify(doWithRetry(ctx, r.retry, call))
		}
		return r.classify(call())
	})

	if err != nil && !errors.Is(err, domain_todo.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	return err
}

// chainClassifier は方言の Classifier の後ろに共通判定を付ける。
func chainClassifier(dialect Classifier) Classifier {
	return func(err error) error {
		if err == nil {
			return nil
		}
		if errors.Is(err, domain_todo.ErrNotFound) ||
			errors.Is(err, domain_todo.ErrConflict) ||
			errors.Is(err, domain_todo.ErrUnavailable) ||
			errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		if dialect != nil {
			if classified := dialect(err); classified != nil {
				return classified
			}
		}

		var ne net.Error
		if errors.Is(err, driver.ErrBadConn) ||
			errors.Is(err, sql.ErrConnDone) ||
			errors.As(err, &ne) ||
			// database/sql は close 後のエラーを export していない
			strings.Contains(err.Error(), "sql: database is closed") {
			return fmt.Errorf("%w: %w", domain_todo.ErrUnavailable, err)
		}
		return err
	}
}
