package todo

import (
	"context"
	"errors"
)

// ---- ストレージ側のエラー分類 ----
// Repository 実装はドライバ固有のエラーをこの 3 つに寄せて返す（%w でラップしてよい）。

var (
	// 該当 ID の Item が無い。
	ErrNotFound = errors.New("todo item not found")

	// 同じ ID の Item が既にある。
	ErrConflict = errors.New("todo item already exists")

	// バックエンドに届かない / 壊れている。
	ErrUnavailable = errors.New("todo storage unavailable")
)

// ItemRepository は Item コレクションに対する CRUD の抽象。
// バックエンド（memory / MySQL / SQLite）ごとに 1 実装。
type ItemRepository interface {
	// FindAll は全件を返す。順序はバックエンド依存。
	FindAll(ctx context.Context) ([]*Item, error)

	// Find は ID で 1 件引く。無ければ ErrNotFound。
	Find(ctx context.Context, id string) (*Item, error)

	// Add は ID 採番済みの Item を登録する。ID 重複なら ErrConflict。
	Add(ctx context.Context, item *Item) (*Item, error)

	// Update は item.ID の Item を丸ごと置き換える。無ければ ErrNotFound（no-op にはしない）。
	Update(ctx context.Context, item *Item) error

	// Remove は item.ID の Item を消す。削除時点で無ければ ErrNotFound。
	Remove(ctx context.Context, item *Item) error

	// Count は現在の件数。起動時の seed 判定に使う。
	Count(ctx context.Context) (int, error)
}

// UnitOfWork は 1 つの永続化セッションを表すハンドル。
// いまは Repository が 1 つだけだが、エンティティが増えたらここに足していく。
type UnitOfWork interface {
	TodoItems() ItemRepository

	// WithinTx は fn を 1 セッション（SQL ならトランザクション）として実行する。
	// fn に渡された ctx で呼んだ Repository 操作がそのセッションに乗る。
	// fn が error を返したらロールバック。
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
