// Package memory は Item コレクションをプロセス内に持つバックエンド。
// テストダブルとしても、store.driver=memory の本番寄り構成としても使う。
package memory

import (
	"context"
	"fmt"
	"sync"

	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
)

var (
	_ domain_todo.UnitOfWork     = (*Store)(nil)
	_ domain_todo.ItemRepository = (*ItemRepository)(nil)
)

// セッション中の ctx に付けるキー（ネストした WithinTx を検出する）
type sessionKey struct{}

// Store は 1 コレクション分の UnitOfWork。
// インスタンスごとに独立した状態を持つ（グローバル状態は無い）。
type Store struct {
	// WithinTx 同士を直列化する
	session sync.Mutex

	items *ItemRepository
}

func NewStore() *Store {
	return &Store{
		items: &ItemRepository{
			items: make(map[string]*domain_todo.Item),
		},
	}
}

func (s *Store) TodoItems() domain_todo.ItemRepository {
	return s.items
}

// WithinTx はセッションロックを取って fn を実行する。
// ロールバックは無い（書き込みは各操作の時点で確定する）が、
// セッション同士は割り込まないので find → remove などが原子的になる。
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(sessionKey{}).(bool); ok {
		return fn(ctx)
	}

	s.session.Lock()
	defer s.session.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(context.WithValue(ctx, sessionKey{}, true))
}

// ItemRepository は map + 挿入順スライスで Item を保持する。
type ItemRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]*domain_todo.Item
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]*domain_todo.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*domain_todo.Item, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id].Clone())
	}
	return items, nil
}

func (r *ItemRepository) Find(ctx context.Context, id string) (*domain_todo.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("find %q: %w", id, domain_todo.ErrNotFound)
	}
	return it.Clone(), nil
}

func (r *ItemRepository) Add(ctx context.Context, item *domain_todo.Item) (*domain_todo.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if item == nil || item.ID == "" {
		return nil, domain_todo.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return nil, fmt.Errorf("add %q: %w", item.ID, domain_todo.ErrConflict)
	}

	r.items[item.ID] = item.Clone()
	r.order = append(r.order, item.ID)
	return item.Clone(), nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain_todo.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if item == nil || item.ID == "" {
		return domain_todo.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return fmt.Errorf("update %q: %w", item.ID, domain_todo.ErrNotFound)
	}
	r.items[item.ID] = item.Clone()
	return nil
}

func (r *ItemRepository) Remove(ctx context.Context, item *domain_todo.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if item == nil || item.ID == "" {
		return domain_todo.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return fmt.Errorf("remove %q: %w", item.ID, domain_todo.ErrNotFound)
	}
	delete(r.items, item.ID)

	for i, id := range r.order {
		if id == item.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
