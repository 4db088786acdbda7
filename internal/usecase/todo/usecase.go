package todo_usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
)

// ===== 外部に公開する Usecase インターフェース =====

type Usecase interface {
	List(ctx context.Context) ([]*domain_todo.Item, error)
	Get(ctx context.Context, id string) (*domain_todo.Item, error)
	Create(ctx context.Context, name string) (*domain_todo.Item, error)
	Update(ctx context.Context, item *domain_todo.Item) (*domain_todo.Item, error)
	Delete(ctx context.Context, id string) (*domain_todo.Item, error)
}

// ===== 実装 =====

type usecase struct {
	uow    domain_todo.UnitOfWork
	logger *zap.Logger
}

// New は Usecase を組み立てる。
// ストアが空なら seed Item を 1 件入れる（空でなければ何もしないので、何度 New しても重複しない）。
func New(ctx context.Context, uow domain_todo.UnitOfWork, logger *zap.Logger) (Usecase, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	u := &usecase{uow: uow, logger: logger}
	if err := u.seed(ctx); err != nil {
		return nil, fmt.Errorf("seed todo items: %w", err)
	}
	return u, nil
}

func (u *usecase) seed(ctx context.Context) error {
	return u.uow.WithinTx(ctx, func(ctx context.Context) error {
		repo := u.uow.TodoItems()

		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		it, err := repo.Add(ctx, domain_todo.NewSeedItem())
		if err != nil {
			return err
		}
		u.logger.Info("seeded empty todo store",
			zap.String("id", it.ID),
			zap.String("name", it.Name),
		)
		return nil
	})
}

// List ユースケース
func (u *usecase) List(ctx context.Context) ([]*domain_todo.Item, error) {
	return u.uow.TodoItems().FindAll(ctx)
}

// Get ユースケース
func (u *usecase) Get(ctx context.Context, id string) (*domain_todo.Item, error) {
	if err := domain_todo.ValidateID(id); err != nil {
		return nil, err
	}
	return u.uow.TodoItems().Find(ctx, id)
}

// Create ユースケース：ID はサーバ側で採番する
func (u *usecase) Create(ctx context.Context, name string) (*domain_todo.Item, error) {
	it, err := domain_todo.NewItem(name)
	if err != nil {
		return nil, err
	}
	return u.uow.TodoItems().Add(ctx, it)
}

// Update ユースケース：置き換えたあと読み直して、ストア上の値を返す
func (u *usecase) Update(ctx context.Context, item *domain_todo.Item) (*domain_todo.Item, error) {
	if item == nil {
		return nil, domain_todo.ErrInvalidID
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	var updated *domain_todo.Item
	err := u.uow.WithinTx(ctx, func(ctx context.Context) error {
		repo := u.uow.TodoItems()
		if err := repo.Update(ctx, item); err != nil {
			return err
		}

		var err error
		updated, err = repo.Find(ctx, item.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete ユースケース：find で存在確認してから remove し、消す直前の値を返す。
// find と remove の間に他の呼び出しが消していたら remove 側が ErrNotFound を返す。
func (u *usecase) Delete(ctx context.Context, id string) (*domain_todo.Item, error) {
	if err := domain_todo.ValidateID(id); err != nil {
		return nil, err
	}

	var deleted *domain_todo.Item
	err := u.uow.WithinTx(ctx, func(ctx context.Context) error {
		repo := u.uow.TodoItems()

		it, err := repo.Find(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.Remove(ctx, it); err != nil {
			return err
		}
		deleted = it
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Debug("todo item deleted", zap.String("id", deleted.ID))
	return deleted, nil
}
