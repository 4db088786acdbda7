// internal/usecase/todo/usecase_test.go
package todo_usecase

import (
	"context"
	"errors"
	"testing"

	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
	"github.com/hijjiri/todo-grpc/internal/infrastructure/memory"
	"go.uber.org/zap"
)

// テスト用のモック Repository
type mockRepo struct {
	// 挙動を制御するためのフィールド
	findAllFn func(ctx context.Context) ([]*domain_todo.Item, error)
	findFn    func(ctx context.Context, id string) (*domain_todo.Item, error)
	addFn     func(ctx context.Context, it *domain_todo.Item) (*domain_todo.Item, error)
	updateFn  func(ctx context.Context, it *domain_todo.Item) error
	removeFn  func(ctx context.Context, it *domain_todo.Item) error
	countFn   func(ctx context.Context) (int, error)
}

func (m *mockRepo) FindAll(ctx context.Context) ([]*domain_todo.Item, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return []*domain_todo.Item{}, nil
}

func (m *mockRepo) Find(ctx context.Context, id string) (*domain_todo.Item, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id)
	}
	return nil, domain_todo.ErrNotFound
}

func (m *mockRepo) Add(ctx context.Context, it *domain_todo.Item) (*domain_todo.Item, error) {
	if m.addFn != nil {
		return m.addFn(ctx, it)
	}
	return it, nil
}

func (m *mockRepo) Update(ctx context.Context, it *domain_todo.Item) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, it)
	}
	return nil
}

func (m *mockRepo) Remove(ctx context.Context, it *domain_todo.Item) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, it)
	}
	return nil
}

func (m *mockRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	// seed させないため、デフォルトは 1 件ある扱い
	return 1, nil
}

// テスト用の UnitOfWork（WithinTx はそのまま fn を呼ぶだけ）
type mockUoW struct {
	repo *mockRepo
	txs  int
}

func (u *mockUoW) TodoItems() domain_todo.ItemRepository { return u.repo }

func (u *mockUoW) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	u.txs++
	return fn(ctx)
}

func newUsecase(t *testing.T, repo *mockRepo) (Usecase, *mockUoW) {
	t.Helper()

	uow := &mockUoW{repo: repo}
	uc, err := New(context.Background(), uow, zap.NewNop())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return uc, uow
}

func TestUsecase_New_SeedsEmptyStore(t *testing.T) {
	t.Parallel()

	var added []*domain_todo.Item
	repo := &mockRepo{
		countFn: func(ctx context.Context) (int, error) { return 0, nil },
		addFn: func(ctx context.Context, it *domain_todo.Item) (*domain_todo.Item, error) {
			added = append(added, it)
			return it, nil
		},
	}

	newUsecase(t, repo)

	if len(added) != 1 {
		t.Fatalf("expected 1 seed item, got %d", len(added))
	}
	if added[0].Name != domain_todo.SeedItemName || added[0].Completed || added[0].ID == "" {
		t.Errorf("unexpected seed item: %#v", added[0])
	}
}

func TestUsecase_New_DoesNotSeedNonEmptyStore(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		countFn: func(ctx context.Context) (int, error) { return 3, nil },
		addFn: func(ctx context.Context, it *domain_todo.Item) (*domain_todo.Item, error) {
			t.Errorf("Add must not be called, got %#v", it)
			return it, nil
		},
	}

	newUsecase(t, repo)
}

func TestUsecase_New_CountError(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		countFn: func(ctx context.Context) (int, error) { return 0, domain_todo.ErrUnavailable },
	}

	_, err := New(context.Background(), &mockUoW{repo: repo}, zap.NewNop())
	if !errors.Is(err, domain_todo.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestUsecase_List_Success(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		findAllFn: func(ctx context.Context) ([]*domain_todo.Item, error) {
			return []*domain_todo.Item{
				{ID: "1", Name: "A", Completed: false},
				{ID: "2", Name: "B", Completed: true},
			}, nil
		},
	}
	uc, _ := newUsecase(t, repo)

	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list))
	}
	if list[0].Name != "A" || list[1].Name != "B" {
		t.Errorf("unexpected order or names: %#v", list)
	}
}

func TestUsecase_List_Unavailable(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		findAllFn: func(ctx context.Context) ([]*domain_todo.Item, error) {
			return nil, domain_todo.ErrUnavailable
		},
	}
	uc, _ := newUsecase(t, repo)

	if _, err := uc.List(context.Background()); !errors.Is(err, domain_todo.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestUsecase_Get_NotFound(t *testing.T) {
	t.Parallel()

	uc, _ := newUsecase(t, &mockRepo{})

	it, err := uc.Get(context.Background(), "missing")
	if !errors.Is(err, domain_todo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if it != nil {
		t.Errorf("expected nil item on not found, got %#v", it)
	}
}

func TestUsecase_Get_InvalidID(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		findFn: func(ctx context.Context, id string) (*domain_todo.Item, error) {
			t.Error("Find must not be called for empty id")
			return nil, nil
		},
	}
	uc, _ := newUsecase(t, repo)

	if _, err := uc.Get(context.Background(), ""); !errors.Is(err, domain_todo.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestUsecase_Create_Success(t *testing.T) {
	t.Parallel()

	var stored *domain_todo.Item
	repo := &mockRepo{
		addFn: func(ctx context.Context, it *domain_todo.Item) (*domain_todo.Item, error) {
			stored = it
			return it, nil
		},
	}
	uc, _ := newUsecase(t, repo)

	got, err := uc.Create(context.Background(), "テスト")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got.ID == "" || got.ID != stored.ID {
		t.Errorf("expected generated id to be stored, got %q (stored %q)", got.ID, stored.ID)
	}
	if got.Name != "テスト" {
		t.Errorf("expected Name=%q, got %q", "テスト", got.Name)
	}
	if got.Completed {
		t.Errorf("expected Completed=false, got true")
	}
}

func TestUsecase_Create_EmptyName(t *testing.T) {
	t.Parallel()

	uc, _ := newUsecase(t, &mockRepo{})

	if _, err := uc.Create(context.Background(), ""); !errors.Is(err, domain_todo.ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestUsecase_Create_Conflict(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		addFn: func(ctx context.Context, it *domain_todo.Item) (*domain_todo.Item, error) {
			return nil, domain_todo.ErrConflict
		},
	}
	uc, _ := newUsecase(t, repo)

	if _, err := uc.Create(context.Background(), "x"); !errors.Is(err, domain_todo.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestUsecase_Update_ReturnsReReadValue(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		updateFn: func(ctx context.Context, it *domain_todo.Item) error {
			if it.ID != "3" {
				t.Errorf("expected id=3, got %q", it.ID)
			}
			return nil
		},
		findFn: func(ctx context.Context, id string) (*domain_todo.Item, error) {
			// ストア側で正規化された値を返す想定
			return &domain_todo.Item{ID: id, Name: "canonical", Completed: true}, nil
		},
	}
	uc, uow := newUsecase(t, repo)
	before := uow.txs

	got, err := uc.Update(context.Background(), &domain_todo.Item{ID: "3", Name: "更新", Completed: true})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got.Name != "canonical" || !got.Completed {
		t.Errorf("expected re-read item, got %#v", got)
	}
	if uow.txs != before+1 {
		t.Errorf("expected update+find to run in one session, got %d sessions", uow.txs-before)
	}
}

func TestUsecase_Update_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		updateFn: func(ctx context.Context, it *domain_todo.Item) error {
			return domain_todo.ErrNotFound
		},
		findFn: func(ctx context.Context, id string) (*domain_todo.Item, error) {
			t.Error("Find must not be called after a failed update")
			return nil, nil
		},
	}
	uc, _ := newUsecase(t, repo)

	_, err := uc.Update(context.Background(), &domain_todo.Item{ID: "9", Name: "x"})
	if !errors.Is(err, domain_todo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUsecase_Update_DeletedBeforeReRead(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		findFn: func(ctx context.Context, id string) (*domain_todo.Item, error) {
			return nil, domain_todo.ErrNotFound
		},
	}
	uc, _ := newUsecase(t, repo)

	_, err := uc.Update(context.Background(), &domain_todo.Item{ID: "9", Name: "x"})
	if !errors.Is(err, domain_todo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUsecase_Update_Invalid(t *testing.T) {
	t.Parallel()

	uc, _ := newUsecase(t, &mockRepo{})
	ctx := context.Background()

	if _, err := uc.Update(ctx, nil); !errors.Is(err, domain_todo.ErrInvalidID) {
		t.Errorf("nil item: expected ErrInvalidID, got %v", err)
	}
	if _, err := uc.Update(ctx, &domain_todo.Item{Name: "x"}); !errors.Is(err, domain_todo.ErrInvalidID) {
		t.Errorf("empty id: expected ErrInvalidID, got %v", err)
	}
	if _, err := uc.Update(ctx, &domain_todo.Item{ID: "1"}); !errors.Is(err, domain_todo.ErrEmptyName) {
		t.Errorf("empty name: expected ErrEmptyName, got %v", err)
	}
}

func TestUsecase_Delete_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		removeFn: func(ctx context.Context, it *domain_todo.Item) error {
			t.Error("Remove must not be called when lookup fails")
			return nil
		},
	}
	uc, _ := newUsecase(t, repo)

	if _, err := uc.Delete(context.Background(), "123"); !errors.Is(err, domain_todo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUsecase_Delete_LostRace(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		findFn: func(ctx context.Context, id string) (*domain_todo.Item, error) {
			return &domain_todo.Item{ID: id, Name: "x"}, nil
		},
		removeFn: func(ctx context.Context, it *domain_todo.Item) error {
			// find のあとに別の呼び出しが消した
			return domain_todo.ErrNotFound
		},
	}
	uc, _ := newUsecase(t, repo)

	if _, err := uc.Delete(context.Background(), "1"); !errors.Is(err, domain_todo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUsecase_Delete_InvalidID(t *testing.T) {
	t.Parallel()

	uc, _ := newUsecase(t, &mockRepo{})

	if _, err := uc.Delete(context.Background(), ""); !errors.Is(err, domain_todo.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

// ---- memory ストアを使ったふるまいのテスト ----

func newMemoryUsecase(t *testing.T, names ...string) (Usecase, domain_todo.ItemRepository, []*domain_todo.Item) {
	t.Helper()

	ctx := context.Background()
	store := memory.NewStore()
	repo := store.TodoItems()

	var items []*domain_todo.Item
	for _, name := range names {
		it, err := domain_todo.NewItem(name)
		if err != nil {
			t.Fatalf("NewItem: %v", err)
		}
		if _, err := repo.Add(ctx, it); err != nil {
			t.Fatalf("Add: %v", err)
		}
		items = append(items, it)
	}

	uc, err := New(ctx, store, zap.NewNop())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return uc, repo, items
}

func TestUsecase_Seed_MemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore()

	for i := 0; i < 3; i++ {
		if _, err := New(ctx, store, zap.NewNop()); err != nil {
			t.Fatalf("New returned error: %v", err)
		}
	}

	all, err := store.TodoItems().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly 1 seed item after repeated construction, got %d", len(all))
	}
	if all[0].Name != domain_todo.SeedItemName || all[0].Completed {
		t.Errorf("unexpected seed item: %#v", all[0])
	}
}

func TestUsecase_CreateThenGet(t *testing.T) {
	t.Parallel()

	uc, _, _ := newMemoryUsecase(t, "existing")
	ctx := context.Background()

	created, err := uc.Create(ctx, "牛乳を買う")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := uc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if *got != *created {
		t.Errorf("expected %#v, got %#v", created, got)
	}
}

func TestUsecase_ListMatchesLiveItems(t *testing.T) {
	t.Parallel()

	uc, _, seeded := newMemoryUsecase(t, "T1")
	ctx := context.Background()

	live := map[string]bool{seeded[0].ID: true}
	for _, name := range []string{"a", "b", "c"} {
		it, err := uc.Create(ctx, name)
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		live[it.ID] = true
	}
	deleted, err := uc.Delete(ctx, seeded[0].ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	delete(live, deleted.ID)

	list, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != len(live) {
		t.Fatalf("expected %d items, got %d", len(live), len(list))
	}
	for _, it := range list {
		if !live[it.ID] {
			t.Errorf("unexpected or duplicate item in list: %#v", it)
		}
		delete(live, it.ID)
	}
}

func TestUsecase_UpdateLeavesOthersUntouched(t *testing.T) {
	t.Parallel()

	uc, _, items := newMemoryUsecase(t, "T1", "T2")
	ctx := context.Background()

	want := domain_todo.Item{ID: items[0].ID, Name: "T1 done", Completed: true}
	if _, err := uc.Update(ctx, &want); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := uc.Get(ctx, want.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if *got != want {
		t.Errorf("expected %#v, got %#v", want, *got)
	}

	other, err := uc.Get(ctx, items[1].ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if *other != *items[1] {
		t.Errorf("unrelated item changed: %#v", other)
	}
}

func TestUsecase_Update_UnknownIDLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	uc, repo, _ := newMemoryUsecase(t, "T1")
	ctx := context.Background()

	_, err := uc.Update(ctx, &domain_todo.Item{ID: "missing", Name: "x"})
	if !errors.Is(err, domain_todo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Errorf("expected count=1, got %d (err=%v)", n, err)
	}
}

func TestUsecase_DeleteOneOfThree(t *testing.T) {
	t.Parallel()

	uc, repo, items := newMemoryUsecase(t, "T1", "T2", "T3")
	ctx := context.Background()

	deleted, err := uc.Delete(ctx, items[0].ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if *deleted != *items[0] {
		t.Errorf("expected response to echo T1, got %#v", deleted)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 items left, got %d", n)
	}

	if _, err := uc.Get(ctx, items[0].ID); !errors.Is(err, domain_todo.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	list, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 || list[0].ID != items[1].ID || list[1].ID != items[2].ID {
		t.Errorf("expected {T2,T3}, got %#v", list)
	}
}
