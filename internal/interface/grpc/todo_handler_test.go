package grpcadapter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	todov1 "github.com/hijjiri/todo-grpc/api/todo/v1"
	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
)

// ---- fake usecase ----

type fakeUsecase struct {
	ListFn   func(ctx context.Context) ([]*domain_todo.Item, error)
	GetFn    func(ctx context.Context, id string) (*domain_todo.Item, error)
	CreateFn func(ctx context.Context, name string) (*domain_todo.Item, error)
	UpdateFn func(ctx context.Context, item *domain_todo.Item) (*domain_todo.Item, error)
	DeleteFn func(ctx context.Context, id string) (*domain_todo.Item, error)
}

func (f *fakeUsecase) List(ctx context.Context) ([]*domain_todo.Item, error) {
	return f.ListFn(ctx)
}

func (f *fakeUsecase) Get(ctx context.Context, id string) (*domain_todo.Item, error) {
	return f.GetFn(ctx, id)
}

func (f *fakeUsecase) Create(ctx context.Context, name string) (*domain_todo.Item, error) {
	return f.CreateFn(ctx, name)
}

func (f *fakeUsecase) Update(ctx context.Context, item *domain_todo.Item) (*domain_todo.Item, error) {
	return f.UpdateFn(ctx, item)
}

func (f *fakeUsecase) Delete(ctx context.Context, id string) (*domain_todo.Item, error) {
	return f.DeleteFn(ctx, id)
}

func assertCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if got := status.Code(err); got != want {
		t.Fatalf("expected code %s, got %s (err=%v)", want, got, err)
	}
}

// ---- tests ----

func TestTodoHandler_GetTodoItems(t *testing.T) {
	uc := &fakeUsecase{
		ListFn: func(ctx context.Context) ([]*domain_todo.Item, error) {
			return []*domain_todo.Item{
				{ID: "a", Name: "Item1"},
				{ID: "b", Name: "done", Completed: true},
			}, nil
		},
	}
	h := NewTodoHandler(uc, nil)

	res, err := h.GetTodoItems(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.GetTodos()) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(res.GetTodos()))
	}
	if got := res.GetTodos()[1]; got.GetId() != "b" || got.GetName() != "done" || !got.GetIsComplete() {
		t.Errorf("unexpected todo: %v", got)
	}
}

func TestTodoHandler_GetTodoItems_EmptyIsNotNil(t *testing.T) {
	uc := &fakeUsecase{
		ListFn: func(ctx context.Context) ([]*domain_todo.Item, error) { return nil, nil },
	}
	res, err := NewTodoHandler(uc, nil).GetTodoItems(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.GetTodos() == nil || len(res.GetTodos()) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", res.GetTodos())
	}
}

func TestTodoHandler_PutTodoItem_MapsFields(t *testing.T) {
	var got *domain_todo.Item
	uc := &fakeUsecase{
		UpdateFn: func(ctx context.Context, item *domain_todo.Item) (*domain_todo.Item, error) {
			got = item
			return item, nil
		},
	}
	h := NewTodoHandler(uc, nil)

	res, err := h.PutTodoItem(context.Background(), &todov1.PutTodoItemRequest{
		Todo: &todov1.Todo{Id: "x", Name: "renamed", IsComplete: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != "x" || got.Name != "renamed" || !got.Completed {
		t.Errorf("usecase received %#v", got)
	}
	if res.GetTodo().GetName() != "renamed" {
		t.Errorf("unexpected response: %v", res)
	}
}

func TestTodoHandler_PutTodoItem_NilTodo(t *testing.T) {
	uc := &fakeUsecase{
		UpdateFn: func(ctx context.Context, item *domain_todo.Item) (*domain_todo.Item, error) {
			t.Fatal("usecase must not be called")
			return nil, nil
		},
	}
	_, err := NewTodoHandler(uc, nil).PutTodoItem(context.Background(), &todov1.PutTodoItemRequest{})
	assertCode(t, err, codes.InvalidArgument)
}

func TestTodoHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"empty name", domain_todo.ErrEmptyName, codes.InvalidArgument},
		{"invalid id", domain_todo.ErrInvalidID, codes.InvalidArgument},
		{"not found", fmt.Errorf("find %q: %w", "x", domain_todo.ErrNotFound), codes.NotFound},
		{"conflict", fmt.Errorf("add: %w", domain_todo.ErrConflict), codes.AlreadyExists},
		{"unavailable", fmt.Errorf("%w: %w", domain_todo.ErrUnavailable, errors.New("conn refused")), codes.Unavailable},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
		{"unknown", errors.New("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUsecase{
				GetFn: func(ctx context.Context, id string) (*domain_todo.Item, error) { return nil, tt.err },
			}
			_, err := NewTodoHandler(uc, nil).GetTodoItem(context.Background(), &todov1.GetTodoItemRequest{Id: "x"})
			assertCode(t, err, tt.want)
		})
	}
}

func TestTodoHandler_InternalErrorIsNotLeaked(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	uc := &fakeUsecase{
		DeleteFn: func(ctx context.Context, id string) (*domain_todo.Item, error) {
			return nil, errors.New("dsn root:secret@tcp(db)")
		},
	}
	h := NewTodoHandler(uc, zap.New(core))

	_, err := h.DeleteTodoItem(WithRequestID(context.Background(), "rid-1"), &todov1.DeleteTodoItemRequest{Id: "x"})
	assertCode(t, err, codes.Internal)

	if msg := status.Convert(err).Message(); msg != "internal error" {
		t.Errorf("unexpected message sent to client: %q", msg)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 error log, got %d", logs.Len())
	}
	if rid := logs.All()[0].ContextMap()["request_id"]; rid != "rid-1" {
		t.Errorf("expected request_id field, got %v", rid)
	}
}
