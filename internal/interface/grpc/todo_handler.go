package grpcadapter

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	todov1 "github.com/hijjiri/todo-grpc/api/todo/v1"
	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
	todo_usecase "github.com/hijjiri/todo-grpc/internal/usecase/todo"
)

// TodoHandler は TodoService の gRPC 実装。
// リクエストを Usecase の呼び出しに変換し、domain の Item を todo.v1.Todo に詰め替える。
type TodoHandler struct {
	todov1.UnimplementedTodoServiceServer

	uc     todo_usecase.Usecase
	logger *zap.Logger
}

func NewTodoHandler(uc todo_usecase.Usecase, logger *zap.Logger) *TodoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TodoHandler{uc: uc, logger: logger}
}

// --- List ---
func (h *TodoHandler) GetTodoItems(ctx context.Context, _ *emptypb.Empty) (*todov1.GetTodoItemsResponse, error) {
	list, err := h.uc.List(ctx)
	if err != nil {
		return nil, h.toGRPCError(ctx, err)
	}

	resp := &todov1.GetTodoItemsResponse{Todos: make([]*todov1.Todo, 0, len(list))}
	for _, it := range list {
		resp.Todos = append(resp.Todos, toProtoTodo(it))
	}
	return resp, nil
}

// --- Get ---
func (h *TodoHandler) GetTodoItem(ctx context.Context, req *todov1.GetTodoItemRequest) (*todov1.GetTodoItemResponse, error) {
	it, err := h.uc.Get(ctx, req.GetId())
	if err != nil {
		return nil, h.toGRPCError(ctx, err)
	}
	return &todov1.GetTodoItemResponse{Todo: toProtoTodo(it)}, nil
}

// --- Create ---
func (h *TodoHandler) PostTodoItem(ctx context.Context, req *todov1.PostTodoItemRequest) (*todov1.PostTodoItemResponse, error) {
	it, err := h.uc.Create(ctx, req.GetName())
	if err != nil {
		return nil, h.toGRPCError(ctx, err)
	}
	return &todov1.PostTodoItemResponse{Todo: toProtoTodo(it)}, nil
}

// --- Update ---
func (h *TodoHandler) PutTodoItem(ctx context.Context, req *todov1.PutTodoItemRequest) (*todov1.PutTodoItemResponse, error) {
	if req.GetTodo() == nil {
		return nil, status.Error(codes.InvalidArgument, "todo is required")
	}

	it, err := h.uc.Update(ctx, toDomainItem(req.GetTodo()))
	if err != nil {
		return nil, h.toGRPCError(ctx, err)
	}
	return &todov1.PutTodoItemResponse{Todo: toProtoTodo(it)}, nil
}

// --- Delete ---
func (h *TodoHandler) DeleteTodoItem(ctx context.Context, req *todov1.DeleteTodoItemRequest) (*todov1.DeleteTodoItemResponse, error) {
	it, err := h.uc.Delete(ctx, req.GetId())
	if err != nil {
		return nil, h.toGRPCError(ctx, err)
	}
	return &todov1.DeleteTodoItemResponse{Todo: toProtoTodo(it)}, nil
}

// --- converter (domain <-> proto) ---
func toProtoTodo(it *domain_todo.Item) *todov1.Todo {
	return &todov1.Todo{
		Id:         it.ID,
		Name:       it.Name,
		IsComplete: it.Completed,
	}
}

func toDomainItem(t *todov1.Todo) *domain_todo.Item {
	return &domain_todo.Item{
		ID:        t.GetId(),
		Name:      t.GetName(),
		Completed: t.GetIsComplete(),
	}
}

// --- error mapper ---
func (h *TodoHandler) toGRPCError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, domain_todo.ErrEmptyName):
		return status.Error(codes.InvalidArgument, "name is required")

	case errors.Is(err, domain_todo.ErrInvalidID):
		return status.Error(codes.InvalidArgument, "invalid id")

	case errors.Is(err, domain_todo.ErrNotFound):
		return status.Error(codes.NotFound, "todo item not found")

	case errors.Is(err, domain_todo.ErrConflict):
		return status.Error(codes.AlreadyExists, "todo item already exists")

	case errors.Is(err, domain_todo.ErrUnavailable):
		h.logger.Warn("todo storage unavailable", requestFields(ctx, zap.Error(err))...)
		return status.Error(codes.Unavailable, "storage unavailable")

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return mapContextErrToStatus(err)

	default:
		// Internal詳細はログ側にだけ残す
		h.logger.Error("todo handler internal error", requestFields(ctx, zap.Error(err))...)
		return status.Error(codes.Internal, "internal error")
	}
}

func mapContextErrToStatus(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timeout")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		return status.Error(codes.Internal, "context error")
	}
}
