package todov1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const TodoService_ServiceName = "todo.v1.TodoService"

const (
	TodoService_GetTodoItems_FullMethodName   = "/todo.v1.TodoService/GetTodoItems"
	TodoService_GetTodoItem_FullMethodName    = "/todo.v1.TodoService/GetTodoItem"
	TodoService_PostTodoItem_FullMethodName   = "/todo.v1.TodoService/PostTodoItem"
	TodoService_PutTodoItem_FullMethodName    = "/todo.v1.TodoService/PutTodoItem"
	TodoService_DeleteTodoItem_FullMethodName = "/todo.v1.TodoService/DeleteTodoItem"
)

// TodoServiceClient is the client API for TodoService.
type TodoServiceClient interface {
	GetTodoItems(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*GetTodoItemsResponse, error)
	GetTodoItem(ctx context.Context, in *GetTodoItemRequest, opts ...grpc.CallOption) (*GetTodoItemResponse, error)
	PostTodoItem(ctx context.Context, in *PostTodoItemRequest, opts ...grpc.CallOption) (*PostTodoItemResponse, error)
	PutTodoItem(ctx context.Context, in *PutTodoItemRequest, opts ...grpc.CallOption) (*PutTodoItemResponse, error)
	DeleteTodoItem(ctx context.Context, in *DeleteTodoItemRequest, opts ...grpc.CallOption) (*DeleteTodoItemResponse, error)
}

type todoServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTodoServiceClient(cc grpc.ClientConnInterface) TodoServiceClient {
	return &todoServiceClient{cc}
}

func (c *todoServiceClient) GetTodoItems(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*GetTodoItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTodoItemsResponse)
	if err := c.cc.Invoke(ctx, TodoService_GetTodoItems_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) GetTodoItem(ctx context.Context, in *GetTodoItemRequest, opts ...grpc.CallOption) (*GetTodoItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTodoItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_GetTodoItem_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) PostTodoItem(ctx context.Context, in *PostTodoItemRequest, opts ...grpc.CallOption) (*PostTodoItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PostTodoItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_PostTodoItem_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) PutTodoItem(ctx context.Context, in *PutTodoItemRequest, opts ...grpc.CallOption) (*PutTodoItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PutTodoItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_PutTodoItem_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) DeleteTodoItem(ctx context.Context, in *DeleteTodoItemRequest, opts ...grpc.CallOption) (*DeleteTodoItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteTodoItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_DeleteTodoItem_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

// TodoServiceServer is the server API for TodoService.
// Implementations must embed UnimplementedTodoServiceServer.
type TodoServiceServer interface {
	GetTodoItems(context.Context, *emptypb.Empty) (*GetTodoItemsResponse, error)
	GetTodoItem(context.Context, *GetTodoItemRequest) (*GetTodoItemResponse, error)
	PostTodoItem(context.Context, *PostTodoItemRequest) (*PostTodoItemResponse, error)
	PutTodoItem(context.Context, *PutTodoItemRequest) (*PutTodoItemResponse, error)
	DeleteTodoItem(context.Context, *DeleteTodoItemRequest) (*DeleteTodoItemResponse, error)
	mustEmbedUnimplementedTodoServiceServer()
}

// UnimplementedTodoServiceServer answers every method with codes.Unimplemented.
// Embed it by value.
type UnimplementedTodoServiceServer struct{}

func (UnimplementedTodoServiceServer) GetTodoItems(context.Context, *emptypb.Empty) (*GetTodoItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTodoItems not implemented")
}

func (UnimplementedTodoServiceServer) GetTodoItem(context.Context, *GetTodoItemRequest) (*GetTodoItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTodoItem not implemented")
}

func (UnimplementedTodoServiceServer) PostTodoItem(context.Context, *PostTodoItemRequest) (*PostTodoItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PostTodoItem not implemented")
}

func (UnimplementedTodoServiceServer) PutTodoItem(context.Context, *PutTodoItemRequest) (*PutTodoItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PutTodoItem not implemented")
}

func (UnimplementedTodoServiceServer) DeleteTodoItem(context.Context, *DeleteTodoItemRequest) (*DeleteTodoItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteTodoItem not implemented")
}

func (UnimplementedTodoServiceServer) mustEmbedUnimplementedTodoServiceServer() {}

func RegisterTodoServiceServer(s grpc.ServiceRegistrar, srv TodoServiceServer) {
	s.RegisterService(&TodoService_ServiceDesc, srv)
}

func _TodoService_GetTodoItems_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TodoServiceServer).GetTodoItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TodoService_GetTodoItems_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TodoServiceServer).GetTodoItems(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _TodoService_GetTodoItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTodoItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TodoServiceServer).GetTodoItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TodoService_GetTodoItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TodoServiceServer).GetTodoItem(ctx, req.(*GetTodoItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TodoService_PostTodoItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PostTodoItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TodoServiceServer).PostTodoItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TodoService_PostTodoItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TodoServiceServer).PostTodoItem(ctx, req.(*PostTodoItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TodoService_PutTodoItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PutTodoItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TodoServiceServer).PutTodoItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TodoService_PutTodoItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TodoServiceServer).PutTodoItem(ctx, req.(*PutTodoItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TodoService_DeleteTodoItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteTodoItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TodoServiceServer).DeleteTodoItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TodoService_DeleteTodoItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TodoServiceServer).DeleteTodoItem(ctx, req.(*DeleteTodoItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TodoService_ServiceDesc is the grpc.ServiceDesc for TodoService.
var TodoService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: TodoService_ServiceName,
	HandlerType: (*TodoServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetTodoItems",
			Handler:    _TodoService_GetTodoItems_Handler,
		},
		{
			MethodName: "GetTodoItem",
			Handler:    _TodoService_GetTodoItem_Handler,
		},
		{
			MethodName: "PostTodoItem",
			Handler:    _TodoService_PostTodoItem_Handler,
		},
		{
			MethodName: "PutTodoItem",
			Handler:    _TodoService_PutTodoItem_Handler,
		},
		{
			MethodName: "DeleteTodoItem",
			Handler:    _TodoService_DeleteTodoItem_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "todo/v1/todo.proto",
}
