// Package todov1 holds the todo.v1 wire messages and the TodoService
// descriptor described by todo.proto.
//
// Messages carry protobuf struct tags and are encoded by
// google.golang.org/protobuf through its struct-tag message support, so the
// bytes on the wire match todo.proto field for field.
package todov1

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"
)

func format(m protoadapt.MessageV1) string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}

// Todo is one to-do item on the wire.
type Todo struct {
	Id         string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name       string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	IsComplete bool   `protobuf:"varint,3,opt,name=is_complete,json=isComplete,proto3" json:"is_complete,omitempty"`
}

func (x *Todo) Reset()         { *x = Todo{} }
func (x *Todo) String() string { return format(x) }
func (*Todo) ProtoMessage()    {}

func (x *Todo) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Todo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Todo) GetIsComplete() bool {
	if x != nil {
		return x.IsComplete
	}
	return false
}

type GetTodoItemsResponse struct {
	Todos []*Todo `protobuf:"bytes,1,rep,name=todos,proto3" json:"todos,omitempty"`
}

func (x *GetTodoItemsResponse) Reset()         { *x = GetTodoItemsResponse{} }
func (x *GetTodoItemsResponse) String() string { return format(x) }
func (*GetTodoItemsResponse) ProtoMessage()    {}

func (x *GetTodoItemsResponse) GetTodos() []*Todo {
	if x != nil {
		return x.Todos
	}
	return nil
}

type GetTodoItemRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (x *GetTodoItemRequest) Reset()         { *x = GetTodoItemRequest{} }
func (x *GetTodoItemRequest) String() string { return format(x) }
func (*GetTodoItemRequest) ProtoMessage()    {}

func (x *GetTodoItemRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetTodoItemResponse struct {
	Todo *Todo `protobuf:"bytes,1,opt,name=todo,proto3" json:"todo,omitempty"`
}

func (x *GetTodoItemResponse) Reset()         { *x = GetTodoItemResponse{} }
func (x *GetTodoItemResponse) String() string { return format(x) }
func (*GetTodoItemResponse) ProtoMessage()    {}

func (x *GetTodoItemResponse) GetTodo() *Todo {
	if x != nil {
		return x.Todo
	}
	return nil
}

type PostTodoItemRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (x *PostTodoItemRequest) Reset()         { *x = PostTodoItemRequest{} }
func (x *PostTodoItemRequest) String() string { return format(x) }
func (*PostTodoItemRequest) ProtoMessage()    {}

func (x *PostTodoItemRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type PostTodoItemResponse struct {
	Todo *Todo `protobuf:"bytes,1,opt,name=todo,proto3" json:"todo,omitempty"`
}

func (x *PostTodoItemResponse) Reset()         { *x = PostTodoItemResponse{} }
func (x *PostTodoItemResponse) String() string { return format(x) }
func (*PostTodoItemResponse) ProtoMessage()    {}

func (x *PostTodoItemResponse) GetTodo() *Todo {
	if x != nil {
		return x.Todo
	}
	return nil
}

type PutTodoItemRequest struct {
	Todo *Todo `protobuf:"bytes,1,opt,name=todo,proto3" json:"todo,omitempty"`
}

func (x *PutTodoItemRequest) Reset()         { *x = PutTodoItemRequest{} }
func (x *PutTodoItemRequest) String() string { return format(x) }
func (*PutTodoItemRequest) ProtoMessage()    {}

func (x *PutTodoItemRequest) GetTodo() *Todo {
	if x != nil {
		return x.Todo
	}
	return nil
}

type PutTodoItemResponse struct {
	Todo *Todo `protobuf:"bytes,1,opt,name=todo,proto3" json:"todo,omitempty"`
}

func (x *PutTodoItemResponse) Reset()         { *x = PutTodoItemResponse{} }
func (x *PutTodoItemResponse) String() string { return format(x) }
func (*PutTodoItemResponse) ProtoMessage()    {}

func (x *PutTodoItemResponse) GetTodo() *Todo {
	if x != nil {
		return x.Todo
	}
	return nil
}

type DeleteTodoItemRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (x *DeleteTodoItemRequest) Reset()         { *x = DeleteTodoItemRequest{} }
func (x *DeleteTodoItemRequest) String() string { return format(x) }
func (*DeleteTodoItemRequest) ProtoMessage()    {}

func (x *DeleteTodoItemRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteTodoItemResponse struct {
	Todo *Todo `protobuf:"bytes,1,opt,name=todo,proto3" json:"todo,omitempty"`
}

func (x *DeleteTodoItemResponse) Reset()         { *x = DeleteTodoItemResponse{} }
func (x *DeleteTodoItemResponse) String() string { return format(x) }
func (*DeleteTodoItemResponse) ProtoMessage()    {}

func (x *DeleteTodoItemResponse) GetTodo() *Todo {
	if x != nil {
		return x.Todo
	}
	return nil
}
