package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	todov1 "github.com/hijjiri/todo-grpc/api/todo/v1"
	grpcadapter "github.com/hijjiri/todo-grpc/internal/interface/grpc"
)

func printTodo(prefix string, t *todov1.Todo) {
	fmt.Printf("%s id=%s name=%s completed=%v\n", prefix, t.GetId(), t.GetName(), t.GetIsComplete())
}

func main() {
	addr := flag.String("addr", "localhost:50051", "gRPC server address")
	mode := flag.String("mode", "list", "mode: list | get | create | update | delete")
	id := flag.String("id", "", "item id for get / update / delete")
	name := flag.String("name", "", "item name for create / update")
	completed := flag.Bool("completed", false, "completion flag for update")
	token := flag.String("token", "", "bearer token (when the server has auth enabled)")
	requestID := flag.String("request-id", "", "value for the x-request-id header")
	trace := flag.Bool("trace", false, "attach the otelgrpc client stats handler")
	timeout := flag.Duration("timeout", 3*time.Second, "per-call timeout")
	flag.Parse()

	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if *trace {
		dialOpts = append(dialOpts, grpc.WithStatsHandler(otelgrpc.NewClientHandler()))
	}

	conn, err := grpc.NewClient(*addr, dialOpts...)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	client := todov1.NewTodoServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+*token)
	}
	if *requestID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, grpcadapter.RequestIDHeader, *requestID)
	}

	switch *mode {
	case "list":
		res, err := client.GetTodoItems(ctx, &emptypb.Empty{})
		if err != nil {
			fatalRPC("GetTodoItems", err)
		}
		if len(res.GetTodos()) == 0 {
			fmt.Println("no todos")
			return
		}
		fmt.Println("todos:")
		for _, t := range res.GetTodos() {
			printTodo("-", t)
		}

	case "get":
		requireFlag("id", *id)
		res, err := client.GetTodoItem(ctx, &todov1.GetTodoItemRequest{Id: *id})
		if err != nil {
			fatalRPC("GetTodoItem", err)
		}
		printTodo("todo:", res.GetTodo())

	case "create":
		requireFlag("name", *name)
		res, err := client.PostTodoItem(ctx, &todov1.PostTodoItemRequest{Name: *name})
		if err != nil {
			fatalRPC("PostTodoItem", err)
		}
		printTodo("created:", res.GetTodo())

	case "update":
		requireFlag("id", *id)
		requireFlag("name", *name)
		res, err := client.PutTodoItem(ctx, &todov1.PutTodoItemRequest{Todo: &todov1.Todo{
			Id:         *id,
			Name:       *name,
			IsComplete: *completed,
		}})
		if err != nil {
			fatalRPC("PutTodoItem", err)
		}
		printTodo("updated:", res.GetTodo())

	case "delete":
		requireFlag("id", *id)
		res, err := client.DeleteTodoItem(ctx, &todov1.DeleteTodoItemRequest{Id: *id})
		if err != nil {
			fatalRPC("DeleteTodoItem", err)
		}
		printTodo("deleted:", res.GetTodo())

	default:
		log.Fatalf("unknown mode: %s", *mode)
	}
}

func requireFlag(name, v string) {
	if v == "" {
		log.Fatalf("-%s is required for this mode", name)
	}
}

func fatalRPC(method string, err error) {
	st := status.Convert(err)
	log.Fatalf("%s failed: code=%s message=%s", method, st.Code(), st.Message())
}
