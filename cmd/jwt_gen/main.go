package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hijjiri/todo-grpc/internal/auth"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	subject := flag.String("sub", getenv("JWT_SUBJECT", "user-123"), "token subject")
	ttl := flag.Duration("ttl", auth.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	// サーバと同じ TODO_AUTH_SECRET で署名する
	secret := os.Getenv("TODO_AUTH_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "TODO_AUTH_SECRET is required")
		os.Exit(1)
	}

	token, err := auth.GenerateToken(secret, *subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}

	// `make jwt` 用に標準出力にはトークンだけを出す
	fmt.Print(token)
}
