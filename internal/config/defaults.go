package config

const (
	defaultConnectAttempts    = 20
	defaultBreakerMaxFailures = 5
)

func defaults() map[string]any {
	return map[string]any{
		"grpc.addr":            ":50051",
		"grpc.request_timeout": "3s",

		"admin.addr": ":9464",

		"log.level":       "info",
		"log.development": false,

		"store.driver":               DriverMemory,
		"store.sqlite.path":          "data/todo.db",
		"store.breaker.max_failures": defaultBreakerMaxFailures,
		"store.breaker.timeout":      "30s",

		"db.host":             "127.0.0.1",
		"db.port":             "3306",
		"db.user":             "root",
		"db.password":         "root",
		"db.name":             "tododb",
		"db.connect_attempts": defaultConnectAttempts,
		"db.connect_interval": "3s",

		"auth.secret": "",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-grpc",
	}
}
