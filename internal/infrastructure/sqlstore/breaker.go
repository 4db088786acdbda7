package sqlstore

import (
	"errors"
	"fmt"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
)

// breaker は ErrUnavailable が続いたときに DB へ投げるのを一時的に止める。
// cb が nil なら素通し。
type breaker struct {
	cb *gobreaker.CircuitBreaker[struct{}]
}

func newBreaker(cfg Config, logger *zap.Logger) *breaker {
	if cfg.BreakerMaxFailures <= 0 {
		return &breaker{}
	}

	maxFailures := uint32(cfg.BreakerMaxFailures)
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// NotFound / Conflict は DB が生きている証拠なので失敗に数えない
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, domain_todo.ErrUnavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("storage circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &breaker{cb: cb}
}

func (b *breaker) do(fn func() error) error {
	if b.cb == nil {
		return fn()
	}

	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", domain_todo.ErrUnavailable, err)
	}
	return err
}

func (b *breaker) healthy() bool {
	return b.cb == nil || b.cb.State() != gobreaker.StateOpen
}
