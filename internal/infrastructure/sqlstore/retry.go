package sqlstore

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
	"time"
)

// RetryPolicy は「何回・どのくらい待つか」をまとめた設定。
type RetryPolicy struct {
	MaxAttempts int           // 合計何回試すか（1 ならリトライ無し）
	BaseBackoff time.Duration // 1 回目の待ち時間
	MaxBackoff  time.Duration // 待ち時間の上限
}

// DefaultReadRetry は FindAll / Find / Count 向けの安全寄りデフォルト。
// 書き込みはリトライしない（二重実行を避ける）。
var DefaultReadRetry = RetryPolicy{
	MaxAttempts: 3,
	BaseBackoff: 50 * time.Millisecond,
	MaxBackoff:  500 * time.Millisecond,
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.BaseBackoff <= 0 {
		p.BaseBackoff = 10 * time.Millisecond
	}
	if p.MaxBackoff < p.BaseBackoff {
		p.MaxBackoff = p.BaseBackoff
	}
	return p
}

// doWithRetry は retryable なエラーのみをバックオフ付きで再実行する。
// ctx の deadline/cancel を尊重して即中断する。
func doWithRetry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	policy = policy.normalized()

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil || !isTransientDBErr(lastErr) || attempt == policy.MaxAttempts {
			return lastErr
		}

		if err := sleepWithContext(ctx, backoff(policy, attempt)); err != nil {
			return err
		}
	}
	return lastErr
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff は base * 2^(attempt-1) を max で頭打ちにする（ジッタ無し）。
func backoff(p RetryPolicy, attempt int) time.Duration {
	b := p.BaseBackoff
	for i := 1; i < attempt; i++ {
		b *= 2
		if b >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}
	return b
}

// 文字列判定はドライバ依存を避けるための保険
var transientMessages = []string{
	"deadlock",
	"lock wait timeout",
	"database is locked",
	"connection reset",
	"connection refused",
	"broken pipe",
	"timeout",
}

// isTransientDBErr は “一時的に起きがちな” DB/ネットワーク系だけ true。
func isTransientDBErr(err error) bool {
	// ctx 系は retry しない（上位に返す）
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, s := range transientMessages {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
