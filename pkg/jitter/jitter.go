// Package jitter считает задержки между повторами со случайной добавкой,
// чтобы повторы разных горутин и процессов не совпадали по времени.
package jitter

import (
	"context"
	"math/rand/v2"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

// Duration возвращает d со случайной добавкой: результат в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	if d <= 0 || jitterFactor <= 0 {
		return d
	}

	return d + time.Duration(rand.Float64()*jitterFactor*float64(d))
}

// Backoff — экспоненциальная задержка: Base, 2*Base, 4*Base... но не больше Max.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Jitter float64
}

func NewBackoff(base, max time.Duration) Backoff {
	return Backoff{Base: base, Max: max, Jitter: DefaultJitter}
}

// Delay возвращает задержку перед повтором номер attempt (нумерация с нуля).
func (b Backoff) Delay(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt && d < b.Max; i++ {
		d *= 2
	}
	if b.Max > 0 && d > b.Max {
		d = b.Max
	}

	return Duration(d, b.Jitter)
}

// Wait спит Delay(attempt) или до отмены ctx. При отмене возвращает ctx.Err().
func (b Backoff) Wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(b.Delay(attempt))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
