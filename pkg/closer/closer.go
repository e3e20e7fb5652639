package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Closer закрывает ресурсы приложения в обратном порядке их регистрации (LIFO).
type Closer struct {
	entries       []entry
	mu            sync.Mutex
	once          sync.Once
	forcedTimeout time.Duration
}

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

type entry struct {
	name string
	fn   Func
}

// NewCloser создает новый экземпляр Closer.
// forcedTimeout — время на принудительное закрытие того, что не успело закрыться до отмены ctx в Close.
func NewCloser(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout == 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{
		forcedTimeout: forcedTimeout,
	}
}

// Add регистрирует ресурс. name попадает в текст ошибки закрытия.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry{name: name, fn: f})
}

// AddFunc регистрирует закрытие, которое не принимает контекст и не возвращает ошибку.
func (c *Closer) AddFunc(name string, f func()) {
	c.Add(name, func(context.Context) error {
		f()
		return nil
	})
}

// Close последовательно закрывает ресурсы (LIFO). Повторные вызовы ничего не делают.
// Если ctx отменяется раньше, оставшиеся ресурсы закрываются параллельно
// с собственным таймаутом forcedTimeout.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		entries := c.entries
		c.mu.Unlock()

		remaining, errs := c.gracefulClose(ctx, entries)
		if len(remaining) == 0 {
			err = errors.Join(errs...)
			return
		}

		errs = append(errs, c.forcedClose(remaining)...)
		err = fmt.Errorf("shutdown interrupted after %d/%d resources", len(entries)-len(remaining), len(entries))
		if joined := errors.Join(errs...); joined != nil {
			err = fmt.Errorf("%w: %w", err, joined)
		}
	})

	return err
}

// gracefulClose закрывает ресурсы по одному с конца. При отмене ctx возвращает
// ещё не закрытые ресурсы, включая тот, что закрывался в этот момент.
func (c *Closer) gracefulClose(ctx context.Context, entries []entry) ([]entry, []error) {
	var errs []error
	for i := len(entries) - 1; i >= 0; i-- {
		en := entries[i]
		done := make(chan error, 1)

		go func() {
			done <- en.fn(ctx)
		}()

		select {
		case err := <-done:
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", en.name, err))
			}
		case <-ctx.Done():
			return entries[:i+1], errs
		}
	}

	return nil, errs
}

// forcedClose параллельно закрывает оставшиеся ресурсы с таймаутом forcedTimeout.
func (c *Closer) forcedClose(entries []entry) []error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for _, en := range entries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := en.fn(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s (forced): %w", en.name, err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}
