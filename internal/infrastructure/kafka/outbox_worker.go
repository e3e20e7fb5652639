package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const (
	outboxChannel      = "outbox_pending"
	outboxPollInterval = 30 * time.Second
	listenWaitTimeout  = 30 * time.Second
)

var (
	retryBackoff     = jitter.NewBackoff(500*time.Millisecond, 10*time.Second)
	reconnectBackoff = jitter.NewBackoff(2*time.Second, time.Minute)
)

// OutboxWorker переносит события заказов из таблицы outbox_events в Kafka.
// Просыпается по NOTIFY outbox_pending и раз в outboxPollInterval.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	logger    logger.Logger
	producer  usecase.MessageProducer
	cfg       *cfg.OutboxCfg
	cancel    context.CancelFunc
	stopOnce  sync.Once
	wg        sync.WaitGroup
	dbConnStr string
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	cfg *cfg.OutboxCfg,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		logger:    logger,
		producer:  producer,
		cfg:       cfg,
		dbConnStr: dbConnStr,
	}
}

// Start запускает воркер. Он работает до отмены ctx или вызова Stop.
func (w *OutboxWorker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()

	go func() {
		defer w.wg.Done()
		w.listenOutboxNotifications(ctx)
	}()
}

func (w *OutboxWorker) Stop() {
	w.stopOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
		}
	})
	w.wg.Wait()
}

func (w *OutboxWorker) run(ctx context.Context) {
	w.logger.Infof("Draining pending outbox events on startup...")
	w.drain(ctx)

	ticker := time.NewTicker(outboxPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("Outbox worker stopped")
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain обрабатывает пачки, пока они не закончатся. После пачки с ошибками
// делает паузу, чтобы не крутить повторы вхолостую.
func (w *OutboxWorker) drain(ctx context.Context) {
	for attempt := 0; ; {
		hasMore, failed, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("outbox batch failed: %v", err)
			return
		}
		if !hasMore {
			return
		}

		if failed == 0 {
			attempt = 0
			continue
		}

		if err := retryBackoff.Wait(ctx, attempt); err != nil {
			return
		}
		attempt++
	}
}

// listenOutboxNotifications держит отдельное соединение с LISTEN outbox_pending
// и запускает drain на каждое уведомление. Обрыв соединения лечится переподключением.
func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context) {
	var (
		conn    *pgx.Conn
		attempt int
	)
	defer func() {
		if conn != nil {
			conn.Close(context.Background())
		}
	}()

	for ctx.Err() == nil {
		if conn == nil {
			c, err := w.subscribe(ctx)
			if err != nil {
				w.logger.Warnf("outbox LISTEN failed: %v", err)
				if reconnectBackoff.Wait(ctx, attempt) != nil {
					return
				}
				attempt++
				continue
			}
			conn, attempt = c, 0
		}

		waitCtx, cancel := context.WithTimeout(ctx, listenWaitTimeout)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				continue
			}

			w.logger.Warnf("outbox LISTEN connection lost: %v, reconnecting", err)
			conn.Close(context.Background())
			conn = nil
			continue
		}

		if notif != nil && notif.Channel == outboxChannel {
			w.logger.Debugf("Received outbox notification, draining outbox events")
			w.drain(ctx)
		}
	}
}

func (w *OutboxWorker) subscribe(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, w.dbConnStr)
	if err != nil {
		return nil, e.Wrap("failed to connect for LISTEN", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
		conn.Close(ctx)
		return nil, e.Wrap("failed to LISTEN", err)
	}

	w.logger.Infof("Subscribed to '%s' channel", outboxChannel)
	return conn, nil
}

// processBatch отправляет одну пачку событий. Возвращает, была ли пачка непустой,
// и сколько событий из неё отправить не удалось.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, int, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, w.cfg.BatchSize)
	if err != nil {
		return false, 0, err
	}

	if len(events) == 0 {
		return false, 0, nil
	}

	failed := 0
	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			failed++
			w.logger.Warnf("outbox event %s (order %d) not sent: %v", event.EventID, event.OrderID, err)

			if err := w.repo.MarkAsFailed(ctx, event.ID, w.cfg.MaxAttempts); err != nil {
				w.logger.Warnf("mark failed failed: %v", err)
			}
			continue
		}

		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("mark processed failed: %v", err)
		}
	}

	return true, failed, nil
}

func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	if err := w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(event.OrderID, event.Payload)); err != nil {
		if isRetryableError(err) {
			return e.Wrap("Temporary Kafka failure, will retry", err)
		}
		return e.Wrap("Permanent Kafka failure", err)
	}
	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
