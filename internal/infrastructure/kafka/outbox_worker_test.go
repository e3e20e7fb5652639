package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outboxRepoStub struct {
	mu        sync.Mutex
	pending   []*usecase.OutboxEvent
	processed []int64
	failed    []int64
}

func (r *outboxRepoStub) Create(_ context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	return event, nil
}

func (r *outboxRepoStub) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := min(limit, len(r.pending))
	batch := r.pending[:n]
	r.pending = r.pending[n:]
	return batch, nil
}

func (r *outboxRepoStub) MarkAsProcessed(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processed = append(r.processed, id)
	return nil
}

func (r *outboxRepoStub) MarkAsFailed(_ context.Context, id int64, _ int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, id)
	return nil
}

type producerStub struct {
	mu      sync.Mutex
	sent    []*usecase.WriteRawMessageReq
	failFor map[int64]error
}

func (p *producerStub) WriteRawMessage(_ context.Context, req *usecase.WriteRawMessageReq) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.failFor[req.OrderID]; err != nil {
		return err
	}
	p.sent = append(p.sent, req)
	return nil
}

func newEvent(id, orderID int64) *usecase.OutboxEvent {
	event := usecase.NewOutboxEvent("evt", usecase.OrderCreated, orderID, []byte("payload"), time.Now())
	event.ID = id
	return event
}

func TestOutboxWorker_ProcessBatch(t *testing.T) {
	repo := &outboxRepoStub{pending: []*usecase.OutboxEvent{newEvent(1, 10), newEvent(2, 20), newEvent(3, 30)}}
	producer := &producerStub{failFor: map[int64]error{20: errors.New("broker not available")}}
	w := NewOutboxWorker(repo, logger.Nop(), producer, &cfg.OutboxCfg{BatchSize: 2, MaxAttempts: 3}, "")

	hasMore, failed, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, hasMore)
	assert.Equal(t, 1, failed)
	assert.Equal(t, []int64{1}, repo.processed)
	assert.Equal(t, []int64{2}, repo.failed)

	hasMore, failed, err = w.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, hasMore)
	assert.Zero(t, failed)
	assert.Equal(t, []int64{1, 3}, repo.processed)

	hasMore, _, err = w.processBatch(context.Background())
	require.NoError(t, err)
	assert.False(t, hasMore)

	require.Len(t, producer.sent, 2)
	assert.Equal(t, int64(10), producer.sent[0].OrderID)
	assert.Equal(t, []byte("payload"), producer.sent[0].Payload)
}

func TestOutboxWorker_Drain(t *testing.T) {
	repo := &outboxRepoStub{pending: []*usecase.OutboxEvent{newEvent(1, 10), newEvent(2, 20), newEvent(3, 30)}}
	producer := &producerStub{}
	w := NewOutboxWorker(repo, logger.Nop(), producer, &cfg.OutboxCfg{BatchSize: 1, MaxAttempts: 3}, "")

	w.drain(context.Background())

	assert.Equal(t, []int64{1, 2, 3}, repo.processed)
	assert.Empty(t, repo.failed)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("read: I/O timeout"), true},
		{errors.New("[3] Unknown Topic Or Partition"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isRetryableError(tt.err))
	}
}

func TestProtoEncoder_OrderEvent(t *testing.T) {
	occurred := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	order := &domain.Order{ID: 42, UserID: 7, Status: domain.Status{ID: 1, Name: "pending"}, Total: 4000}
	event := usecase.NewOrderEvent("b7f1c9a2", usecase.OrderCreated, order, occurred)

	data, err := NewProtoEncoder().EncodeOrderEvent(event)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := DecodeOrderEvent(data)
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, usecase.OrderCreated, decoded.EventType)
	assert.Equal(t, int64(42), decoded.OrderID)
	assert.Equal(t, int64(7), decoded.UserID)
	assert.Equal(t, "pending", decoded.StatusName)
	assert.Equal(t, int64(4000), decoded.Total)
	assert.True(t, occurred.Equal(decoded.OccurredAt))

	_, err = DecodeOrderEvent([]byte{0xff, 0xff})
	require.Error(t, err)
}
