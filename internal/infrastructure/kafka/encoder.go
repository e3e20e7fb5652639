package kafka

import (
	"fmt"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtoEncoder кодирует события заказов в google.protobuf.Struct.
type ProtoEncoder struct{}

func NewProtoEncoder() *ProtoEncoder {
	return &ProtoEncoder{}
}

func (ProtoEncoder) EncodeOrderEvent(event *usecase.OrderEvent) ([]byte, error) {
	payload, err := structpb.NewStruct(map[string]any{
		"event_id":    event.EventID,
		"event_type":  string(event.EventType),
		"order_id":    event.OrderID,
		"user_id":     event.UserID,
		"status_id":   event.StatusID,
		"status":      event.StatusName,
		"total":       event.Total,
		"occurred_at": event.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	data, err := proto.Marshal(payload)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

// DecodeOrderEvent — обратное преобразование для потребителей топика.
func DecodeOrderEvent(data []byte) (*usecase.OrderEvent, error) {
	var payload structpb.Struct
	if err := proto.Unmarshal(data, &payload); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	fields := payload.GetFields()
	occurredAt, err := time.Parse(time.RFC3339Nano, fields["occurred_at"].GetStringValue())
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("invalid occurred_at: %w", err))
	}

	return &usecase.OrderEvent{
		EventID:    fields["event_id"].GetStringValue(),
		EventType:  usecase.OutboxEventType(fields["event_type"].GetStringValue()),
		OrderID:    int64(fields["order_id"].GetNumberValue()),
		UserID:     int64(fields["user_id"].GetNumberValue()),
		StatusID:   int64(fields["status_id"].GetNumberValue()),
		StatusName: fields["status"].GetStringValue(),
		Total:      int64(fields["total"].GetNumberValue()),
		OccurredAt: occurredAt,
	}, nil
}
