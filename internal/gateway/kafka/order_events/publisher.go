package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/IBM/sarama"
	"service/internal/entities"
)

var ErrSendTimeout = errors.New("order event send timed out")

// Publisher пишет изменения заказов в топик, ключ сообщения - ID заказа,
// поэтому события одного заказа попадают в одну партицию.
//
// Publish вызывается на пути HTTP-запроса, поэтому ожидание брокера
// ограничено sendTimeout и контекстом запроса. Сообщение, отправка которого
// не уложилась в лимит, остается на совести продюсера и может быть доставлено позже.
type Publisher struct {
	producer    producer
	topic       string
	sendTimeout time.Duration
}

func New(producer producer, topic string, sendTimeout time.Duration) *Publisher {
	return &Publisher{
		producer:    producer,
		topic:       topic,
		sendTimeout: sendTimeout,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType(event))},
		},
	}

	// буфер на одно значение, чтобы горутина не зависла после таймаута
	done := make(chan error, 1)
	go func() {
		_, _, sendErr := p.producer.SendMessage(msg)
		done <- sendErr
	}()

	timer := time.NewTimer(p.sendTimeout)
	defer timer.Stop()

	select {
	case err = <-done:
	case <-ctx.Done():
		// Метрики Prometheus
		EventsPublishedTotal.WithLabelValues("timeout").Inc()
		return fmt.Errorf("send order event %s: %w", event.OrderID, ctx.Err())
	case <-timer.C:
		// Метрики Prometheus
		EventsPublishedTotal.WithLabelValues("timeout").Inc()
		return fmt.Errorf("send order event %s after %s: %w", event.OrderID, p.sendTimeout, ErrSendTimeout)
	}

	if err != nil {
		// Метрики Prometheus
		EventsPublishedTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("send order event %s: %w", event.OrderID, err)
	}

	// Метрики Prometheus
	EventsPublishedTotal.WithLabelValues("ok").Inc()
	return nil
}

// Noop используется, когда KAFKA_BROKERS не задан.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) Publish(context.Context, entities.OrderEvent) error {
	return nil
}

func toMessage(event entities.OrderEvent) orderEventMessage {
	return orderEventMessage{
		OrderID:    event.OrderID,
		UserID:     pointer.ToStringOrNil(event.UserID),
		Status:     event.Status.String(),
		Deleted:    pointer.ToBoolOrNil(event.Deleted),
		OccurredAt: event.OccurredAt,
	}
}

func eventType(event entities.OrderEvent) string {
	if event.Deleted {
		return "order.deleted"
	}
	return "order.status.changed"
}
