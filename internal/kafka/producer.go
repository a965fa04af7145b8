package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"giraffe-store/internal/logger/sl"
	"giraffe-store/internal/metric"
	"giraffe-store/internal/notify"
)

// NotificationProducer публикует уведомления витрины в Kafka.
type NotificationProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewNotificationProducer(brokers []string, topic string) (*NotificationProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать продюсера: %w", err)
	}
	return NewNotificationProducerWith(producer, topic), nil
}

func NewNotificationProducerWith(producer sarama.SyncProducer, topic string) *NotificationProducer {
	return &NotificationProducer{producer: producer, topic: topic}
}

// Notify реализует notify.Notifier.
func (p *NotificationProducer) Notify(ctx context.Context, n notify.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("ошибка сериализации уведомления: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(n.ID.String()),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("kind"), Value: []byte(n.Kind)},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		metric.KafkaMessagesTotal.WithLabelValues("out", "error").Inc()
		return fmt.Errorf("ошибка отправки уведомления в Kafka: %w", err)
	}
	metric.KafkaMessagesTotal.WithLabelValues("out", "success").Inc()

	slog.Debug("уведомление отправлено",
		slog.String("id", n.ID.String()),
		slog.String("kind", string(n.Kind)),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
		sl.Traced(ctx))
	return nil
}

func (p *NotificationProducer) Close() error {
	return p.producer.Close()
}
