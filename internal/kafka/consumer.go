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

type MessageProcessor func(context.Context, []byte) error

// NotificationConsumer читает уведомления из топика и передает их processor.
type NotificationConsumer struct {
	consumer  sarama.Consumer
	topic     string
	processor MessageProcessor
}

func NewNotificationConsumer(brokers []string, topic string, processor MessageProcessor) (*NotificationConsumer, error) {
	conf := sarama.NewConfig()
	conf.Consumer.Offsets.Initial = sarama.OffsetNewest

	consumer, err := sarama.NewConsumer(brokers, conf)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании консьюмера: %w", err)
	}
	return NewNotificationConsumerWith(consumer, topic, processor), nil
}

func NewNotificationConsumerWith(consumer sarama.Consumer, topic string, processor MessageProcessor) *NotificationConsumer {
	return &NotificationConsumer{consumer: consumer, topic: topic, processor: processor}
}

// FeedProcessor раскладывает уведомления из топика в ленту.
func FeedProcessor(target notify.Notifier) MessageProcessor {
	return func(ctx context.Context, data []byte) error {
		var n notify.Notification
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("ошибка при парсинге уведомления, игнорируем: %w", err)
		}
		return target.Notify(ctx, n)
	}
}

// Start читает партицию 0 с новых сообщений до отмены ctx.
func (c *NotificationConsumer) Start(ctx context.Context) error {
	partitionConsumer, err := c.consumer.ConsumePartition(c.topic, 0, sarama.OffsetNewest)
	if err != nil {
		return fmt.Errorf("не удалось подписаться на партицию топика %s: %w", c.topic, err)
	}
	defer func() {
		if err := partitionConsumer.Close(); err != nil {
			slog.Error("ошибка при закрытии partitionConsumer", sl.Err(err))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Kafka consumer остановлен")
			return ctx.Err()
		case message, ok := <-partitionConsumer.Messages():
			if !ok {
				return nil
			}
			if err := c.processor(ctx, message.Value); err != nil {
				slog.Error("ошибка обработки уведомления", sl.Err(err), slog.Int64("offset", message.Offset))
				metric.KafkaMessagesTotal.WithLabelValues("in", "error").Inc()
				continue
			}
			metric.KafkaMessagesTotal.WithLabelValues("in", "success").Inc()
		}
	}
}

func (c *NotificationConsumer) Close() error {
	return c.consumer.Close()
}
