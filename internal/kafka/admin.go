package kafka

import (
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"giraffe-store/internal/logger/sl"
)

// EnsureTopicExists создает топик уведомлений, если его еще нет.
func EnsureTopicExists(brokers []string, topic string) error {
	config := sarama.NewConfig()
	config.Version = sarama.V2_1_0_0

	admin, err := sarama.NewClusterAdmin(brokers, config)
	if err != nil {
		return fmt.Errorf("ошибка создания admin-клиента Kafka: %w", err)
	}
	defer func() {
		if err := admin.Close(); err != nil {
			slog.Error("ошибка закрытия admin-клиента Kafka", sl.Err(err))
		}
	}()

	return ensureTopic(admin, topic)
}

func ensureTopic(admin sarama.ClusterAdmin, topic string) error {
	topics, err := admin.ListTopics()
	if err != nil {
		return fmt.Errorf("ошибка получения списка топиков: %w", err)
	}
	if _, exists := topics[topic]; exists {
		slog.Info("Kafka: топик уже существует", slog.String("topic", topic))
		return nil
	}

	// уведомления нужны пользователю только пару суток
	topicDetails := &sarama.TopicDetail{
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: map[string]*string{
			"retention.ms": strPtr("172800000"),
		},
	}
	if err := admin.CreateTopic(topic, topicDetails, false); err != nil {
		return fmt.Errorf("не удалось создать топик %s: %w", topic, err)
	}

	slog.Info("Kafka: топик создан", slog.String("topic", topic))
	return nil
}

func strPtr(s string) *string {
	return &s
}
