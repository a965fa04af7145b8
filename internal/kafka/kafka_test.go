package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giraffe-store/internal/models"
	"giraffe-store/internal/notify"
)

func fakeNotification() notify.Notification {
	return notify.NewUnavailableItems([]models.UnavailableItem{
		{ID: models.ProductID(gofakeit.Numerify("###")), Name: gofakeit.Name()},
	})
}

func TestNotificationProducer_Notify(t *testing.T) {
	t.Run("Уведомление отправлено", func(t *testing.T) {
		//1. Arrange
		n := fakeNotification()
		sp := mocks.NewSyncProducer(t, nil)
		sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var got notify.Notification
			if err := json.Unmarshal(val, &got); err != nil {
				return err
			}
			if got.ID != n.ID || got.Kind != notify.KindItemsUnavailable {
				return errors.New("в топик ушло не то уведомление")
			}
			return nil
		})
		producer := NewNotificationProducerWith(sp, "storefront-notifications")

		//2. Act
		err := producer.Notify(context.Background(), n)

		//3. Assert
		assert.NoError(t, err)
		require.NoError(t, producer.Close())
	})

	t.Run("Ошибка брокера", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, nil)
		sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		producer := NewNotificationProducerWith(sp, "storefront-notifications")

		err := producer.Notify(context.Background(), fakeNotification())

		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, producer.Close())
	})
}

func TestNotificationConsumer_Start(t *testing.T) {
	//1. Arrange
	n := fakeNotification()
	data, err := json.Marshal(n)
	require.NoError(t, err)

	consumer := mocks.NewConsumer(t, nil)
	consumer.ExpectConsumePartition("storefront-notifications", 0, sarama.OffsetNewest).
		YieldMessage(&sarama.ConsumerMessage{Value: []byte("not json")}).
		YieldMessage(&sarama.ConsumerMessage{Value: data})

	feed := notify.NewFeed(10)
	c := NewNotificationConsumerWith(consumer, "storefront-notifications", FeedProcessor(feed))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	//2. Act
	go func() { done <- c.Start(ctx) }()

	//3. Assert
	assert.Eventually(t, func() bool { return len(feed.Recent(0)) == 1 }, time.Second, 10*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, n.ID, feed.Recent(1)[0].ID)
}

type fakeAdmin struct {
	sarama.ClusterAdmin
	topics  map[string]sarama.TopicDetail
	created []string
}

func (f *fakeAdmin) ListTopics() (map[string]sarama.TopicDetail, error) {
	return f.topics, nil
}

func (f *fakeAdmin) CreateTopic(topic string, _ *sarama.TopicDetail, _ bool) error {
	f.created = append(f.created, topic)
	return nil
}

func TestEnsureTopic(t *testing.T) {
	t.Run("Топик уже есть", func(t *testing.T) {
		admin := &fakeAdmin{topics: map[string]sarama.TopicDetail{"storefront-notifications": {}}}

		require.NoError(t, ensureTopic(admin, "storefront-notifications"))
		assert.Empty(t, admin.created)
	})

	t.Run("Топик создается", func(t *testing.T) {
		admin := &fakeAdmin{topics: map[string]sarama.TopicDetail{}}

		require.NoError(t, ensureTopic(admin, "storefront-notifications"))
		assert.Equal(t, []string{"storefront-notifications"}, admin.created)
	})
}
