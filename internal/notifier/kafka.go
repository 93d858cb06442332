package notifier

import (
	"encoding/json"
	"fmt"
	"time"

	"auction-settlement/internal/config"

	model "auction-settlement/internal/models"

	"github.com/IBM/sarama"
)

// paymentNotification is the wire payload published per payment window.
type paymentNotification struct {
	BidderID      string    `json:"bidder_id"`
	AuctionID     string    `json:"auction_id"`
	ProductID     string    `json:"product_id"`
	AttemptID     string    `json:"attempt_id"`
	AttemptNumber int       `json:"attempt_number"`
	Amount        float64   `json:"amount"`
	PayBefore     time.Time `json:"pay_before"`
}

// KafkaNotifier publishes payment-window notifications to a Kafka topic.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaNotifier connects a synchronous producer to the configured brokers.
func NewKafkaNotifier(cfg config.KafkaConfig) (*KafkaNotifier, error) {
	kafkaConfig := sarama.NewConfig()
	kafkaConfig.Producer.RequiredAcks = sarama.WaitForAll
	kafkaConfig.Producer.Retry.Max = 3
	kafkaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, kafkaConfig)
	if err != nil {
		return nil, fmt.Errorf("notifier: create kafka producer: %w", err)
	}

	return &KafkaNotifier{producer: producer, topic: cfg.Topic}, nil
}

// Notify publishes the notification keyed by bidder so one bidder's messages
// stay ordered.
func (n *KafkaNotifier) Notify(bidderID string, auction model.Auction, attempt model.PaymentAttempt) error {
	payload, err := json.Marshal(paymentNotification{
		BidderID:      bidderID,
		AuctionID:     auction.AuctionID,
		ProductID:     auction.ProductID,
		AttemptID:     attempt.AttemptID,
		AttemptNumber: attempt.AttemptNumber,
		Amount:        attempt.Amount,
		PayBefore:     attempt.ExpiryTime.UTC(),
	})
	if err != nil {
		return fmt.Errorf("notifier: marshal notification for attempt %s: %w", attempt.AttemptID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(bidderID),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := n.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("notifier: publish notification for attempt %s: %w", attempt.AttemptID, err)
	}
	return nil
}

// Close shuts the underlying producer down.
func (n *KafkaNotifier) Close() error {
	return n.producer.Close()
}
