package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"matchday/pkg/logger"
)

// Producer publishes booking confirmations to Kafka.
type Producer interface {
	BookingConfirmed(ctx context.Context, bookingNumber string, matchID, userID int64, seatIDs []int64) error
	Close() error
}

// ProducerConfig contains configuration for the Kafka producer.
type ProducerConfig struct {
	Brokers      []string
	BookingTopic string
	RetryMax     int
	TimeoutMs    int
}

// DefaultProducerConfig returns a default producer configuration.
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Brokers:      []string{"localhost:9092"},
		BookingTopic: "booking-confirmations",
		RetryMax:     3,
		TimeoutMs:    10000,
	}
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
	logger   *logger.Logger
}

// NewKafkaProducer creates a synchronous Kafka producer for booking
// confirmations. Writes are idempotent and wait for all in-sync replicas;
// a confirmation either lands exactly once or the caller hears about it.
func NewKafkaProducer(config *ProducerConfig, log *logger.Logger) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps one match's confirmations on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		config:   config,
		logger:   log,
	}, nil
}

func (kp *kafkaProducer) BookingConfirmed(ctx context.Context, bookingNumber string, matchID, userID int64, seatIDs []int64) error {
	confirmation := NewBookingConfirmation(bookingNumber, matchID, userID, seatIDs)

	messageBytes, err := confirmation.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking confirmation: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: kp.config.BookingTopic,
		Key:   sarama.StringEncoder(confirmation.GetPartitionKey()),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("confirmation_id"), Value: []byte(confirmation.ID.String())},
			{Key: []byte("booking_number"), Value: []byte(bookingNumber)},
		},
		Timestamp: confirmation.CreatedAt,
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}

	kp.logger.Info("booking confirmation published",
		"topic", kp.config.BookingTopic,
		"partition", partition,
		"offset", offset,
		"booking_number", bookingNumber,
	)

	return nil
}

func (kp *kafkaProducer) Close() error {
	if kp.producer != nil {
		if err := kp.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}
