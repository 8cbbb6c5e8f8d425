package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher emits job lifecycle events to an external bus. Nil-safe
// alternatives: NopPublisher for deployments without a broker.
type Publisher interface {
	Publish(event string, job *JobView)
	Close() error
}

// NopPublisher discards events (no broker configured).
type NopPublisher struct{}

func (NopPublisher) Publish(string, *JobView) {}
func (NopPublisher) Close() error             { return nil }

// busEvent is the message body written to the event topic.
type busEvent struct {
	Event     string    `json:"event"`
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Job       *JobView  `json:"job"`
}

// KafkaPublisher writes terminal job events to a Kafka topic,
// fire-and-forget: a broker outage never blocks or fails completions.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		logger: logger,
	}
}

// Publish writes one event keyed by job id.
func (p *KafkaPublisher) Publish(event string, job *JobView) {
	value, err := json.Marshal(busEvent{
		Event:     event,
		JobID:     job.JobID,
		Status:    job.Status,
		Timestamp: time.Now().UTC(),
		Job:       job,
	})
	if err != nil {
		p.logger.Error("encode event", "event", event, "job_id", job.JobID, "error", err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(job.JobID),
			Value: value,
		})
		if err != nil {
			p.logger.Warn("publish event failed", "event", event, "job_id", job.JobID, "error", err)
		}
	}()
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
