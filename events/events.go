// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// VoteEvent announces that a ballot was recorded. It names the candidate
// and never the voter.
type VoteEvent struct {
	VoteID      string    `json:"vote_id"`
	CandidateID string    `json:"candidate_id"`
	Status      string    `json:"status"` // created or updated
	At          time.Time `json:"at"`
}

// Publisher hands vote events to a stream.
type Publisher interface {
	Publish(ctx context.Context, ev VoteEvent) error
	Close() error
}

// KafkaPublisher writes one message per vote, keyed by candidate so
// events for a candidate land on one partition in order. Writes are
// asynchronous: Publish only queues the message, and the outcome of each
// delivery is passed to onDelivery.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string, onDelivery func(error)) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  5,
		Compression:  kafka.Snappy,
		Async:        true,
		Completion:   completion(onDelivery),
	}
	return &KafkaPublisher{writer: w}
}

// completion reports every message of a finished batch to onDelivery.
func completion(onDelivery func(error)) func([]kafka.Message, error) {
	return func(messages []kafka.Message, err error) {
		if err != nil {
			slog.Warn("vote events not delivered", "error", err, "count", len(messages))
		}
		if onDelivery == nil {
			return
		}
		for range messages {
			onDelivery(err)
		}
	}
}

// Publish queues ev and returns without waiting for the brokers. It fails
// only when the event cannot be encoded or the publisher is closed.
func (kp *KafkaPublisher) Publish(ctx context.Context, ev VoteEvent) error {
	msg, err := Message(ev)
	if err != nil {
		return err
	}
	if err := kp.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write vote event: %w", err)
	}
	return nil
}

func (kp *KafkaPublisher) Close() error {
	if err := kp.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}
	return nil
}

// Message encodes ev as the Kafka message KafkaPublisher sends.
func Message(ev VoteEvent) (kafka.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal vote event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(ev.CandidateID),
		Value: value,
		Time:  ev.At,
	}, nil
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, VoteEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
