// Package service provides the RabbitMQ publisher for domain events.
// Publishing is best effort: errors are logged and returned so callers can
// ignore failures without interrupting the main request flow.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sekolahku/sekolahku-api/internal/queue"
)

// EventPublisher publishes domain events to named queues.
type EventPublisher struct {
	url string
}

// NewEventPublisher builds a publisher for the given AMQP URL.  The URL is
// captured once at startup; no environment lookup happens per publish.
func NewEventPublisher(url string) *EventPublisher {
	return &EventPublisher{url: url}
}

// SubmissionReceived publishes a SubmissionReceivedEvent.
func (p *EventPublisher) SubmissionReceived(ctx context.Context, event queue.SubmissionReceivedEvent) error {
	return p.publish(ctx, queue.SubmissionReceivedQueue, event)
}

// QuizAttempted publishes a QuizAttemptedEvent.
func (p *EventPublisher) QuizAttempted(ctx context.Context, event queue.QuizAttemptedEvent) error {
	return p.publish(ctx, queue.QuizAttemptedQueue, event)
}

// AttendanceMarked publishes an AttendanceMarkedEvent.
func (p *EventPublisher) AttendanceMarked(ctx context.Context, event queue.AttendanceMarkedEvent) error {
	return p.publish(ctx, queue.AttendanceMarkedQueue, event)
}

// publish dials the broker, declares the queue and sends one persistent
// JSON message.  The function never panics; any error is logged and
// returned so the caller can choose to ignore it.
func (p *EventPublisher) publish(ctx context.Context, name string, event any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent).  Durable so messages survive
	// broker restarts.
	if _, err := ch.QueueDeclare(
		name,  // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := ch.PublishWithContext(pubCtx,
		"",    // default exchange
		name,  // routing key = queue name
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	); err != nil {
		log.Printf("rabbitmq: publish to %s failed: %v", name, err)
		return err
	}
	return nil
}
