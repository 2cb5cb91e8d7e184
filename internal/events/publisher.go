package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher publishes events to RabbitMQ. A nil *Publisher is valid and
// publishes nothing, so callers need no configuration checks.
type Publisher struct {
	url string
}

// NewPublisher creates a publisher for the given AMQP URL. An empty URL
// disables publishing.
func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

// ClaimCreated publishes a ClaimCreatedEvent.
func (p *Publisher) ClaimCreated(ctx context.Context, event ClaimCreatedEvent) {
	if p == nil {
		return
	}
	if err := p.publish(ctx, QueueClaimCreated, event); err != nil {
		log.Printf("⚠️ Failed to publish claim.created for claim %d: %v", event.ClaimID, err)
	}
}

// ClaimStatusChanged publishes a ClaimStatusChangedEvent.
func (p *Publisher) ClaimStatusChanged(ctx context.Context, event ClaimStatusChangedEvent) {
	if p == nil {
		return
	}
	if err := p.publish(ctx, QueueClaimStatusChanged, event); err != nil {
		log.Printf("⚠️ Failed to publish claim.status.changed for claim %d: %v", event.ClaimID, err)
	}
}

// publish dials the broker, declares the durable queue and publishes a
// persistent JSON message. Connection-per-publish keeps the publisher
// free of channel state; claim traffic is low enough that this costs
// nothing measurable.
func (p *Publisher) publish(ctx context.Context, queue string, event interface{}) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",    // default exchange
		queue, // routing key = queue name
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
