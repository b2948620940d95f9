// Package notify publishes record-change events over AMQP. It replaces the
// realtime channel the mobile client used to subscribe to: the store emits
// an event, interested consumers refetch. The aggregation in summary knows
// nothing about any of this.
package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Jhorlodev/horas-extras/models"

	"github.com/rabbitmq/amqp091-go"
)

// Publisher is safe to use as a nil pointer: every method becomes a no-op,
// so callers never branch on whether notifications are configured.
type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	queue    string
}

func NewPublisher(url, exchange, queue string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		queue:    queue,
	}

	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return p, nil
}

func (p *Publisher) setup() error {
	err := p.channel.ExchangeDeclare(
		p.exchange, // name
		"direct",   // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = p.channel.QueueBind(
		p.queue,    // queue name
		p.queue,    // routing key (same as queue name for direct exchange)
		p.exchange, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

func (p *Publisher) RecordCreated(ctx context.Context, r *models.OvertimeRecord) error {
	return p.publish(ctx, NewRecordEvent(ActionCreated, r.ID, r.UserID))
}

func (p *Publisher) RecordDeleted(ctx context.Context, r *models.OvertimeRecord) error {
	return p.publish(ctx, NewRecordEvent(ActionDeleted, r.ID, r.UserID))
}

func (p *Publisher) publish(ctx context.Context, event *RecordEvent) error {
	if p == nil {
		return nil
	}

	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		p.queue,    // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	log.Printf("Published record event action=%s record_id=%d user_id=%d", event.Action, event.RecordID, event.UserID)
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
