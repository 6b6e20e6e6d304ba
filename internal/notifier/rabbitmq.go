package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"gbpsync/internal/domain"
)

// Event names carried on run/post messages.
const (
	EventRunCompleted = "run_completed"
	EventRunFailed    = "run_failed"
	EventPostSynced   = "post_synced"
)

// RabbitMQ emits pipeline events so downstream consumers (dashboard,
// notifications) see state changes without polling the store.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

type RunMessage struct {
	Event     string           `json:"event"`
	Result    domain.RunResult `json:"result"`
	Error     string           `json:"error,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

type SyncedMessage struct {
	Event     string      `json:"event"`
	Post      domain.Post `json:"post"`
	Timestamp time.Time   `json:"timestamp"`
}

// NotifyRun emits one summary message per completed or failed run.
func (r *RabbitMQ) NotifyRun(ctx context.Context, result *domain.RunResult) error {
	event := EventRunCompleted
	if result.State == domain.RunStateFailed {
		event = EventRunFailed
	}

	msg := RunMessage{
		Event:     event,
		Result:    *result,
		Timestamp: time.Now().UTC(),
	}
	if result.Err != nil {
		msg.Error = result.Err.Error()
	}

	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published run event", "event", event, "kind", result.Kind)

	return nil
}

// NotifySynced emits one message per post that reached the target.
func (r *RabbitMQ) NotifySynced(ctx context.Context, post *domain.Post) error {
	msg := SyncedMessage{
		Event:     EventPostSynced,
		Post:      *post,
		Timestamp: time.Now().UTC(),
	}

	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published synced event", "external_id", post.ExternalID)

	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
