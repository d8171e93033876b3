package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// publisher is the part of *amqp.Channel the mailer uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPMailer publishes mail jobs to a durable direct exchange.
type AMQPMailer struct {
	conn         *amqp.Connection
	channel      publisher
	closeChannel func() error
	exchangeName string
	queueName    string
	composer     Composer
}

var _ portssvc.Mailer = (*AMQPMailer)(nil)

// NewAMQPMailer dials the broker and declares the exchange, queue and binding.
func NewAMQPMailer(url, exchangeName, queueName string, composer Composer) (*AMQPMailer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(channel, exchangeName, queueName); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return &AMQPMailer{
		conn:         conn,
		channel:      channel,
		closeChannel: channel.Close,
		exchangeName: exchangeName,
		queueName:    queueName,
		composer:     composer,
	}, nil
}

func declare(ch *amqp.Channel, exchangeName, queueName string) error {
	if err := ch.ExchangeDeclare(exchangeName, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	// Direct exchange: the routing key is the queue name.
	if err := ch.QueueBind(queueName, queueName, exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func (m *AMQPMailer) SendVerificationEmail(ctx context.Context, email, token string) error {
	return m.publish(ctx, m.composer.Verification(email, token))
}

func (m *AMQPMailer) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	return m.publish(ctx, m.composer.PasswordReset(email, token))
}

func (m *AMQPMailer) publish(ctx context.Context, msg *Message) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = m.channel.PublishWithContext(pubCtx, m.exchangeName, m.queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    msg.Timestamp,
		Type:         string(msg.Kind),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Published mail job",
		slog.String("kind", string(msg.Kind)),
		slog.String("exchange", m.exchangeName),
		slog.String("queue", m.queueName))
	return nil
}

func (m *AMQPMailer) Close() error {
	if m.closeChannel != nil {
		m.closeChannel()
	}
	if m.conn != nil {
		return m.conn.Close()
	}
	return nil
}
