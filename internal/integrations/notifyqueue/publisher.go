package notifyqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	// ErrPublish возвращается, когда сообщение не удалось опубликовать
	ErrPublish = errors.New("notifyqueue: publish failed")
)

// Message уведомление, которое воркер почты забирает из очереди
type Message struct {
	TemplateID string            `json:"template_id"`
	Variables  map[string]string `json:"variables"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует уведомления в durable-очередь RabbitMQ через default exchange
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	log     Logger
}

// NewPublisher подключается к брокеру и объявляет очередь
func NewPublisher(url, queue string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	return &Publisher{conn: conn, channel: ch, queue: queue, log: log}, nil
}

// Send публикует persistent JSON-сообщение
func (p *Publisher) Send(ctx context.Context, templateID string, vars map[string]string) error {
	pub, err := newPublishing(templateID, vars, time.Now().UTC())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.log.Info("RabbitMQ: published template=%s to queue=%s", templateID, p.queue)
	return nil
}

func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

func newPublishing(templateID string, vars map[string]string, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(Message{
		TemplateID: templateID,
		Variables:  vars,
		CreatedAt:  now,
	})
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("%w: marshal message: %v", ErrPublish, err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Body:         body,
	}, nil
}
