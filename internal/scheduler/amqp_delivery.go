package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Shahd3/iCare/pkg/cleanup"
)

const (
	exchangeName = "icare.notifications"
	routingKey   = "reminder.due"
)

// AMQPDelivery publishes due notifications to a RabbitMQ exchange where
// push gateways consume them. Exchange declaration happens once in the
// constructor; constructing twice is safe, the declare is idempotent on
// the broker side.
type AMQPDelivery struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewAMQPDelivery(url string) (*AMQPDelivery, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declaring exchange: %w", err)
	}
	d := &AMQPDelivery{conn: conn, channel: ch}
	cleanup.Register(&cleanup.Job{
		Name: "closing amqp connection",
		F:    d.close,
	})
	return d, nil
}

func (d *AMQPDelivery) close() error {
	if d.channel != nil {
		_ = d.channel.Close()
	}
	if d.conn != nil {
		return d.conn.Close()
	}
	return nil
}

func (d *AMQPDelivery) Deliver(ctx context.Context, content Content) error {
	body, err := sonic.Marshal(content)
	if err != nil {
		return err
	}
	return d.channel.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
}

// LogDelivery writes notifications to the log instead of a broker. Used
// in local runs and tests where no RabbitMQ is around.
type LogDelivery struct{}

func (LogDelivery) Deliver(ctx context.Context, content Content) error {
	slog.Info("notification due",
		slog.String("reminder_id", content.ReminderID),
		slog.String("title", content.Title))
	return nil
}
