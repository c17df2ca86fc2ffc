package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"

	"github.com/cashweb/paygate/db/models"
)

// bufPool reuses encode buffers across publishes instead of allocating a
// fresh one per payment event.
var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

const (
	contentTypeJSON  = "application/json"
	defaultHeartbeat = 10 * time.Second
	defaultLocale    = "en_US"
)

// Client publishes payment state changes to an exchange so external
// consumers can follow settlement without polling the gateway.
type Client interface {
	PublishPayment(ctx context.Context, payment *models.Payment) error
	// Close will close all connections to rabbitmq
	Close() error
}

type DefaultClient struct {
	conn *amqp.Connection

	publishChannel *amqp.Channel

	logger *lecho.Logger

	paymentExchange string
}

type ClientOption = func(client *DefaultClient)

func WithPaymentExchange(exchange string) ClientOption {
	return func(client *DefaultClient) {
		client.paymentExchange = exchange
	}
}

func WithLogger(logger *lecho.Logger) ClientOption {
	return func(client *DefaultClient) {
		client.logger = logger
	}
}

func Dial(uri string, options ...ClientOption) (Client, error) {
	conn, err := amqp.DialConfig(uri, amqp.Config{
		Heartbeat: defaultHeartbeat,
		Locale:    defaultLocale,
	})
	if err != nil {
		return nil, err
	}

	client := &DefaultClient{
		conn:            conn,
		paymentExchange: "paygate_payment",
	}
	for _, opt := range options {
		opt(client)
	}

	client.publishChannel, err = conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = client.publishChannel.ExchangeDeclare(
		client.paymentExchange,
		// topic exchange, payments are routed by destination state
		"topic",
		// durable
		true,
		// auto-delete
		false,
		// internal
		false,
		// no-wait
		false,
		nil,
	)
	if err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

func (client *DefaultClient) Close() error {
	return client.conn.Close()
}

// PublishPayment emits the payment under the routing key
// payment.<state>, e.g. payment.received.
func (client *DefaultClient) PublishPayment(ctx context.Context, payment *models.Payment) error {
	buf := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(buf)
	buf.Reset()

	if err := json.NewEncoder(buf).Encode(payment); err != nil {
		return err
	}

	key := "payment." + payment.State
	client.logger.Debugf("Publishing %s to %s", key, client.paymentExchange)
	return client.publishChannel.PublishWithContext(ctx,
		client.paymentExchange,
		key,
		// mandatory
		false,
		// immediate
		false,
		amqp.Publishing{
			ContentType: contentTypeJSON,
			Body:        buf.Bytes(),
		},
	)
}
