package service

import (
	"github.com/ziflex/lecho/v3"

	"github.com/cashweb/paygate/bitcoin"
	"github.com/cashweb/paygate/node"
	"github.com/cashweb/paygate/rabbitmq"
)

// GatewayService orchestrates invoice issuance and payment acceptance. It
// holds no mutable state of its own; all shared state lives in the payment
// store, whose atomic transitions serialize concurrent submissions.
type GatewayService struct {
	Config         *Config
	Store          PaymentStore
	Node           node.Client
	Network        bitcoin.Network
	Logger         *lecho.Logger
	PaymentPubSub  *Pubsub
	RabbitMQClient rabbitmq.Client
}
