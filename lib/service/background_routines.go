package service

import (
	"context"
	"time"

	"github.com/cashweb/paygate/common"
)

// StartExpiryRoutine periodically moves pending payments whose expiry has
// passed into the expired state. One conditional bulk update per sweep; the
// store guarantees a record that was accepted concurrently is not touched.
func (svc *GatewayService) StartExpiryRoutine(ctx context.Context) error {
	if svc.Config.ExpirySweepInterval <= 0 {
		svc.Logger.Info("Expiry sweep disabled")
		return nil
	}
	interval := time.Duration(svc.Config.ExpirySweepInterval) * time.Second
	svc.Logger.Infof("Starting expiry sweep every %s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			expired, err := svc.Store.MarkExpired(ctx, time.Now())
			if err != nil {
				svc.Logger.Errorf("Expiry sweep failed: %v", err)
				continue
			}
			if expired > 0 {
				svc.Logger.Infof("Expired %d pending payments", expired)
			}
		}
	}
}

// StartRabbitMQPublisher mirrors payment state changes onto the configured
// exchange so external consumers can track settlement without polling.
func (svc *GatewayService) StartRabbitMQPublisher(ctx context.Context) error {
	if svc.RabbitMQClient == nil {
		return nil
	}
	svc.Logger.Info("Starting rabbitmq payment publisher")
	received := make(chan PaymentEvent)
	rejected := make(chan PaymentEvent)
	svc.PaymentPubSub.Subscribe(common.PaymentStateReceived, received)
	svc.PaymentPubSub.Subscribe(common.PaymentStateRejected, rejected)
	for {
		var event PaymentEvent
		select {
		case <-ctx.Done():
			return nil
		case event = <-received:
		case event = <-rejected:
		}
		if err := svc.RabbitMQClient.PublishPayment(ctx, event.Payment); err != nil {
			svc.Logger.Errorf("Failed to publish payment %s: %v", event.Payment.ID, err)
		}
	}
}
