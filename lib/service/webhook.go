package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang/protobuf/proto"

	"github.com/cashweb/paygate/bip70"
	"github.com/cashweb/paygate/common"
	"github.com/cashweb/paygate/db/models"
)

// StartWebhookSubscription forwards accepted and rejected payments to the
// per-invoice callback URL and, when configured, to the global webhook.
func (svc *GatewayService) StartWebhookSubscription(ctx context.Context) {
	svc.Logger.Infof("Starting webhook subscription, global webhook url: %q", svc.Config.WebhookUrl)
	received := make(chan PaymentEvent)
	rejected := make(chan PaymentEvent)
	svc.PaymentPubSub.Subscribe(common.PaymentStateReceived, received)
	svc.PaymentPubSub.Subscribe(common.PaymentStateRejected, rejected)
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-received:
			if event.Payment.CallbackURL != "" && event.Ack != nil {
				// Deliveries retry with backoff; keep the
				// subscription loop draining meanwhile.
				go svc.postCallback(ctx, event.Payment, event.Ack)
			}
			svc.postToWebhook(event.Payment)
		case event := <-rejected:
			svc.postToWebhook(event.Payment)
		}
	}
}

// postCallback delivers a CallbackPayload to the invoice's callback URL,
// retrying with bounded exponential backoff. Delivery is best effort; the
// payment is already committed either way.
func (svc *GatewayService) postCallback(ctx context.Context, payment *models.Payment, ack *bip70.PaymentACK) {
	payload := &bip70.CallbackPayload{
		PaymentId:  payment.ID.String(),
		PaymentAck: ack,
	}
	raw, err := proto.Marshal(payload)
	if err != nil {
		svc.Logger.Errorf("Failed to marshal callback payload for %s: %v", payment.ID, err)
		return
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(svc.Config.CallbackMaxRetries)), ctx)
	err = backoff.Retry(func() error {
		return svc.postOnce(ctx, payment.CallbackURL, common.ContentTypePaymentACK, raw)
	}, policy)
	if err != nil {
		svc.Logger.Errorf("Giving up on callback for payment %s to %s: %v", payment.ID, payment.CallbackURL, err)
	}
}

func (svc *GatewayService) postToWebhook(payment *models.Payment) {
	if svc.Config.WebhookUrl == "" {
		return
	}
	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(payment)
	if err != nil {
		svc.Logger.Error(err)
		return
	}
	err = svc.postOnce(context.Background(), svc.Config.WebhookUrl, "application/json", payload.Bytes())
	if err != nil {
		svc.Logger.Errorf("Webhook delivery for payment %s failed: %v", payment.ID, err)
	}
}

func (svc *GatewayService) postOnce(ctx context.Context, url, contentType string, body []byte) error {
	reqCtx, cancel := context.WithTimeout(ctx, time.Duration(svc.Config.CallbackTimeout)*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", contentType)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("status %d: %s", resp.StatusCode, msg)
	}
	return nil
}
