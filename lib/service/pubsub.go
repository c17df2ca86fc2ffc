package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/cashweb/paygate/bip70"
	"github.com/cashweb/paygate/common"
	"github.com/cashweb/paygate/db/models"
)

// PaymentEvent is fanned out to subscribers whenever a record leaves the
// pending state. Ack is set only for received payments.
type PaymentEvent struct {
	Payment *models.Payment
	Ack     *bip70.PaymentACK
}

// Pubsub fans payment state changes out to in-process subscribers, keyed by
// the destination state.
type Pubsub struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan PaymentEvent
}

func NewPubsub() *Pubsub {
	ps := &Pubsub{}
	ps.subs = make(map[string]map[string]chan PaymentEvent)
	return ps
}

func (ps *Pubsub) Subscribe(topic string, ch chan PaymentEvent) (subId string, err error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		ps.subs[topic] = make(map[string]chan PaymentEvent)
	}
	subId = uuid.NewString()
	ps.subs[topic][subId] = ch
	return subId, nil
}

func (ps *Pubsub) Unsubscribe(id string, topic string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		return
	}
	if ps.subs[topic][id] == nil {
		return
	}
	close(ps.subs[topic][id])
	delete(ps.subs[topic], id)
}

func (ps *Pubsub) Publish(topic string, msg PaymentEvent) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if ps.subs[topic] == nil {
		return
	}

	for _, ch := range ps.subs[topic] {
		ch <- msg
	}
}

func (svc *GatewayService) publishState(payment *models.Payment, state string) {
	if svc.PaymentPubSub == nil {
		return
	}
	payment.State = state
	svc.PaymentPubSub.Publish(state, PaymentEvent{Payment: payment})
}

func (svc *GatewayService) publishAck(payment *models.Payment, ack *bip70.PaymentACK) {
	if svc.PaymentPubSub == nil {
		return
	}
	svc.PaymentPubSub.Publish(common.PaymentStateReceived, PaymentEvent{Payment: payment, Ack: ack})
}
