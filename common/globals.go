package common

const (
	PaymentStatePending   = "pending"
	PaymentStateReceived  = "received"
	PaymentStateConfirmed = "confirmed"
	PaymentStateRejected  = "rejected"
	PaymentStateExpired   = "expired"

	ContentTypePaymentRequest = "application/bitcoincash-paymentrequest"
	ContentTypePayment        = "application/bitcoincash-payment"
	ContentTypePaymentACK     = "application/bitcoincash-paymentack"

	PaymentDetailsVersion = 1
	PkiTypeNone           = "none"
)

// ValidPaymentState reports whether s is one of the known persisted states.
// Unknown values coming out of storage are rejected at the boundary instead
// of being passed through.
func ValidPaymentState(s string) bool {
	switch s {
	case PaymentStatePending, PaymentStateReceived, PaymentStateConfirmed,
		PaymentStateRejected, PaymentStateExpired:
		return true
	}
	return false
}
