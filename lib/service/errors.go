package service

import "errors"

// Engine error taxonomy. Exactly one of these is surfaced per failed
// pipeline run; store and node specific detail is wrapped, never leaked to
// the caller.
var (
	// ErrPaymentDecode : the payment envelope could not be decoded.
	ErrPaymentDecode = errors.New("failed to decode payment")
	// ErrNoTransaction : the envelope carries zero transactions.
	ErrNoTransaction = errors.New("no payment transaction")
	// ErrTxMalformed : the embedded raw transaction does not deserialize.
	ErrTxMalformed = errors.New("payment transaction malformed")
	// ErrPaymentNotFound : unknown invoice id.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentNotPending : the record was already decided, or this
	// submission lost the transition race. Idempotency signal.
	ErrPaymentNotPending = errors.New("payment no longer pending")
	// ErrInvalidOutputs : the transaction does not pay what was
	// invoiced. The rejection is persisted before this is returned, so a
	// resubmission against the same id is impossible.
	ErrInvalidOutputs = errors.New("invalid outputs")
	// ErrBroadcastFailed : the node refused the transaction or was
	// unreachable. The record stays pending; retrying is safe.
	ErrBroadcastFailed = errors.New("broadcast failed")
	// ErrInvalidRequest : malformed invoice request (bad amount, wrong
	// network, non key-hash destination, oversized data payload).
	ErrInvalidRequest = errors.New("invalid invoice request")
	// ErrAddressAllocation : the node could not hand out a fresh
	// destination address.
	ErrAddressAllocation = errors.New("failed to allocate address")

	// Store sentinels, returned by PaymentStore implementations.
	ErrDuplicatePayment    = errors.New("payment id already exists")
	ErrAlreadyTransitioned = errors.New("payment already transitioned")
	ErrStore               = errors.New("payment store failure")
)
