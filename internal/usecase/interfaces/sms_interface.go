package interfaces

import "context"

// OutboundSMS is one queued text message.
type OutboundSMS struct {
	Receiver string `json:"receiver"`
	Message  string `json:"message"`
}

// ISMSPublisher hands a message to the dispatch queue. Publishing is
// fire-and-forget from the caller's perspective: errors may be logged and
// dropped without failing the surrounding operation.
type ISMSPublisher interface {
	Publish(ctx context.Context, sms OutboundSMS) error
}

// ISMSGateway abstracts the external SMS provider (e.g. Aligo). No delivery
// confirmation is consumed beyond the synchronous accept/reject.
type ISMSGateway interface {
	Send(ctx context.Context, receiver, message string) error
}
