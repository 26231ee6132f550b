package notify

import "context"

// ResultKind classifies why a send attempt failed.
type ResultKind int

const (
	// KindNone is the zero kind, used on success.
	KindNone ResultKind = iota

	// KindRemoteRejection means the endpoint responded with a
	// non-success status (bad token, unknown chat, rate limiting).
	KindRemoteRejection

	// KindTransportFault means the request never completed at the
	// network layer (DNS, refused connection, timeout).
	KindTransportFault
)

// SendResult is the outcome of a single send attempt. Callers that only
// care about delivery can branch on OK; Kind and Cause carry the detail.
type SendResult struct {
	OK     bool
	Kind   ResultKind
	Cause  string
	FileID string // set by photo sends on success
}

func success() SendResult {
	return SendResult{OK: true}
}

func failure(kind ResultKind, cause string) SendResult {
	return SendResult{Kind: kind, Cause: cause}
}

// Notifier is the interface for sending notifications.
type Notifier interface {
	// Send delivers a text message to the given chat. Failures are
	// reported in the result, never raised.
	Send(ctx context.Context, chatID, text string) SendResult
}
