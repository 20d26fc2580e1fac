package messaging

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidTarget is returned by Resolve when an identifier does not
// map to a reachable peer.
var ErrInvalidTarget = errors.New("invalid chat target")

// Transport is the messaging backend the client core talks through.
// Implementations own authentication, session persistence, and the wire
// protocol; the core only resolves peers, sends, and receives.
type Transport interface {
	// Resolve maps a username, phone number, or chat ID to a Peer.
	// Returns an error wrapping ErrInvalidTarget when the identifier
	// cannot be resolved.
	Resolve(ctx context.Context, identifier string) (*Peer, error)

	SendText(ctx context.Context, peer *Peer, text string) error
	SendPhoto(ctx context.Context, peer *Peer, path string) error

	// MarkRead acknowledges messages in the peer's chat. Best effort;
	// backends without read acks may no-op.
	MarkRead(ctx context.Context, peer *Peer) error

	// OnIncoming registers the handler for asynchronously delivered
	// messages. The handler runs on the transport's goroutine and must
	// not block on user input.
	OnIncoming(handler IncomingHandler)

	// Run blocks, pumping updates until ctx is canceled.
	Run(ctx context.Context) error

	// Close releases the session. Safe to call more than once.
	Close() error
}

type IncomingHandler func(msg *IncomingMessage)

// Peer identifies a resolved chat target.
type Peer struct {
	ID         int64
	Identifier string // the identifier the user typed
	Name       string // display name, best effort
}

// IncomingMessage is a message delivered by the transport.
type IncomingMessage struct {
	ChatID     int64
	SenderName string
	Text       string
	Timestamp  time.Time
	Private    bool
}
