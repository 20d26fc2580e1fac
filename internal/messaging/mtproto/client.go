// Package mtproto implements the Transport interface on top of a real
// MTProto user session. Authentication, the session file, and the wire
// protocol all belong to gogram; this package only adapts its surface.
package mtproto

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amarnathcjd/gogram/telegram"

	"github.com/rg/tgcli/internal/logger"
	"github.com/rg/tgcli/internal/messaging"
)

type Client struct {
	client *telegram.Client

	stopOnce sync.Once
}

// Config carries the credentials and session location for the user
// account login.
type Config struct {
	AppID       int
	AppHash     string
	Phone       string
	SessionFile string
}

// NewClient connects and authorizes the user account. On a fresh
// session file gogram prompts for the login code on the terminal; on
// subsequent runs the persisted session is reused.
func NewClient(cfg Config) (*Client, error) {
	client, err := telegram.NewClient(telegram.ClientConfig{
		AppID:       int32(cfg.AppID),
		AppHash:     cfg.AppHash,
		Session:     cfg.SessionFile,
		LogLevel:    telegram.LogWarn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}

	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}

	if _, err := client.Login(cfg.Phone); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	me, err := client.GetMe()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch own account: %w", err)
	}
	logger.Info("Authorized on Telegram account", "username", me.Username, "first_name", me.FirstName)

	return &Client{client: client}, nil
}

func (c *Client) Resolve(_ context.Context, identifier string) (*messaging.Peer, error) {
	raw, err := c.client.ResolvePeer(identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", messaging.ErrInvalidTarget, identifier, err)
	}

	peer := &messaging.Peer{
		Identifier: identifier,
		Name:       identifier,
	}

	switch p := raw.(type) {
	case *telegram.InputPeerUser:
		peer.ID = p.UserID
	case *telegram.InputPeerChat:
		peer.ID = p.ChatID
	case *telegram.InputPeerChannel:
		peer.ID = p.ChannelID
	default:
		return nil, fmt.Errorf("%w: %s resolves to an unsupported peer type", messaging.ErrInvalidTarget, identifier)
	}

	return peer, nil
}

func (c *Client) SendText(_ context.Context, peer *messaging.Peer, text string) error {
	for i, chunk := range messaging.SplitMessage(text, messaging.MaxMessageLength) {
		if _, err := c.client.SendMessage(peer.Identifier, chunk); err != nil {
			return fmt.Errorf("failed to send message chunk %d: %w", i+1, err)
		}
	}
	return nil
}

func (c *Client) SendPhoto(_ context.Context, peer *messaging.Peer, path string) error {
	if _, err := c.client.SendMedia(peer.Identifier, path); err != nil {
		return fmt.Errorf("failed to send photo: %w", err)
	}
	return nil
}

func (c *Client) MarkRead(_ context.Context, peer *messaging.Peer) error {
	if _, err := c.client.SendReadAck(peer.Identifier); err != nil {
		return fmt.Errorf("failed to send read ack: %w", err)
	}
	return nil
}

func (c *Client) OnIncoming(handler messaging.IncomingHandler) {
	c.client.AddMessageHandler(telegram.OnNewMessage, func(m *telegram.NewMessage) error {
		if m.Message.Out {
			return nil
		}
		handler(convertMessage(m))
		return nil
	})
}

// Run pumps updates until ctx is canceled.
func (c *Client) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		c.stop()
	}()

	logger.Info("Telegram client started, listening for updates")
	c.client.Idle()
	return nil
}

// Close terminates the session, releasing the session file lock. Safe
// to call more than once.
func (c *Client) Close() error {
	c.stop()
	return nil
}

func (c *Client) stop() {
	c.stopOnce.Do(func() {
		c.client.Stop()
		logger.Info("Telegram client disconnected")
	})
}

func convertMessage(m *telegram.NewMessage) *messaging.IncomingMessage {
	return &messaging.IncomingMessage{
		ChatID:     m.ChatID(),
		SenderName: senderName(m),
		Text:       m.Text(),
		Timestamp:  time.Unix(int64(m.Message.Date), 0),
		Private:    m.IsPrivate(),
	}
}

func senderName(m *telegram.NewMessage) string {
	if m.Sender != nil {
		if m.Sender.FirstName != "" {
			return m.Sender.FirstName
		}
		if m.Sender.Username != "" {
			return m.Sender.Username
		}
	}
	if ch := m.Channel; ch != nil && ch.Title != "" {
		return ch.Title
	}
	return "Unknown"
}
