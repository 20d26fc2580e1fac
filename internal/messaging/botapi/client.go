// Package botapi implements the Transport interface over the Telegram
// Bot API. It exists for bot-account use where an MTProto user login is
// unwanted; Bot API limits apply (numeric chat IDs only, no read acks).
package botapi

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rg/tgcli/internal/logger"
	"github.com/rg/tgcli/internal/messaging"
)

type Client struct {
	bot     *tgbotapi.BotAPI
	handler messaging.IncomingHandler

	stopOnce sync.Once
}

func NewClient(token string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot.Debug = false
	logger.Info("Authorized on Telegram bot account", "username", bot.Self.UserName)

	return &Client{bot: bot}, nil
}

// Resolve accepts numeric chat IDs only: the Bot API has no username or
// phone lookup for arbitrary users.
func (c *Client) Resolve(_ context.Context, identifier string) (*messaging.Peer, error) {
	chatID, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (bot transport accepts numeric chat IDs only)",
			messaging.ErrInvalidTarget, identifier)
	}

	chat, err := c.bot.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", messaging.ErrInvalidTarget, identifier, err)
	}

	return &messaging.Peer{
		ID:         chatID,
		Identifier: identifier,
		Name:       chatName(&chat),
	}, nil
}

func (c *Client) SendText(_ context.Context, peer *messaging.Peer, text string) error {
	for i, chunk := range messaging.SplitMessage(text, messaging.MaxMessageLength) {
		msg := tgbotapi.NewMessage(peer.ID, chunk)
		msg.ParseMode = "Markdown"

		if _, err := c.bot.Send(msg); err != nil {
			// Code blocks with stray markup can fail to parse; retry plain.
			msg.ParseMode = ""
			if _, err := c.bot.Send(msg); err != nil {
				return fmt.Errorf("failed to send message chunk %d: %w", i+1, err)
			}
		}
	}
	return nil
}

func (c *Client) SendPhoto(_ context.Context, peer *messaging.Peer, path string) error {
	photo := tgbotapi.NewPhoto(peer.ID, tgbotapi.FilePath(path))
	if _, err := c.bot.Send(photo); err != nil {
		return fmt.Errorf("failed to send photo: %w", err)
	}
	return nil
}

// MarkRead is a no-op: the Bot API has no read acknowledgement call.
func (c *Client) MarkRead(context.Context, *messaging.Peer) error {
	return nil
}

func (c *Client) OnIncoming(handler messaging.IncomingHandler) {
	c.handler = handler
}

func (c *Client) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.bot.GetUpdatesChan(u)
	logger.Info("Telegram bot started, listening for messages")

	go func() {
		<-ctx.Done()
		c.stop()
	}()

	for update := range updates {
		if update.Message == nil {
			continue
		}
		if c.handler != nil {
			c.handler(convertMessage(update.Message))
		}
	}

	return nil
}

func (c *Client) Close() error {
	c.stop()
	return nil
}

func (c *Client) stop() {
	c.stopOnce.Do(func() {
		c.bot.StopReceivingUpdates()
		logger.Info("Telegram bot stopped")
	})
}

func convertMessage(tgMsg *tgbotapi.Message) *messaging.IncomingMessage {
	return &messaging.IncomingMessage{
		ChatID:     tgMsg.Chat.ID,
		SenderName: senderName(tgMsg),
		Text:       tgMsg.Text,
		Timestamp:  time.Unix(int64(tgMsg.Date), 0),
		Private:    tgMsg.Chat.IsPrivate(),
	}
}

func senderName(tgMsg *tgbotapi.Message) string {
	if tgMsg.From != nil {
		if tgMsg.From.FirstName != "" {
			return tgMsg.From.FirstName
		}
		if tgMsg.From.UserName != "" {
			return tgMsg.From.UserName
		}
	}
	if tgMsg.Chat.Title != "" {
		return tgMsg.Chat.Title
	}
	return "Unknown"
}

func chatName(chat *tgbotapi.Chat) string {
	switch {
	case chat.FirstName != "":
		return chat.FirstName
	case chat.Title != "":
		return chat.Title
	case chat.UserName != "":
		return chat.UserName
	default:
		return strconv.FormatInt(chat.ID, 10)
	}
}
