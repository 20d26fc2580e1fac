package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rg/tgcli/internal/decor"
	"github.com/rg/tgcli/internal/logger"
	"github.com/rg/tgcli/internal/messaging"
	"github.com/rg/tgcli/internal/session"
	"github.com/rg/tgcli/internal/storage"
)

// Console is the user-facing output surface the dispatcher reports
// through. The ui package implements it.
type Console interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)

	OutgoingText(text string)
	OutgoingCode(code string, lang decor.Language)
	OutgoingNotice(notice string)

	Incoming(sender, text string)
	Notification(sender, text string)

	ShowHelp(current decor.Language, codeMode, cloakMode bool)
	ShowHistory(messages []*storage.Message)
}

// HistoryStore is the slice of storage the dispatcher needs.
type HistoryStore interface {
	SaveOutgoing(peerID int64, peerName, raw, sent string) error
	SaveIncoming(peerID int64, peerName, text string) error
	RecentByPeer(peerID int64, limit int) ([]*storage.Message, error)
}

// Dispatcher routes parsed input lines to command handlers and plain
// text to the decorate-and-send path. Every core error is recovered
// here: the user sees a message and state stays unchanged.
type Dispatcher struct {
	transport messaging.Transport
	state     *session.State
	decorator *decor.Decorator
	history   HistoryStore
	console   Console
}

func NewDispatcher(
	transport messaging.Transport,
	state *session.State,
	decorator *decor.Decorator,
	history HistoryStore,
	console Console,
) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		state:     state,
		decorator: decorator,
		history:   history,
		console:   console,
	}
}

// HandleLine processes one input line. It returns true when the user
// asked to exit.
func (d *Dispatcher) HandleLine(ctx context.Context, line string) bool {
	cmd, err := ParseLine(line)
	if err != nil {
		d.reportError(err)
		return false
	}
	if cmd == nil {
		return false
	}

	switch c := cmd.(type) {
	case ChatCmd:
		d.handleChat(ctx, c.Target)
	case ToggleCodeCmd:
		d.handleToggleCode()
	case ToggleCloakCmd:
		d.handleToggleCloak()
	case LangCmd:
		d.handleLang(c.Name)
	case PhotoCmd:
		d.handlePhoto(ctx, c.Path)
	case HistoryCmd:
		d.handleHistory(c.Limit)
	case BackCmd:
		d.handleBack()
	case HelpCmd:
		d.handleHelp()
	case ExitCmd:
		return true
	case PlainCmd:
		d.handlePlain(ctx, c.Text)
	}
	return false
}

// HandleIncoming is registered as the transport's incoming callback. It
// runs on the transport goroutine and only reads shared state.
func (d *Dispatcher) HandleIncoming(msg *messaging.IncomingMessage) {
	target := d.state.Target()

	if err := d.history.SaveIncoming(msg.ChatID, msg.SenderName, msg.Text); err != nil {
		logger.Warn("Failed to record incoming message", "chat_id", msg.ChatID, "error", err)
	}

	if target != nil && msg.Private && msg.ChatID == target.ID {
		if err := d.transport.MarkRead(context.Background(), target); err != nil {
			logger.Warn("Failed to mark chat read", "chat_id", msg.ChatID, "error", err)
		}
		d.console.Incoming(msg.SenderName, msg.Text)
		return
	}

	d.console.Notification(msg.SenderName, msg.Text)
}

func (d *Dispatcher) handleChat(ctx context.Context, target string) {
	peer, err := d.transport.Resolve(ctx, target)
	if err != nil {
		logger.Warn("Failed to resolve chat target", "target", target, "error", err)
		d.reportError(err)
		return
	}

	d.state.SetTarget(peer)
	logger.Info("Chat session opened", "peer", peer.Name, "peer_id", peer.ID)
	d.console.Infof("Session with: %s. Commands: /back, /togglecode, /togglecloak, /lang, /photo, /help", peer.Name)
}

func (d *Dispatcher) handleToggleCode() {
	enabled := d.state.ToggleCodeMode()
	d.console.Infof("Code mode %s. Current language: %s", onOff(enabled), strings.ToUpper(string(d.state.Language())))
}

func (d *Dispatcher) handleToggleCloak() {
	enabled := d.state.ToggleCloakMode()
	d.console.Infof("Cloak mode %s.", onOff(enabled))
}

func (d *Dispatcher) handleLang(name string) {
	lang, err := decor.ParseLanguage(name)
	if err != nil {
		d.reportError(err)
		return
	}
	d.state.SetLanguage(lang)
	d.console.Infof("Language set to %s", strings.ToUpper(string(lang)))
}

func (d *Dispatcher) handlePhoto(ctx context.Context, path string) {
	target := d.state.Target()
	if target == nil {
		d.reportError(ErrNoActiveChat)
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		d.reportError(fmt.Errorf("%w: %s", ErrFileNotFound, path))
		return
	}

	// Photos are sent as-is: captions are decoration-exempt.
	if err := d.transport.SendPhoto(ctx, target, path); err != nil {
		logger.Error("Failed to send photo", "peer_id", target.ID, "path", path, "error", err)
		d.console.Errorf("Failed to send photo: %v", err)
		return
	}

	if err := d.history.SaveOutgoing(target.ID, target.Name, path, "[photo] "+path); err != nil {
		logger.Warn("Failed to record photo send", "peer_id", target.ID, "error", err)
	}
	d.console.OutgoingNotice("[Photo sent]")
}

func (d *Dispatcher) handleHistory(limit int) {
	target := d.state.Target()
	if target == nil {
		d.reportError(ErrNoActiveChat)
		return
	}

	messages, err := d.history.RecentByPeer(target.ID, limit)
	if err != nil {
		logger.Error("Failed to load history", "peer_id", target.ID, "error", err)
		d.console.Errorf("Failed to load history: %v", err)
		return
	}
	d.console.ShowHistory(messages)
}

func (d *Dispatcher) handleBack() {
	d.state.ClearTarget()
	d.console.Infof("Exiting chat session.")
}

func (d *Dispatcher) handleHelp() {
	snap := d.state.Snapshot()
	d.console.ShowHelp(snap.Language, snap.CodeMode, snap.CloakMode)
}

func (d *Dispatcher) handlePlain(ctx context.Context, text string) {
	snap := d.state.Snapshot()
	if snap.Target == nil {
		d.reportError(ErrNoActiveChat)
		return
	}

	emojified := d.decorator.Emojify(text)
	sent := emojified
	if snap.CodeMode {
		sent = d.decorator.Decorate(text, true, snap.Language)
	}

	if err := d.transport.SendText(ctx, snap.Target, sent); err != nil {
		logger.Error("Failed to send message", "peer_id", snap.Target.ID, "error", err)
		d.console.Errorf("Failed to send message: %v", err)
		return
	}

	if err := d.history.SaveOutgoing(snap.Target.ID, snap.Target.Name, text, sent); err != nil {
		logger.Warn("Failed to record outgoing message", "peer_id", snap.Target.ID, "error", err)
	}

	// Local echo depends on the mode matrix: code+cloak shows only a
	// delivery notice, code shows the code block, cloak shows the
	// base64 form of what was sent in the clear.
	switch {
	case snap.CodeMode && snap.CloakMode:
		d.console.OutgoingNotice("[Delivered]")
	case snap.CodeMode:
		d.console.OutgoingCode(sent, snap.Language)
	case snap.CloakMode:
		d.console.OutgoingText(decor.Cloak(emojified))
	default:
		d.console.OutgoingText(emojified)
	}
}

func (d *Dispatcher) reportError(err error) {
	switch {
	case errors.Is(err, ErrUnknownCommand):
		d.console.Errorf("%v. Type /help to see all commands.", err)
	case errors.Is(err, ErrNoActiveChat):
		d.console.Errorf("No active chat. Use /chat <username/phone> first.")
	case errors.Is(err, messaging.ErrInvalidTarget):
		d.console.Errorf("Failed to open chat: %v", err)
	default:
		d.console.Errorf("%v", err)
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}
