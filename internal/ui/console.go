package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rg/tgcli/internal/decor"
	"github.com/rg/tgcli/internal/storage"
)

// Console renders chat output. It satisfies the dispatcher's Console
// interface. A mutex serializes writes because the incoming-message
// callback prints from the transport goroutine.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	theme Theme
}

func NewConsole(w io.Writer, theme Theme) *Console {
	return &Console{w: w, theme: theme}
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, format+"\n", args...)
}

func (c *Console) timestamp() string {
	return c.theme.Timestamp.Render("[" + time.Now().Format("15:04:05") + "]")
}

func (c *Console) Infof(format string, args ...any) {
	c.printf("%s", c.theme.Info.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Errorf(format string, args ...any) {
	c.printf("%s", c.theme.Error.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) OutgoingText(text string) {
	c.printf("%s %s", c.timestamp(), c.theme.Outgoing.Render("You: "+text))
}

func (c *Console) OutgoingCode(code string, _ decor.Language) {
	c.printf("%s %s\n%s", c.timestamp(), c.theme.Outgoing.Render("You:"), code)
}

func (c *Console) OutgoingNotice(notice string) {
	c.printf("%s %s", c.timestamp(), c.theme.Outgoing.Render("You: "+notice))
}

func (c *Console) Incoming(sender, text string) {
	c.printf("%s %s %s", c.timestamp(), c.theme.Incoming.Render(sender+":"), text)
}

func (c *Console) Notification(sender, text string) {
	c.printf("%s %s", c.timestamp(),
		c.theme.Notification.Render("NOTIFICATION from "+sender+": "+text))
}

// Welcome prints the startup banner.
func (c *Console) Welcome() {
	c.printf("%s", c.theme.Banner.Render("Welcome to the CLI Telegram Client"))
	c.Infof("Type /chat <username or phone> to start a chat. /exit to quit.")
}

func (c *Console) ShowHelp(current decor.Language, codeMode, cloakMode bool) {
	var sb strings.Builder
	sb.WriteString("\nAvailable Commands:\n")

	rows := []struct{ cmd, desc string }{
		{"/chat <username/phone>", "Start a new chat session."},
		{"/togglecode", "Toggle code encoding mode."},
		{"/togglecloak", "Toggle cloak mode for your messages."},
		{"/lang <c|cpp|java|python>", "Change the encoding language."},
		{"/photo <file_path>", "Send a photo from a file."},
		{"/history [count]", "Show recent messages for the active chat."},
		{"/back", "Return to peer selection from an active chat."},
		{"/help", "Show this help message."},
		{"/exit", "Log out and exit the client."},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %s - %s\n", c.theme.Command.Render(row.cmd), row.desc))
	}
	sb.WriteString(fmt.Sprintf("  %s - Type text codes (e.g. :smile:, :heart:) to convert to emojis.\n",
		c.theme.Command.Render("Emoji Shortcuts")))

	sb.WriteString("\n")
	sb.WriteString(c.theme.Info.Render("Messages from other chats will appear as notifications."))
	sb.WriteString("\n")
	sb.WriteString(c.theme.Info.Render(fmt.Sprintf("Current language: %s. Code mode: %s. Cloak mode: %s.",
		strings.ToUpper(string(current)), onOff(codeMode), onOff(cloakMode))))

	c.printf("%s", sb.String())
}

func (c *Console) ShowHistory(messages []*storage.Message) {
	if len(messages) == 0 {
		c.Infof("No stored messages for this chat yet.")
		return
	}

	var sb strings.Builder
	for _, msg := range messages {
		ts := c.theme.Timestamp.Render("[" + msg.CreatedAt.Format("15:04:05") + "]")
		switch msg.Direction {
		case storage.DirectionOut:
			sb.WriteString(fmt.Sprintf("%s %s\n", ts, c.theme.Outgoing.Render("You: "+msg.Sent)))
		default:
			sb.WriteString(fmt.Sprintf("%s %s %s\n", ts,
				c.theme.Incoming.Render(msg.PeerName+":"), msg.Raw))
		}
	}

	c.printf("%s", strings.TrimRight(sb.String(), "\n"))
}

func onOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}
