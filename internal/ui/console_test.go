package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rg/tgcli/internal/decor"
	"github.com/rg/tgcli/internal/storage"
)

func newTestConsole() (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewConsole(&buf, MatrixTheme()), &buf
}

func TestConsoleOutgoing(t *testing.T) {
	c, buf := newTestConsole()

	c.OutgoingText("hello 😊")

	out := buf.String()
	if !strings.Contains(out, "You: hello 😊") {
		t.Errorf("outgoing render missing text: %q", out)
	}
}

func TestConsoleIncomingAndNotification(t *testing.T) {
	c, buf := newTestConsole()

	c.Incoming("Alice", "hi")
	c.Notification("Bob", "ping")

	out := buf.String()
	if !strings.Contains(out, "Alice:") || !strings.Contains(out, "hi") {
		t.Errorf("incoming render missing parts: %q", out)
	}
	if !strings.Contains(out, "NOTIFICATION from Bob: ping") {
		t.Errorf("notification render missing parts: %q", out)
	}
}

func TestConsoleShowHelp(t *testing.T) {
	c, buf := newTestConsole()

	c.ShowHelp(decor.LangJava, true, false)

	out := buf.String()
	for _, want := range []string{"/chat", "/togglecode", "/togglecloak", "/lang", "/photo", "/history", "/back", "/help", "/exit"} {
		if !strings.Contains(out, want) {
			t.Errorf("help is missing %s", want)
		}
	}
	if !strings.Contains(out, "JAVA") {
		t.Errorf("help does not show the current language: %q", out)
	}
	if !strings.Contains(out, "Code mode: ON") {
		t.Errorf("help does not show code mode state: %q", out)
	}
}

func TestConsoleShowHistory(t *testing.T) {
	c, buf := newTestConsole()

	now := time.Now()
	c.ShowHistory([]*storage.Message{
		{Direction: storage.DirectionOut, PeerName: "Alice", Raw: "hi", Sent: "hi 😊", CreatedAt: now},
		{Direction: storage.DirectionIn, PeerName: "Alice", Raw: "hey back", Sent: "hey back", CreatedAt: now},
	})

	out := buf.String()
	if !strings.Contains(out, "You: hi 😊") {
		t.Errorf("history missing outgoing line: %q", out)
	}
	if !strings.Contains(out, "Alice:") || !strings.Contains(out, "hey back") {
		t.Errorf("history missing incoming line: %q", out)
	}
}

func TestConsoleShowHistoryEmpty(t *testing.T) {
	c, buf := newTestConsole()

	c.ShowHistory(nil)

	if !strings.Contains(buf.String(), "No stored messages") {
		t.Errorf("empty history should print a notice: %q", buf.String())
	}
}
