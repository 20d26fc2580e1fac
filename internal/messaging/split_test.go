package messaging

import (
	"strings"
	"testing"
)

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		maxLen  int
		wantLen int
	}{
		{"short text", "hello", 100, 1},
		{"exact max", "hello", 5, 1},
		{"splits on newline", "line one is here\nline two\nline three", 20, 2},
		{"long single line hard split", strings.Repeat("a", 25), 10, 3},
		{"empty", "", 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitMessage(tt.text, tt.maxLen)
			if len(got) != tt.wantLen {
				t.Errorf("SplitMessage() returned %d chunks, want %d: %q", len(got), tt.wantLen, got)
			}

			for i, chunk := range got {
				if len(chunk) > tt.maxLen {
					t.Errorf("chunk %d exceeds max length: %d > %d", i, len(chunk), tt.maxLen)
				}
			}

			if strings.Join(got, "") != tt.text && len(got) > 1 {
				// Newline splits keep the separator in the next chunk,
				// so rejoining must reproduce the input exactly.
				t.Errorf("chunks do not reassemble to the input")
			}
		})
	}
}
