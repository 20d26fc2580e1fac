package messaging

// MaxMessageLength is Telegram's per-message text limit.
const MaxMessageLength = 4096

// SplitMessage cuts text into chunks of at most maxLength bytes,
// preferring to split on a newline near the boundary so code blocks and
// paragraphs stay readable.
func SplitMessage(text string, maxLength int) []string {
	if len(text) <= maxLength {
		return []string{text}
	}

	var chunks []string
	remaining := text

	for len(remaining) > 0 {
		if len(remaining) <= maxLength {
			chunks = append(chunks, remaining)
			break
		}

		splitIndex := maxLength
		for i := maxLength - 1; i >= maxLength-200 && i > 0; i-- {
			if remaining[i] == '\n' {
				splitIndex = i
				break
			}
		}

		chunks = append(chunks, remaining[:splitIndex])
		remaining = remaining[splitIndex:]
	}

	return chunks
}
