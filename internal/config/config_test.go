package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"short", "***"},
		{"exactly8", "***"},
		{"longerstring", "long...ring"},
		{"abcdefghij", "abcd...ghij"},
	}

	for _, tt := range tests {
		result := maskSecret(tt.input)
		if result != tt.expected {
			t.Errorf("maskSecret(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestExpandEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	input := "prefix_${TEST_VAR}_suffix"
	result := expandEnv(input)
	expected := "prefix_test_value_suffix"

	if result != expected {
		t.Errorf("expandEnv(%q) = %q, want %q", input, result, expected)
	}
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadUserTransport(t *testing.T) {
	path := writeTestConfig(t, `
telegram:
  transport: user
  api_id: 12345
  api_hash: abcdefabcdef
  phone: "+15550001111"
  session_file: /tmp/test.session
storage:
  db_path: /tmp/history.db
ui:
  extended_emoji: true
log:
  level: debug
`)
	os.Setenv("CONFIG_PATH", path)
	defer os.Unsetenv("CONFIG_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Telegram.Transport != TransportUser {
		t.Errorf("Transport = %q, want user", cfg.Telegram.Transport)
	}
	if cfg.Telegram.APIID != 12345 {
		t.Errorf("APIID = %d, want 12345", cfg.Telegram.APIID)
	}
	if cfg.Telegram.Phone != "+15550001111" {
		t.Errorf("Phone = %q", cfg.Telegram.Phone)
	}
	if !cfg.UI.ExtendedEmoji {
		t.Error("ExtendedEmoji should be true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	os.Setenv("TGCLI_TEST_HASH", "hash_from_env")
	defer os.Unsetenv("TGCLI_TEST_HASH")

	path := writeTestConfig(t, `
telegram:
  transport: user
  api_id: 1
  api_hash: ${TGCLI_TEST_HASH}
  phone: "+15550001111"
storage:
  db_path: /tmp/history.db
`)
	os.Setenv("CONFIG_PATH", path)
	defer os.Unsetenv("CONFIG_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Telegram.APIHash != "hash_from_env" {
		t.Errorf("APIHash = %q, want expanded env value", cfg.Telegram.APIHash)
	}
	if cfg.Telegram.SessionFile != "tgcli.session" {
		t.Errorf("SessionFile = %q, want default", cfg.Telegram.SessionFile)
	}
}

func TestLoadBotTransport(t *testing.T) {
	path := writeTestConfig(t, `
telegram:
  transport: bot
  bot_token: "123:abc"
`)
	os.Setenv("CONFIG_PATH", path)
	defer os.Unsetenv("CONFIG_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Telegram.Transport != TransportBot {
		t.Errorf("Transport = %q, want bot", cfg.Telegram.Transport)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("DBPath default not applied")
	}
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing api_id",
			content: `
telegram:
  transport: user
  api_hash: abc
  phone: "+1555"
`,
			wantErr: "api_id",
		},
		{
			name: "missing phone",
			content: `
telegram:
  transport: user
  api_id: 1
  api_hash: abc
  phone: ""
`,
			wantErr: "phone",
		},
		{
			name: "missing bot token",
			content: `
telegram:
  transport: bot
`,
			wantErr: "bot_token",
		},
		{
			name: "bad transport",
			content: `
telegram:
  transport: carrier_pigeon
`,
			wantErr: "transport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.content)
			os.Setenv("CONFIG_PATH", path)
			defer os.Unsetenv("CONFIG_PATH")

			_, err := Load()
			if err == nil {
				t.Fatal("Load() succeeded, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestStringMasksSecrets(t *testing.T) {
	cfg := defaults()
	cfg.Telegram.APIHash = "supersecrethash"
	cfg.Telegram.Phone = "+15550001111"

	s := cfg.String()
	if strings.Contains(s, "supersecrethash") {
		t.Error("String() leaks the api hash")
	}
	if strings.Contains(s, "+15550001111") {
		t.Error("String() leaks the phone number")
	}
}
