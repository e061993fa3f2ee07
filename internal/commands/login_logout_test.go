package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
)

const testOAuthClient = `{"installed":{"client_id":"test","client_secret":"test","redirect_uris":["http://localhost"]}}`

// authDir creates a config directory holding the given files.
func authDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func runAuth(ctx context.Context, cmd commands.Command, env *commands.Env) (stdout, stderr string, code int) {
	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(ctx, env, nil, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestLoginCommand_NoOAuthClient(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	stdout, stderr, code := runAuth(context.Background(), &commands.LoginCmd{}, &commands.Env{Config: cfg})

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "oauth_client.json not found") {
		t.Errorf("expected error message about missing oauth_client.json, got %q", stderr)
	}
	if !strings.Contains(stderr, "tasklist login") {
		t.Error("expected setup instructions to mention tasklist login")
	}
}

func TestLoginCommand_InvalidOAuthClient(t *testing.T) {
	dir := authDir(t, map[string]string{config.OAuthClientFile: "not json"})

	_, stderr, code := runAuth(context.Background(), &commands.LoginCmd{}, &commands.Env{Config: &config.Config{Dir: dir}})

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.Contains(stderr, "invalid oauth_client.json") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// A stored token that cannot be used must not count as logged in.
func TestLoginCommand_UnusableToken(t *testing.T) {
	tokens := map[string]string{
		"corrupt":         `{"access_token":`,
		"no refresh":      `{"access_token":"expired","token_type":"Bearer"}`,
		"expired no refr": `{"access_token":"test","token_type":"Bearer","expiry":"2020-01-01T00:00:00Z"}`,
	}

	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			dir := authDir(t, map[string]string{
				config.OAuthClientFile: testOAuthClient,
				config.TokenFile:       token,
			})

			// Cancelled so the flow stops instead of waiting for the browser.
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			stdout, _, code := runAuth(ctx, &commands.LoginCmd{}, &commands.Env{Config: &config.Config{Dir: dir}})

			if stdout == "already logged in\n" {
				t.Error("should not say 'already logged in' with an unusable token")
			}
			if code == exitcode.Success {
				t.Error("expected the cancelled login to fail")
			}
		})
	}
}

func TestLogoutCommand_OnlyRemovesToken(t *testing.T) {
	dir := authDir(t, map[string]string{
		config.OAuthClientFile: testOAuthClient,
		config.TokenFile:       `{"access_token":"test","refresh_token":"test"}`,
	})
	core, logs := observer.New(zapcore.DebugLevel)
	env := &commands.Env{Config: &config.Config{Dir: dir}, Log: zap.New(core)}

	stdout, stderr, code := runAuth(context.Background(), &commands.LogoutCmd{}, env)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}

	if _, err := os.Stat(filepath.Join(dir, config.TokenFile)); !os.IsNotExist(err) {
		t.Error("token.json should have been deleted")
	}
	if _, err := os.Stat(filepath.Join(dir, config.OAuthClientFile)); err != nil {
		t.Error("oauth_client.json should NOT have been deleted")
	}
	if logs.FilterMessage("token removed").Len() != 1 {
		t.Error("expected the removal to be logged")
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	tests := []struct {
		name   string
		quiet  bool
		stdout string
	}{
		{"normal", false, "not logged in\n"},
		{"quiet", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Dir: t.TempDir(), Quiet: tt.quiet}

			stdout, stderr, code := runAuth(context.Background(), &commands.LogoutCmd{}, &commands.Env{Config: cfg})

			if code != exitcode.Success {
				t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
			}
			if stderr != "" {
				t.Errorf("expected no stderr, got %q", stderr)
			}
			if stdout != tt.stdout {
				t.Errorf("expected %q, got %q", tt.stdout, stdout)
			}
		})
	}
}
