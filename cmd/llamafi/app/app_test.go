package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agentstation/llamafi"
	"github.com/agentstation/llamafi/pkg/errors"
	"github.com/agentstation/llamafi/pkg/logging"
)

func testConfig() *Config {
	return &Config{
		Format:    "json",
		Timeout:   time.Second,
		LogFormat: "json",
		LogOutput: "discard",
	}
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_Client_Singleton verifies that Client() returns the same instance.
func TestApp_Client_Singleton(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(testConfig()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var wg sync.WaitGroup
	clients := make([]*llamafi.Client, 10)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := app.Client()
			if err != nil {
				t.Errorf("Client() failed: %v", err)
			}
			clients[i] = c
		}(i)
	}
	wg.Wait()

	for _, c := range clients[1:] {
		if c != clients[0] {
			t.Fatal("Client() returned different instances")
		}
	}

	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

// TestApp_Client_InvalidConfig verifies config errors surface from Client().
func TestApp_Client_InvalidConfig(t *testing.T) {
	config := testConfig()
	config.Timeout = 0

	app, err := New("dev", "", "", "", WithConfig(config))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := app.Client(); err == nil {
		t.Fatal("Client() should fail with a zero timeout")
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// TestApp_Execute runs commands through the root command with a fake API.
func TestApp_Execute(t *testing.T) {
	var urls []string
	client, err := llamafi.New(llamafi.WithHTTPClient(&http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			urls = append(urls, req.URL.String())
			status := http.StatusOK
			if strings.Contains(req.URL.Path, "missing") {
				status = http.StatusNotFound
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
				Request:    req,
			}, nil
		}),
	}))
	if err != nil {
		t.Fatal(err)
	}

	app, err := New("1.2.3", "abc", "today", "test",
		WithConfig(testConfig()),
		WithLogger(logging.NewNopLogger()),
		WithClient(client))
	if err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, app, "tvl", "protocol", "--protocol", "aave")
	if err != nil {
		t.Fatalf("tvl protocol failed: %v", err)
	}
	if !strings.Contains(out, `"ok": true`) {
		t.Errorf("unexpected output %q", out)
	}

	_, err = execute(t, app, "call", "protocol", "protocol=missing")
	if !errors.IsAPIError(err) {
		t.Errorf("expected an API failure, got %v", err)
	}

	want := []string{"https://api.llama.fi/protocol/aave", "https://api.llama.fi/protocol/missing"}
	if strings.Join(urls, " ") != strings.Join(want, " ") {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

// TestApp_Execute_BadFormat verifies flag values are validated.
func TestApp_Execute_BadFormat(t *testing.T) {
	app, err := New("dev", "", "", "", WithConfig(testConfig()), WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatal(err)
	}

	_, err = execute(t, app, "endpoints", "-o", "csv")
	var cfgErr *errors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected a config error, got %v", err)
	}
}

// TestApp_VersionCommand verifies plain and structured version output.
func TestApp_VersionCommand(t *testing.T) {
	app, err := New("1.2.3", "abc", "today", "ci", WithConfig(testConfig()), WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, app, "version")
	if err != nil {
		t.Fatal(err)
	}
	var info versionInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("version output is not JSON: %v", err)
	}
	if info.Version != "1.2.3" || info.BuiltBy != "ci" {
		t.Errorf("unexpected version info %+v", info)
	}

	app.config.Format = "wide"
	out, err = execute(t, app, "version")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"1.2.3", "abc", "ci"} {
		if !strings.Contains(out, want) {
			t.Errorf("wide version output missing %q:\n%s", want, out)
		}
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("wide version output should be a table, got JSON:\n%s", out)
	}

	app.config.Format = ""
	out, err = execute(t, app, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "llamafi 1.2.3\n" {
		t.Errorf("version output = %q", out)
	}
}
