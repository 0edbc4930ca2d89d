package memo

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings(strings.NewReader(`{"name":"users","timeout_ms":1500,"log_level":"debug"}`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.Name != "users" || s.Timeout != 1500*time.Millisecond || s.LogLevel != "debug" {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if s.TimeoutMillis() != 1500 {
		t.Fatalf("expected 1500ms, got %v", s.TimeoutMillis())
	}
}

func TestLoadSettingsRejectsNonNumericTimeout(t *testing.T) {
	for _, doc := range []string{
		`{"name":"users","timeout_ms":"1500"}`,
		`{"name":"users","timeout_ms":null}`,
		`{"name":"users"}`,
	} {
		if _, err := LoadSettings(strings.NewReader(doc)); !errors.Is(err, ErrInvalidTimeoutType) {
			t.Fatalf("expected ErrInvalidTimeoutType for %s, got %v", doc, err)
		}
	}
}

func TestLoadSettingsMalformedJSON(t *testing.T) {
	if _, err := LoadSettings(strings.NewReader(`{"name":`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSettingsBuildMemoizer(t *testing.T) {
	s, err := LoadSettings(strings.NewReader(`{"name":"orders","timeout_ms":250,"log_level":"warn"}`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	m, err := Memoize(func(args ...int) (int, error) { return args[0] * 2, nil }, s.TimeoutMillis(), s.Options()...)
	if err != nil {
		t.Fatalf("memoize failed: %v", err)
	}
	if m.Name() != "orders" {
		t.Fatalf("expected name from settings, got %q", m.Name())
	}
	if m.Timeout() != 250*time.Millisecond {
		t.Fatalf("expected 250ms timeout, got %v", m.Timeout())
	}
}

func TestSettingsOptionsEmpty(t *testing.T) {
	if opts := (Settings{}).Options(); len(opts) != 0 {
		t.Fatalf("expected no options for empty settings, got %d", len(opts))
	}
}

func TestSettingsJSONRoundTrip(t *testing.T) {
	in := Settings{Name: "users", Timeout: 1500 * time.Millisecond, LogLevel: "debug"}
	body, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(body), `"timeout_ms":1500`) {
		t.Fatalf("expected timeout_ms in %s", body)
	}
	out, err := LoadSettings(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("load of marshalled settings failed: %v", err)
	}
	if out != in {
		t.Fatalf("expected %+v after round trip, got %+v", in, out)
	}
}
