package memo

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
)

// Settings is the runtime configuration of a memoizer, typically decoded from a
// JSON document such as {"name": "users", "timeout_ms": 1500, "log_level": "debug"}.
type Settings struct {
	Name     string
	Timeout  time.Duration
	LogLevel string
}

type settingsJSON struct {
	Name      string `json:"name"`
	TimeoutMs any    `json:"timeout_ms"`
	LogLevel  string `json:"log_level,omitempty"`
}

// UnmarshalJSON validates timeout_ms with ParseTimeout.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw settingsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	timeout, err := ParseTimeout(raw.TimeoutMs)
	if err != nil {
		return fmt.Errorf("memo settings timeout_ms: %w", err)
	}
	*s = Settings{Name: raw.Name, Timeout: timeout, LogLevel: raw.LogLevel}
	return nil
}

// MarshalJSON writes the same document shape UnmarshalJSON reads.
func (s Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(settingsJSON{
		Name:      s.Name,
		TimeoutMs: s.TimeoutMillis(),
		LogLevel:  s.LogLevel,
	})
}

// LoadSettings decodes Settings from r.
// @group Construction
//
// Example: memoizer from a config file
//
//	f, _ := os.Open("memo.json")
//	defer f.Close()
//	s, err := memo.LoadSettings(f)
//	if err != nil {
//		return err
//	}
//	m, err := memo.Memoize(fetch, s.TimeoutMillis(), s.Options()...)
func LoadSettings(r io.Reader) (Settings, error) {
	var s Settings
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// TimeoutMillis returns Timeout in milliseconds, for passing to Memoize.
func (s Settings) TimeoutMillis() float64 {
	return float64(s.Timeout) / float64(time.Millisecond)
}

// Options converts the settings into memoizer options.
func (s Settings) Options() []Option {
	opts := make([]Option, 0, 2)
	if s.Name != "" {
		opts = append(opts, WithName(s.Name))
	}
	if s.LogLevel != "" {
		opts = append(opts, WithLogger(NewLogger(s.LogLevel)))
	}
	return opts
}
