package memo

import "github.com/rs/zerolog"

const defaultName = "memo"

// Config controls optional memoizer behavior.
type Config struct {
	// Name labels log lines and observer events. Defaults to "memo".
	Name string

	// Observer receives an event for every memoizer operation.
	Observer Observer

	// Logger receives debug lines for stores and evictions. Nil discards them.
	Logger *zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}
