package settings

import "sync"

type Arguments struct {
	// Development logger with debug level and caller info
	Debug bool

	// Log every vehicle the demo drives
	Verbose bool
}

var (
	instance *Arguments
	once     sync.Once
)

// GetSettings returns the process-wide settings, creating them with defaults on first use.
// The demo takes no flags, so the defaults are the only values outside of tests.
func GetSettings() *Arguments {
	once.Do(func() {
		instance = &Arguments{
			Debug:   false,
			Verbose: false,
		}
	})
	return instance
}
