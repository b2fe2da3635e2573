package config

const (
	defaultBaudRate          = 115200
	defaultReadTimeoutMS     = 50
	defaultWaitDeviceTimeout = 30
	defaultSessionLogPath    = "~/.local/share/bmscap/sessions.db"
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Serial: Serial{
			BaudRate:          defaultBaudRate,
			ReadTimeoutMS:     defaultReadTimeoutMS,
			WaitDeviceTimeout: defaultWaitDeviceTimeout,
		},
		SessionLog: SessionLog{
			Enabled: true,
			Path:    defaultSessionLogPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
