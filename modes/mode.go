package modes

import "log/slog"

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// LogLevel is the level used when no log level is given on the command line.
func (m Mode) LogLevel() slog.Level {
	if m == ModeDevelopment {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
