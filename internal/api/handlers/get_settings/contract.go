package get_settings

import "context"

type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
