package database

import "context"

// SettingsStore is the durable key/value storage the preferences are
// written to. Values are strings; booleans are encoded as "true"/"false".
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
	Close() error
}

var (
	_ SettingsStore = (*Database)(nil)
	_ SettingsStore = (*MemStore)(nil)
)
