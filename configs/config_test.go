package configs

import (
	"os"
	"testing"
)

var testEnvKeys = []string{
	"APP_DEBUG", "APP_ENV", "APP_PORT", "APP_TIMEZONE",
	"STORE_DRIVER", "STORE_PATH", "STORE_KEY_PREFIX", "STORE_QUOTA_BYTES",
	"SESSION_LEDGER_CAP", "SESSION_NOTIFICATION_MS",
	"SESSION_MAX_PERSISTED_FIELD_BYTES", "SESSION_PLACEHOLDER_IMAGE",
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	for _, key := range testEnvKeys {
		os.Unsetenv(key)
	}
}

// TestConfigFileDefaults tests that values from config.yaml are unmarshaled
func TestConfigFileDefaults(t *testing.T) {
	cleanupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "")
	cfg := GetViper()

	if cfg.App.Port != "9089" {
		t.Errorf("Expected App.Port to be 9089, got %s", cfg.App.Port)
	}
	if cfg.Store.Driver != "sqlite" {
		t.Errorf("Expected Store.Driver to be sqlite, got %s", cfg.Store.Driver)
	}
	if cfg.Store.KeyPrefix != "storefront" {
		t.Errorf("Expected Store.KeyPrefix to be storefront, got %s", cfg.Store.KeyPrefix)
	}
	if cfg.Session.LedgerCap != 20 {
		t.Errorf("Expected Session.LedgerCap to be 20, got %d", cfg.Session.LedgerCap)
	}
	if cfg.Session.NotificationMillis != 3000 {
		t.Errorf("Expected Session.NotificationMillis to be 3000, got %d", cfg.Session.NotificationMillis)
	}
}

// TestSessionStructFieldsFromEnv tests that env variables override the config file
func TestSessionStructFieldsFromEnv(t *testing.T) {
	cleanupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("SESSION_LEDGER_CAP", "5")
	os.Setenv("SESSION_NOTIFICATION_MS", "1500")
	os.Setenv("STORE_DRIVER", "memory")
	os.Setenv("STORE_QUOTA_BYTES", "5242880")

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.Session.LedgerCap != 5 {
		t.Errorf("Expected Session.LedgerCap to be 5, got %d", cfg.Session.LedgerCap)
	}
	if cfg.Session.NotificationMillis != 1500 {
		t.Errorf("Expected Session.NotificationMillis to be 1500, got %d", cfg.Session.NotificationMillis)
	}
	if cfg.Store.Driver != "memory" {
		t.Errorf("Expected Store.Driver to be memory, got %s", cfg.Store.Driver)
	}
	if cfg.Store.QuotaBytes != 5242880 {
		t.Errorf("Expected Store.QuotaBytes to be 5242880, got %d", cfg.Store.QuotaBytes)
	}
}

// TestSessionZeroValuesRequireApplicationDefaults tests that zero values pass through untouched
// The application layer applies defaults when values are 0
func TestSessionZeroValuesRequireApplicationDefaults(t *testing.T) {
	cleanupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("SESSION_LEDGER_CAP", "0")
	os.Setenv("SESSION_NOTIFICATION_MS", "0")
	os.Setenv("SESSION_MAX_PERSISTED_FIELD_BYTES", "0")

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.Session.LedgerCap != 0 {
		t.Errorf("Expected Session.LedgerCap to be 0, got %d", cfg.Session.LedgerCap)
	}
	if cfg.Session.NotificationMillis != 0 {
		t.Errorf("Expected Session.NotificationMillis to be 0, got %d", cfg.Session.NotificationMillis)
	}
	if cfg.Session.MaxPersistedFieldBytes != 0 {
		t.Errorf("Expected Session.MaxPersistedFieldBytes to be 0, got %d", cfg.Session.MaxPersistedFieldBytes)
	}
}
