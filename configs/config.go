package configs

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Store    `mapstructure:"store"`
	Postgres `mapstructure:"postgres"`
	Session  `mapstructure:"session"`
}

// App struct
type App struct {
	Debug    bool   `mapstructure:"debug"`
	Env      string `mapstructure:"env"`
	Port     string `mapstructure:"port"`
	Timezone string `mapstructure:"timezone"`
}

// Store struct - selects the durable key/value backing
type Store struct {
	Driver     string `mapstructure:"driver"` // memory, sqlite or postgres
	Path       string `mapstructure:"path"`
	KeyPrefix  string `mapstructure:"key_prefix"`
	QuotaBytes int    `mapstructure:"quota_bytes"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// Session struct - zero values mean the application applies its defaults
type Session struct {
	LedgerCap              int    `mapstructure:"ledger_cap"`
	NotificationMillis     int    `mapstructure:"notification_ms"`
	MaxPersistedFieldBytes int    `mapstructure:"max_persisted_field_bytes"`
	PlaceholderImage       string `mapstructure:"placeholder_image"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	name := "config"
	if env != "" {
		if _, err := os.Stat(filepath.Join(path, "config."+env+".yaml")); err == nil {
			name = "config." + env
		}
	}
	viper.SetConfigName(name)
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}
