package protocal

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"storefront-state/configs"
	httpAdapter "storefront-state/internal/adapters/input/http"
	"storefront-state/internal/adapters/output/memory"
	"storefront-state/internal/adapters/output/postgres"
	"storefront-state/internal/adapters/output/scheduler"
	sqliteAdapter "storefront-state/internal/adapters/output/sqlite"
	"storefront-state/internal/application"
	"storefront-state/internal/domain"
	"storefront-state/internal/ports/output"
	"storefront-state/pkg/database_driver/gorm"
	"storefront-state/pkg/database_driver/sqlite"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	if configs.GetViper().App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	// Output adapter (storage backing)
	storage, closeStorage, err := openStorage(configs.GetViper())
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			closeStorage()
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Application service, one container per running client
	session := configs.GetViper().Session
	srv := application.NewSessionContainer(storage, scheduler.TimerScheduler{}, scheduler.SystemClock{}, application.Options{
		KeyPrefix:              configs.GetViper().Store.KeyPrefix,
		LedgerCap:              session.LedgerCap,
		NotificationDuration:   time.Duration(session.NotificationMillis) * time.Millisecond,
		MaxPersistedFieldBytes: session.MaxPersistedFieldBytes,
		PlaceholderImage:       session.PlaceholderImage,
	})

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv, storage, configs.GetViper().App.Timezone)
	hdl.Register(app)

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return app.Listen(":" + configs.GetViper().App.Port)
}

// openStorage connects the configured backing and returns its close func
func openStorage(cfg *configs.Config) (output.Storage, func(), error) {
	switch cfg.Store.Driver {
	case "", "memory":
		logrus.Infof("Using in-memory storage: quota=%d", cfg.Store.QuotaBytes)
		return memory.NewMemoryStorage(cfg.Store.QuotaBytes), func() {}, nil

	case "sqlite":
		db, err := sqlite.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		storage, err := sqliteAdapter.NewSQLiteStorage(db)
		if err != nil {
			sqlite.Close(db)
			return nil, nil, err
		}
		return storage, func() { sqlite.Close(db) }, nil

	case "postgres":
		dbConGorm, err := gorm.ConnectToPostgreSQL(
			cfg.Postgres.Host,
			cfg.Postgres.Port,
			cfg.Postgres.Username,
			cfg.Postgres.Password,
			cfg.Postgres.DbName,
			cfg.Postgres.SSLMode,
		)
		if err != nil {
			return nil, nil, err
		}
		storage, err := postgres.NewPostgresStorage(dbConGorm.Postgres)
		if err != nil {
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			return nil, nil, err
		}
		return storage, func() { gorm.DisconnectPostgres(dbConGorm.Postgres) }, nil
	}
	return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownStorageDriver, cfg.Store.Driver)
}
