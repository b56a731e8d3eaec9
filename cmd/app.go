package cmd

import (
	"context"
	"fmt"
	"time"

	"DocTrackerGo/config"
	"DocTrackerGo/models"
	"DocTrackerGo/store"
)

// app is the opened backend shared by every command.
type app struct {
	conf    config.Config
	users   store.Store[models.User]
	entries store.Store[models.Entry]
}

// openApp loads the configuration, starts logging and connects the store
// selected by DB_DRIVER. close releases the connection.
func openApp(debug bool) (*app, func(), error) {
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := config.InitLogger(conf.LogDir, debug || conf.Environment == "development"); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	a := &app{conf: conf}
	if conf.DBDriver == config.DriverMongo {
		if err := config.InitMongo(conf); err != nil {
			return nil, nil, err
		}
		a.users = store.NewMongoStore[models.User](config.Mongo.Collection(config.UsersCollection))
		a.entries = store.NewMongoStore[models.Entry](config.Mongo.Collection(config.EntriesCollection))
		return a, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := config.CloseMongo(ctx); err != nil {
				config.Logger.Warnw("close mongo", "error", err)
			}
			_ = config.Logger.Sync()
		}, nil
	}

	if err := config.InitDB(conf); err != nil {
		return nil, nil, fmt.Errorf("init database: %w", err)
	}
	a.users = store.NewGormStore[models.User](config.DB)
	a.entries = store.NewGormStore[models.Entry](config.DB)
	return a, func() {
		if sqlDB, err := config.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = config.Logger.Sync()
	}, nil
}

// migrate creates tables or indexes for the configured driver.
func (a *app) migrate(ctx context.Context) error {
	if a.conf.DBDriver == config.DriverMongo {
		return config.MigrateMongo(ctx, config.Mongo)
	}
	return config.MigrateDB(config.DB)
}
