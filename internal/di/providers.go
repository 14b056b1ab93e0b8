// Package di wires the chat service together with google/wire.
package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"msgtags/internal/chat/handler"
	"msgtags/internal/chat/repository"
	"msgtags/internal/config"
	"msgtags/internal/dbmongo"
	"msgtags/internal/dbmysql"
	"msgtags/internal/metrics"
)

type Application struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Handler *handler.ChatHandler
}

// ProvideMessageRepository picks the store named by STORE_DRIVER. The
// returned cleanup disconnects from MongoDB.
func ProvideMessageRepository(cfg *config.Config, log *slog.Logger) (repository.MessageRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn("using in-memory message store, data is lost on restart")
		return repository.NewMemoryRepository(), func() {}, nil

	case config.StoreDriverMongo, "":
		client, err := dbmongo.NewMongoConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Close(ctx); err != nil {
				log.Error("failed to disconnect MongoDB", "error", err)
			}
		}

		timeout := time.Duration(cfg.MongoDB.Timeout) * time.Second
		store := dbmongo.NewMessageStore(client.Database.Collection(cfg.MongoDB.Collection), timeout)
		if err := store.EnsureIndexes(context.Background()); err != nil {
			cleanup()
			return nil, nil, err
		}

		log.Info("connected to MongoDB",
			"host", cfg.MongoDB.Host,
			"database", cfg.MongoDB.Database,
			"collection", cfg.MongoDB.Collection)
		return store, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// ProvideTagAudit returns the MySQL audit trail when AUDIT_ENABLED is set,
// a no-op recorder otherwise.
func ProvideTagAudit(cfg *config.Config, log *slog.Logger) (repository.TagAuditRepository, func(), error) {
	if !cfg.Audit.Enabled {
		return repository.NewNopTagAudit(), func() {}, nil
	}

	db, err := dbmysql.NewMySQL(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := dbmysql.Close(db); err != nil {
			log.Error("failed to close MySQL", "error", err)
		}
	}
	return dbmysql.NewTagEventRepository(db), cleanup, nil
}
