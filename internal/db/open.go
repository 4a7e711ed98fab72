package db

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trip-planner/internal/config"
)

// OpenSlot builds the slot selected by cfg.Backend. The returned close function
// releases the backend connection and is never nil.
func OpenSlot(ctx context.Context, cfg config.StorageConfig) (Slot, func(), error) {
	noop := func() {}
	switch cfg.Backend {
	case "", "file":
		return NewFileSlot(cfg.DataFile), noop, nil

	case "mongo":
		client, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, noop, err
		}
		slot := &MongoSlot{
			Collection: client.Database(cfg.MongoDB).Collection(cfg.MongoCollection),
			Key:        cfg.Key,
		}
		return slot, func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithError(err).Warn("Failed to disconnect from MongoDB")
			}
		}, nil

	case "redis":
		client, err := NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, noop, err
		}
		return &RedisSlot{Client: client, Key: cfg.Key}, func() { _ = client.Close() }, nil

	case "mysql":
		conn, err := OpenMySQL(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, noop, err
		}
		slot := &SQLSlot{DB: conn, Key: cfg.Key}
		if err := slot.EnsureTable(ctx); err != nil {
			_ = conn.Close()
			return nil, noop, err
		}
		return slot, func() { _ = conn.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
