package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/config"
	"github.com/starterkart/starterkart-backend/internal/crypto"
	"github.com/starterkart/starterkart-backend/pkg/slot"
)

// OpenSlotStore builds the durable slot store selected by SLOT_BACKEND.
// When SLOT_ENCRYPTION_KEY is set the store is wrapped in a SealedStore.
func OpenSlotStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (slot.Store, error) {
	store, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.SlotEncryptionKey == "" {
		return store, nil
	}
	key, err := crypto.DecodeKey(cfg.SlotEncryptionKey)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("invalid SLOT_ENCRYPTION_KEY: %w", err)
	}
	sealed, err := NewSealedStore(store, key)
	if err != nil {
		store.Close()
		return nil, err
	}
	logger.Info("Slot values are sealed with AES-256-GCM")
	return sealed, nil
}

func openBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (slot.Store, error) {
	switch cfg.SlotBackend {
	case config.BackendFile:
		store, err := slot.NewFileStore(cfg.SlotDir)
		if err != nil {
			return nil, err
		}
		logger.Info("Using file slot store", zap.String("dir", store.Dir()))
		return store, nil

	case config.BackendMemory:
		logger.Warn("Using in-memory slot store; content will not survive a restart")
		return slot.NewMemoryStore(), nil

	case config.BackendRedis:
		store, err := slot.NewRedisStore(ctx, slot.RedisConfig{
			Address:   cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			Namespace: cfg.SlotNamespace,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using redis slot store", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
		return store, nil

	case config.BackendFirestore:
		client, err := NewFirestoreClient(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		store, err := slot.NewFirestoreStore(client, cfg.FirestoreCollection, true)
		if err != nil {
			client.Close()
			return nil, err
		}
		logger.Info("Using firestore slot store", zap.String("collection", cfg.FirestoreCollection))
		return store, nil

	case config.BackendAzTables:
		store, err := slot.NewTableStore(ctx, slot.TableConfig{
			ConnectionString: cfg.AzureTablesConnectionString,
			Table:            cfg.AzureTableName,
			Namespace:        cfg.SlotNamespace,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using azure tables slot store", zap.String("table", cfg.AzureTableName))
		return store, nil

	default:
		return nil, fmt.Errorf("unknown slot backend %q", cfg.SlotBackend)
	}
}
