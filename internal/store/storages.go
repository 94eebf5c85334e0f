package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// Storages groups every persistence component the services depend on.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
	RevocationList RevocationList

	closers []io.Closer
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories. When cfg.Redis.Address is set the revocation list
// is kept in Redis, otherwise in process memory with tokenDuration as TTL.
func NewStorages(ctx context.Context, cfg config.Storage, tokenDuration time.Duration, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
		closers:        []io.Closer{db},
	}

	if cfg.Redis.Address != "" {
		client, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}

		log.Info().Str("address", cfg.Redis.Address).Msg("using redis revocation list")
		storages.RevocationList = NewRedisRevocationList(client)
		storages.closers = append(storages.closers, client)
	} else {
		log.Info().Msg("using in-memory revocation list")
		storages.RevocationList = NewMemoryRevocationList(tokenDuration)
	}

	return storages, nil
}

// Close releases database and Redis connections.
func (s *Storages) Close() error {
	var errs error
	for _, c := range s.closers {
		errs = errors.Join(errs, c.Close())
	}
	return errs
}
