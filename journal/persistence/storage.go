package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage durably persists textual content under a destination identifier.
type Storage interface {
	Save(ctx context.Context, destination string, content string) error
}

/***** FileStorage *****/

// FileStorage writes each destination as a file path, creating missing parent directories.
type FileStorage struct {
	fileMode os.FileMode
	dirMode  os.FileMode
}

func NewFileStorage() FileStorage {
	return FileStorage{fileMode: 0o644, dirMode: 0o755}
}

func (fs FileStorage) Save(ctx context.Context, destination string, content string) error {
	if destination == "" {
		return ErrEmptyDestination
	}

	if err := ctx.Err(); err != nil {
		return errors.Join(ErrSavingFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(destination), fs.dirMode); err != nil {
		return errors.Join(ErrSavingFailed, err)
	}

	if err := os.WriteFile(destination, []byte(content), fs.fileMode); err != nil {
		return errors.Join(ErrSavingFailed, err)
	}

	return nil
}

/***** RedisStorage *****/

// RedisOption defines a functional option for configuring RedisStorage.
type RedisOption func(*RedisStorage)

// WithKeyPrefix prepends prefix to every destination to build the Redis key.
func WithKeyPrefix(prefix string) RedisOption {
	return func(rs *RedisStorage) {
		rs.keyPrefix = prefix
	}
}

// WithTTL lets stored journals expire. Zero (the default) keeps them forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(rs *RedisStorage) {
		rs.ttl = ttl
	}
}

// RedisStorage stores each destination as a Redis string key.
type RedisStorage struct {
	client    redis.Cmdable
	keyPrefix string
	ttl       time.Duration
}

func NewRedisStorage(client redis.Cmdable, options ...RedisOption) RedisStorage {
	rs := RedisStorage{client: client}

	for _, option := range options {
		option(&rs)
	}

	return rs
}

// Key returns the Redis key used for destination.
func (rs RedisStorage) Key(destination string) string {
	return rs.keyPrefix + destination
}

func (rs RedisStorage) Save(ctx context.Context, destination string, content string) error {
	if destination == "" {
		return ErrEmptyDestination
	}

	if rs.client == nil {
		return errors.Join(ErrSavingFailed, ErrNilStorage)
	}

	if err := rs.client.Set(ctx, rs.Key(destination), content, rs.ttl).Err(); err != nil {
		return errors.Join(ErrSavingFailed, err)
	}

	return nil
}

var (
	_ Storage = FileStorage{}
	_ Storage = RedisStorage{}
)
