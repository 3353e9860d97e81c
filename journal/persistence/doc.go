// Package persistence renders journals and hands them to a Storage.
//
// Storage is the only collaborator that touches the outside world. FileStorage writes to the local
// file system, RedisStorage writes to Redis keys. PersistenceManager decides what gets stored and how
// it is rendered, and reports what it did through the configured logger and metrics collector.
//
// Usage examples:
//
//	pm, _ := persistence.NewPersistenceManager(persistence.NewFileStorage())
//	_ = pm.Save(ctx, j, "./my-journal.txt")
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	pm, _ := persistence.NewPersistenceManager(
//		persistence.NewRedisStorage(client, persistence.WithKeyPrefix("journal:")),
//		persistence.WithFormat(persistence.FormatJSON),
//		persistence.WithLogger(slog.Default()),
//	)
package persistence
